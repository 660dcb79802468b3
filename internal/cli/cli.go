package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/conmx/conmx/internal/config"
	"github.com/conmx/conmx/pkg/buildinfo"
	"github.com/conmx/conmx/pkg/controller"
	cerrors "github.com/conmx/conmx/pkg/errors"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "conmx"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	nodeIP     string
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "ConMX drives DMX universes and a node patch",
		Long:         `ConMX is a lighting controller: it holds DMX universes with per-channel overrides and a dataflow patch of nodes that feed them.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $CONMX_CONFIG, ./conmx.toml, ~/.config/conmx/config.toml)")
	root.PersistentFlags().StringVar(&c.nodeIP, "node-ip", "", "IP address of this node (default from config, ::1)")

	// Register all subcommands
	root.AddCommand(c.universeCommand())
	root.AddCommand(c.patchCommand())
	root.AddCommand(c.consoleCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the configuration, applies flag overrides and the
// configured log level.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.nodeIP != "" {
		if err := cerrors.ValidateIP(c.nodeIP); err != nil {
			return err
		}
		cfg.Network.NodeIP = c.nodeIP
	}
	c.cfg = cfg
	c.SetLogLevel(cfg.LogLevel())
	if cfg.Source != "" {
		c.Logger.Debug("loaded config", "path", cfg.Source)
	}
	c.Logger.Debug("node identity", "ip", cfg.Network.NodeIP)
	return nil
}

// settings returns the loaded configuration, or defaults before loading.
func (c *CLI) settings() *config.Config {
	if c.cfg == nil {
		return config.Default()
	}
	return c.cfg
}

// newController builds a controller whose registry holds the configured
// universes.
func (c *CLI) newController() *controller.Controller {
	return controller.New(
		controller.WithLogger(c.Logger),
		controller.WithRegistry(c.settings().Registry(c.Logger)),
	)
}
