package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/conmx/conmx/pkg/buildinfo"
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package with values injected via
// ldflags at build time.
func SetVersion(v, c, d string) {
	buildinfo.Version = v
	buildinfo.Commit = c
	buildinfo.Date = d
}

// Execute runs the conmx CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// Logging:
//   - Default: the configured level (info unless [log] level says otherwise), to stderr
//   - With --verbose (-v): debug level, regardless of the config file
//
// The logger is attached to the context and accessible to all commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	configure := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := configure(cmd, args); err != nil {
			return err
		}
		if verbose {
			c.SetLogLevel(LogDebug)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}
