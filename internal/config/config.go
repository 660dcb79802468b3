// Package config loads the conmx TOML configuration.
//
// The file is looked up in order: an explicit path (the --config flag),
// $CONMX_CONFIG, ./conmx.toml, then $XDG_CONFIG_HOME/conmx/config.toml
// (~/.config/conmx/config.toml when XDG_CONFIG_HOME is unset). An explicit
// path or $CONMX_CONFIG that does not exist is an error; the other
// locations are optional and defaults apply when none exists.
//
// Example file:
//
//	[log]
//	level = "debug"
//
//	[network]
//	node_ip = "::1"
//
//	[server]
//	addr = "127.0.0.1:7070"
//
//	[[universe]]
//	id = 0
//	label = "Stage"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/conmx/conmx/pkg/dmx"
	cerrors "github.com/conmx/conmx/pkg/errors"
)

const (
	appName = "conmx"

	// EnvPath names the environment variable holding a config file path.
	EnvPath = "CONMX_CONFIG"

	DefaultLogLevel = "info"
	DefaultNodeIP   = "::1"
	DefaultAddr     = "127.0.0.1:7070"
)

// Config is the decoded configuration file.
type Config struct {
	Log       LogConfig        `toml:"log"`
	Network   NetworkConfig    `toml:"network"`
	Server    ServerConfig     `toml:"server"`
	Universes []UniverseConfig `toml:"universe"`

	// Source is the file the configuration was read from, empty for defaults.
	Source string `toml:"-"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// NetworkConfig configures the node network identity.
type NetworkConfig struct {
	NodeIP string `toml:"node_ip"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// UniverseConfig declares one universe to register at startup.
type UniverseConfig struct {
	ID    int    `toml:"id"`
	Label string `toml:"label"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Log:       LogConfig{Level: DefaultLogLevel},
		Network:   NetworkConfig{NodeIP: DefaultNodeIP},
		Server:    ServerConfig{Addr: DefaultAddr},
		Universes: []UniverseConfig{{ID: 0}},
	}
}

// Load locates and reads the configuration. explicit may be empty.
func Load(explicit string) (*Config, error) {
	path, required, err := locate(explicit)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return Default(), nil
	}
	cfg, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return Default(), nil
	}
	return cfg, err
}

// LoadFile reads and validates the file at path. Keys the file sets
// override the defaults; an empty or missing universe list keeps the default
// universe 0.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	cfg.Source = path
	return cfg, nil
}

// Parse decodes and validates TOML text.
func Parse(text string) (*Config, error) {
	cfg := Default()
	cfg.Universes = nil

	md, err := toml.Decode(text, cfg)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, cerrors.New(cerrors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if len(cfg.Universes) == 0 {
		cfg.Universes = Default().Universes
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return cerrors.New(cerrors.ErrCodeInvalidConfig, "log level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	if err := cerrors.ValidateIP(c.Network.NodeIP); err != nil {
		return cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "network.node_ip")
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return cerrors.New(cerrors.ErrCodeInvalidConfig, "server.addr is empty")
	}
	for _, u := range c.Universes {
		if u.ID < 0 {
			return cerrors.New(cerrors.ErrCodeInvalidConfig, "universe id %d is negative", u.ID)
		}
	}
	return nil
}

// LogLevel returns the parsed log level, info when unparseable.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Registry builds a registry holding the configured universes in file order.
// Duplicate ids are warned about; the last declaration wins.
func (c *Config) Registry(logger *log.Logger) *dmx.Registry {
	if logger == nil {
		logger = log.Default()
	}
	reg := dmx.NewRegistry()
	for _, u := range c.Universes {
		if reg.Has(u.ID) {
			logger.Warn("duplicate universe in config, replacing", "universe", u.ID, "label", u.Label)
		}
		reg.AddUniverse(dmx.NewUniverse(u.ID, dmx.WithLogger(logger)))
	}
	return reg
}

// Label returns the configured label of universe id, or "" when none. With
// duplicates the last declaration wins, as in Registry.
func (c *Config) Label(id int) string {
	for _, u := range slices.Backward(c.Universes) {
		if u.ID == id {
			return u.Label
		}
	}
	return ""
}

// locate returns the path to read and whether it must exist.
func locate(explicit string) (string, bool, error) {
	if explicit != "" {
		return explicit, true, nil
	}
	if p := os.Getenv(EnvPath); p != "" {
		return p, true, nil
	}
	candidates := []string{appName + ".toml"}
	if dir, err := configDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "config.toml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, false, nil
		}
	}
	return "", false, nil
}

// configDir returns the config directory using XDG standard (~/.config/conmx/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
