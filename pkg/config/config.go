// Package config loads tiegraph settings from a TOML file and the environment.
//
// Precedence, lowest first: built-in defaults, the config file, environment
// variables. Command-line flags are applied on top by the CLI.
//
//	[data]
//	source = "dining"          # fixture name or edge list file
//
//	[query]
//	from = "Eva"
//	to = "Maxine"
//
//	[log]
//	level = "info"
//
//	[server]
//	addr = ":8080"
//	read_timeout = "10s"
//	write_timeout = "15s"
//	shutdown_timeout = "10s"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/tiegraph/pkg/errors"
)

// Environment variables that override file settings.
const (
	EnvData     = "TIEGRAPH_DATA"
	EnvAddr     = "TIEGRAPH_ADDR"
	EnvLogLevel = "TIEGRAPH_LOG_LEVEL"
)

const (
	defaultSource          = "dining"
	defaultFrom            = "Eva"
	defaultTo              = "Maxine"
	defaultLogLevel        = "info"
	defaultAddr            = ":8080"
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 15 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Config aggregates application configuration values.
type Config struct {
	Data   DataConfig   `toml:"data"`
	Query  QueryConfig  `toml:"query"`
	Log    LogConfig    `toml:"log"`
	Server ServerConfig `toml:"server"`
}

// DataConfig selects the edge list to analyze.
type DataConfig struct {
	Source string `toml:"source"`
}

// QueryConfig holds the default endpoints of a path query.
type QueryConfig struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// ServerConfig governs the HTTP query service.
type ServerConfig struct {
	Addr            string        `toml:"addr"`
	ReadTimeout     time.Duration `toml:"read_timeout"`
	WriteTimeout    time.Duration `toml:"write_timeout"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Data:  DataConfig{Source: defaultSource},
		Query: QueryConfig{From: defaultFrom, To: defaultTo},
		Log:   LogConfig{Level: defaultLogLevel},
		Server: ServerConfig{
			Addr:            defaultAddr,
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
	}
}

// DefaultPath returns ~/.config/tiegraph/config.toml, or "" when the home
// directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tiegraph", "config.toml")
}

// Load reads the config file at path over the defaults and applies
// environment overrides. An empty path means [DefaultPath], which may be
// absent; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			if explicit || !errs.Is(err, errs.ErrCodeFileNotFound) {
				return Config{}, err
			}
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		if os.IsNotExist(err) {
			return errs.Wrap(errs.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errs.New(errs.ErrCodeInvalidFormat, "config %s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Data.Source = valueOrDefault(EnvData, c.Data.Source)
	c.Server.Addr = valueOrDefault(EnvAddr, c.Server.Addr)
	c.Log.Level = valueOrDefault(EnvLogLevel, c.Log.Level)
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Data.Source == "" {
		return errs.New(errs.ErrCodeInvalidInput, "data.source must not be empty")
	}
	if c.Server.Addr == "" {
		return errs.New(errs.ErrCodeInvalidInput, "server.addr must not be empty")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidInput, err, "log.level %q", c.Log.Level)
	}
	for name, d := range map[string]time.Duration{
		"server.read_timeout":     c.Server.ReadTimeout,
		"server.write_timeout":    c.Server.WriteTimeout,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
	} {
		if d < 0 {
			return errs.New(errs.ErrCodeInvalidInput, "%s must not be negative", name)
		}
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to info.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// String renders the config as TOML.
func (c Config) String() string {
	b, err := toml.Marshal(c)
	if err != nil {
		type plain Config
		return fmt.Sprintf("%+v", plain(c))
	}
	return string(b)
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
