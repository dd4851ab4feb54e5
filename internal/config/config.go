// Package config loads user settings for the adjustable CLI and server.
//
// Settings come from, in increasing priority: built-in defaults, the config
// file ($XDG_CONFIG_HOME/adjustable/config.toml), and ADJUSTABLE_* environment
// variables (ADJUSTABLE_SERVER_ADDR overrides server.addr). Command-line flags
// are applied on top by the caller.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/matzehuels/adjustable/pkg/errors"
)

const appName = "adjustable"

// Config is the complete user configuration.
type Config struct {
	Cache   CacheConfig   `mapstructure:"cache"`
	Output  OutputConfig  `mapstructure:"output"`
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CacheConfig controls the layout cache.
type CacheConfig struct {
	// Enabled turns the file cache on; when false every run recomputes.
	Enabled bool `mapstructure:"enabled"`
	// Dir is the cache directory.
	Dir string `mapstructure:"dir"`
}

// OutputConfig controls rendered output.
type OutputConfig struct {
	// Format is the default render format ("text" or "json").
	Format string `mapstructure:"format"`
	// Cells is the main-axis size of text diagrams.
	Cells int `mapstructure:"cells"`
}

// ServerConfig controls `adjustable serve`.
type ServerConfig struct {
	Addr         string        `mapstructure:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	// MaxBodyBytes caps the size of a posted scene.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes"`
}

// LoggingConfig controls the log level.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Cache: CacheConfig{
			Enabled: true,
			Dir:     CacheDir(),
		},
		Output: OutputConfig{
			Format: "text",
			Cells:  20,
		},
		Server: ServerConfig{
			Addr:         "127.0.0.1:8321",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			MaxBodyBytes: 1 << 20,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// SetDefaults registers every default on v so that environment variables
// bind even when the config file omits a key.
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.dir", d.Cache.Dir)

	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.cells", d.Output.Cells)

	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.max_body_bytes", d.Server.MaxBodyBytes)

	v.SetDefault("logging.level", d.Logging.Level)
}

// New returns a viper instance wired for adjustable: defaults, the
// ADJUSTABLE_ env prefix, and TOML as the file format.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("toml")
	v.SetEnvPrefix("ADJUSTABLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path (or the default config file when path is empty) and
// returns the validated configuration. A missing default file is not an
// error; a missing explicit path is.
func Load(path string) (*Config, error) {
	v := New()

	if path == "" {
		path = ConfigFile()
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	v := errors.NewValidation(errors.ErrCodeInvalidConfig)
	switch c.Output.Format {
	case "text", "json":
	default:
		v.Add("output.format", "must be text or json, got %q", c.Output.Format)
	}
	if c.Output.Cells <= 0 {
		v.Add("output.cells", "must be positive, got %d", c.Output.Cells)
	}
	if c.Server.Addr == "" {
		v.Add("server.addr", "must not be empty")
	}
	if c.Server.MaxBodyBytes <= 0 {
		v.Add("server.max_body_bytes", "must be positive, got %d", c.Server.MaxBodyBytes)
	}
	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		v.Add("logging.level", "unknown level %q", c.Logging.Level)
	}
	if c.Cache.Enabled && c.Cache.Dir == "" {
		v.Add("cache.dir", "must be set when the cache is enabled")
	}
	return v.Err()
}

// LogLevel returns the parsed logging level, defaulting to info.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Logging.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// ConfigDir returns the configuration directory using the XDG convention
// (~/.config/adjustable).
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + appName
	}
	return filepath.Join(home, ".config", appName)
}

// ConfigFile returns the default config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// CacheDir returns the cache directory using the XDG convention
// (~/.cache/adjustable).
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appName)
	}
	return filepath.Join(home, ".cache", appName)
}
