package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/adjustable/pkg/errors"
)

func TestDefault(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")
	cfg := Default()

	if !cfg.Cache.Enabled {
		t.Error("Cache.Enabled should be true by default")
	}
	if cfg.Cache.Dir != filepath.Join("/tmp/xdg-cache", "adjustable") {
		t.Errorf("Cache.Dir = %q", cfg.Cache.Dir)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %q, want text", cfg.Output.Format)
	}
	if cfg.Server.ReadTimeout != 10*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 10s", cfg.Server.ReadTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() should validate: %v", err)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() without file should equal Default() (-want +got):\n%s", diff)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "adjustable"), 0o755); err != nil {
		t.Fatal(err)
	}
	body := `
[output]
format = "json"
cells = 30

[server]
addr = ":9000"
read_timeout = "3s"
`
	if err := os.WriteFile(ConfigFile(), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ADJUSTABLE_SERVER_ADDR", ":9100")
	t.Setenv("ADJUSTABLE_LOGGING_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Format != "json" || cfg.Output.Cells != 30 {
		t.Errorf("Output = %+v, want file values", cfg.Output)
	}
	if cfg.Server.Addr != ":9100" {
		t.Errorf("Server.Addr = %q, want env override :9100", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != 3*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 3s", cfg.Server.ReadTimeout)
	}
	if cfg.LogLevel() != log.DebugLevel {
		t.Errorf("LogLevel() = %v, want debug", cfg.LogLevel())
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load(missing) error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"format", func(c *Config) { c.Output.Format = "svg" }, "output.format"},
		{"cells", func(c *Config) { c.Output.Cells = 0 }, "output.cells"},
		{"addr", func(c *Config) { c.Server.Addr = "" }, "server.addr"},
		{"body limit", func(c *Config) { c.Server.MaxBodyBytes = 0 }, "server.max_body_bytes"},
		{"level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"cache dir", func(c *Config) { c.Cache.Dir = "" }, "cache.dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			fields := errors.Fields(cfg.Validate())
			if len(fields) != 1 || fields[0].Field != tt.field {
				t.Errorf("Validate() fields = %+v, want only %s", fields, tt.field)
			}
		})
	}
}

func TestDisabledCacheNeedsNoDir(t *testing.T) {
	cfg := Default()
	cfg.Cache.Enabled = false
	cfg.Cache.Dir = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
