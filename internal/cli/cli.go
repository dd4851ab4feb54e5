package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/adjustable/internal/config"
	"github.com/matzehuels/adjustable/pkg/buildinfo"
	"github.com/matzehuels/adjustable/pkg/cache"
	"github.com/matzehuels/adjustable/pkg/observability"
	"github.com/matzehuels/adjustable/pkg/pipeline"
	"github.com/matzehuels/adjustable/pkg/render"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and next-step hints.
const appName = "adjustable"

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

	ui printer

	configPath string
	verbose    bool
	cfg        *config.Config
}

// New creates a new CLI instance. Logs go to w; status lines go to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		ui:     printer{w: os.Stdout},
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Adjustable lays out lists with one item that fills the slack",
		Long: `Adjustable lays out a linear list in which one item, chosen by type tag and
optionally position, is stretched to fill the leftover viewport space or shrunk
to its minimum size so that the realized items exactly fill the viewport.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			observability.Install(observability.NewLogHooks(c.Logger))
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: "+config.ConfigFile()+")")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads user settings and applies the configured log level.
// --verbose overrides the configured level.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	if c.verbose {
		c.SetLogLevel(LogDebug)
	} else {
		c.SetLogLevel(cfg.LogLevel())
	}
	c.Logger.Debug("configuration loaded", "cache", cfg.Cache.Dir, "format", cfg.Output.Format)
	return nil
}

// config returns the loaded settings, or the defaults when a command runs
// without the root pre-run (as in tests).
func (c *CLI) config() *config.Config {
	if c.cfg == nil {
		c.cfg = config.Default()
	}
	return c.cfg
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cfg := c.config()
	cc, err := newCache(cfg, noCache)
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(cc, nil, c.Logger)
	r.TextOptions = []render.TextOption{render.WithCells(cfg.Output.Cells)}
	return r, nil
}

func newCache(cfg *config.Config, noCache bool) (cache.Cache, error) {
	if noCache || !cfg.Cache.Enabled || cfg.Cache.Dir == "" {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(cfg.Cache.Dir)
}
