package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/adjustable/internal/api"
	"github.com/matzehuels/adjustable/pkg/cache"
	"github.com/matzehuels/adjustable/pkg/pipeline"
)

// apiCachePrefix keeps server cache entries apart from CLI entries that
// share the same cache directory.
const apiCachePrefix = "api:"

// serveCommand creates the serve command for the HTTP layout API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout API over HTTP",
		Long: `Serve the layout API over HTTP.

Routes:
  GET  /healthz     liveness and build information
  POST /v1/layout   lay out a JSON scene (?format=json|text)

The server stops gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.config()
			if addr == "" {
				addr = cfg.Server.Addr
			}

			cc, err := newCache(cfg, noCache)
			if err != nil {
				return fmt.Errorf("initialize cache: %w", err)
			}
			runner := pipeline.NewRunner(cc, cache.NewScopedKeyer(nil, apiCachePrefix), c.Logger)
			defer runner.Close()

			srv := api.NewServer(runner, api.Options{
				Logger:       c.Logger,
				MaxBodyBytes: cfg.Server.MaxBodyBytes,
				ReadTimeout:  cfg.Server.ReadTimeout,
				WriteTimeout: cfg.Server.WriteTimeout,
			})
			c.ui.info("Serving on http://%s", addr)
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
