package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/adjustable/pkg/adjust"
	"github.com/matzehuels/adjustable/pkg/cache"
	"github.com/matzehuels/adjustable/pkg/observability"
	"github.com/matzehuels/adjustable/pkg/render"
	"github.com/matzehuels/adjustable/pkg/scene"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger, so multiple
// goroutines can share one as long as the cache is safe for concurrent use.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TextOptions apply to text renders.
	TextOptions []render.TextOption
}

// NewRunner creates a runner. A nil keyer uses cache.DefaultKeyer, a nil
// cache disables caching, and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// SceneHash returns the content address of s used for layout cache keys.
func SceneHash(s *scene.Scene) (string, error) {
	data, err := scene.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("serialize scene: %w", err)
	}
	return cache.Hash(data), nil
}

// Layout validates s, then returns its cached layout or computes and caches
// a fresh one. The boolean reports a cache hit.
func (r *Runner) Layout(ctx context.Context, s *scene.Scene) (scene.Result, bool, error) {
	if err := s.Validate(); err != nil {
		return scene.Result{}, false, err
	}
	if err := ctx.Err(); err != nil {
		return scene.Result{}, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, s.Name, len(s.Items))
	start := time.Now()

	hash, err := SceneHash(s)
	if err != nil {
		hooks.OnLayoutComplete(ctx, s.Name, 0, time.Since(start), err)
		return scene.Result{}, false, err
	}
	key := r.Keyer.LayoutKey(hash)

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		if cached, err := scene.UnmarshalResult(data); err == nil {
			observability.Cache().OnCacheHit(ctx, "layout")
			hooks.OnLayoutComplete(ctx, s.Name, 0, time.Since(start), nil)
			r.Logger.Debug("layout cache hit", "scene", s.Name, "key", key)
			return cached, true, nil
		}
		// Unreadable entries fall through to a recompute.
	} else if err != nil {
		r.Logger.Warn("layout cache read failed", "err", err)
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	res, err := scene.Compute(s, adjust.WithLogger(r.Logger))
	hooks.OnLayoutComplete(ctx, s.Name, res.Passes, time.Since(start), err)
	if err != nil {
		return scene.Result{}, false, err
	}

	r.Logger.Debug("computed layout",
		"scene", s.Name,
		"items", len(res.Items),
		"passes", res.Passes,
		"resolved", res.Resolved,
		"consumed", res.Consumed,
		"extent", res.Extent)

	if data, err := scene.MarshalResult(res); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLLayout); err != nil {
			r.Logger.Warn("layout cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}
	return res, false, nil
}

// Render produces res in the given format. JSON output is cached by result
// ID; text output depends on the terminal's color profile and is not.
func (r *Runner) Render(ctx context.Context, res scene.Result, format string) ([]byte, error) {
	if format == "" {
		format = DefaultFormat
	}
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, format)
	start := time.Now()

	cacheable := format == FormatJSON
	key := r.Keyer.RenderKey(res.ID, format)
	if cacheable {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "render")
			hooks.OnRenderComplete(ctx, format, time.Since(start), nil)
			return data, nil
		}
		observability.Cache().OnCacheMiss(ctx, "render")
	}

	var (
		out []byte
		err error
	)
	switch format {
	case FormatJSON:
		out, err = scene.MarshalResult(res)
	case FormatText:
		out = []byte(render.Text(res, r.TextOptions...) + "\n")
	}
	hooks.OnRenderComplete(ctx, format, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}

	if cacheable {
		if err := r.Cache.Set(ctx, key, out, cache.TTLRender); err == nil {
			observability.Cache().OnCacheSet(ctx, "render", len(out))
		}
	}
	return out, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
