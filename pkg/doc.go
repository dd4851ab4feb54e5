// Package pkg provides the core libraries for adjustable list layout.
//
// # Overview
//
// A linear list lays its items out end to end along one axis. Adjustable adds
// one item, chosen by type tag and optionally position, that stretches to
// fill the leftover viewport space or shrinks to its minimum size so the
// realized items exactly fill the viewport. The pkg directory is organized
// into these areas:
//
//  1. [linear] - The generic list host (measurement, placement, decorations)
//  2. [adjust] - The two-pass adjustable layout manager
//  3. [scene] - Scene files and serialized layout results
//  4. [pipeline] - Orchestration (validate → layout → render) with caching
//  5. [render] - Text diagrams of layout results
//  6. [cache], [errors], [observability], [buildinfo] - Infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	scene.toml / scene.json
//	         ↓
//	    [scene] package (decode + validate)
//	         ↓
//	    [linear] package (host built from the scene)
//	         ↓
//	    [adjust] package (measure, decide, resize)
//	         ↓
//	    [render] package (text diagram) or JSON
//
// # Quick Start
//
// Lay out a scene directly:
//
//	s, err := scene.Load("settings.toml")
//	if err != nil {
//	    return err
//	}
//	res, err := scene.Compute(s)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(render.Text(res))
//
// Or drive a host yourself:
//
//	host := linear.New(adapter, linear.Options{Height: 24, Width: 80})
//	m := adjust.NewManager(adjust.WithConfig(adjust.Config{
//	    AdjustableType:     spacerType,
//	    AdjustablePosition: adjust.NoPosition,
//	    MinSize:            3,
//	}))
//	res, err := m.Layout(host)
//
// Use the [pipeline] package for cached layouts:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	res, cacheHit, err := runner.Layout(ctx, s)
//
// # Adjustment Rules
//
// After the measurement pass, the manager counts realized items that match
// the adjustable type (and position, when set):
//
//   - None: the measurement pass is the final layout.
//   - One: the item gets the viewport slack when there is any, otherwise its
//     minimum size, and the list is laid out again.
//   - More than one: each gets its minimum size (or natural size when no
//     minimum is set), since the slack cannot be split unambiguously.
//
// Lists with more than MaxCount items (12 by default) skip adjustment.
//
// # Error Handling
//
// Errors carry an [errors] code so callers can branch on the kind of failure
// without string matching. Scene and configuration validation collect every
// invalid field at once.
//
// [linear]: https://pkg.go.dev/github.com/matzehuels/adjustable/pkg/linear
// [adjust]: https://pkg.go.dev/github.com/matzehuels/adjustable/pkg/adjust
// [scene]: https://pkg.go.dev/github.com/matzehuels/adjustable/pkg/scene
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/adjustable/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/matzehuels/adjustable/pkg/render
// [cache]: https://pkg.go.dev/github.com/matzehuels/adjustable/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/adjustable/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/adjustable/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/adjustable/pkg/buildinfo
package pkg
