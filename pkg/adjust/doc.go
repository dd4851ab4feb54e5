// Package adjust stretches or shrinks one distinguished list item so that a
// linear list exactly fills its viewport.
//
// # Overview
//
// A list laid out by a [Host] (typically a [linear.Layout]) contains items
// with known natural sizes. One of them, the adjustable item, is identified
// by its type tag (and optionally its position). [Manager.Layout] runs a
// two-phase protocol over the host:
//
//  1. Measuring: a full pass with the adjustable item shrunk to its minimum.
//  2. Deciding: [Measure] re-measures the realized set, sums the consumed
//     main-axis space and derives the adjustable item's target size.
//  3. Resizing: if the realized set is complete and an adjustable item is
//     present, a second full pass applies the target size.
//
// The target size fills the remaining slack when the items fit, and falls
// back to the minimum when they overflow:
//
//	viewport 1000, items [200, adjustable(min 50), 300]
//	pass 1:  [200, 50, 300]   consumed 550
//	target:  1000 - (550 - 50) = 500
//	pass 2:  [200, 500, 300]  consumed 1000
//
// # Cardinality
//
// Exactly one item may qualify as adjustable. When several items qualify the
// slack cannot be assigned to one of them, and every qualifying item falls
// back to the configured absolute minimum (or its natural size when none is
// set). When none qualifies the second pass is skipped.
//
// # State
//
// All per-layout bookkeeping lives in a [PassState] created at the start of
// [Manager.Layout] and discarded when it returns; only the [Config]
// survives between calls. Changing the configuration through a Manager
// setter marks the manager as needing layout.
//
// # Minimum Size
//
// [Config.MinSizeFor] returns the absolute minimum when one is configured,
// otherwise the item's cross-axis size multiplied by the ratio (1.0 when
// unset):
//
//	cfg := adjust.DefaultConfig()
//	cfg.AdjustableType = footer
//	cfg.MinRatio = 0.5
//	m := adjust.NewManager(adjust.WithConfig(cfg), adjust.WithLogger(logger))
//	res, err := m.Layout(host)
package adjust
