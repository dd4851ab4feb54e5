// Package linear implements a generic incremental one-dimensional list layout.
//
// # Overview
//
// A [Layout] stacks the items of an [Adapter] along a single main axis
// (vertical or horizontal) inside a fixed viewport, starting from an anchor
// position and stopping once the viewport is filled. The items it lays out
// form the realized set for that pass.
//
// # Sizing Hook
//
// Each call to [Layout.Pass] accepts a [SizingHook] that is invoked exactly
// once per realized item, in traversal order, immediately before the item is
// measured and its position committed. The hook may set a main-axis
// constraint on the item; the cross axis is always measured against the
// viewport:
//
//	l := linear.New(adapter, linear.Options{
//	    Orientation: linear.Vertical,
//	    Width:       40,
//	    Height:      1000,
//	})
//	err := l.Pass(func(it *linear.Item) error {
//	    if it.Type == footerType {
//	        it.SetConstraint(120)
//	    }
//	    return nil
//	})
//
// Items are bound fresh on every pass, so a constraint set during one pass
// never leaks into the next.
//
// # Measurement
//
// The adapter is the measurement primitive: given [Hint]s for width and
// height it reports the item's natural [Size]. The layout enforces the hints
// (an Exactly hint always wins), and treats negative sizes or an adapter that
// shrinks mid-pass as a host contract violation.
//
// # Decorations
//
// Item margins and [Decoration] insets (such as a [Divider]) are added to the
// measured size to form the decorated size that the item consumes along the
// main axis.
package linear
