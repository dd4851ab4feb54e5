package linear

import (
	"github.com/matzehuels/adjustable/pkg/errors"
)

// SizingHook is invoked once per item per pass, right before the item is
// measured and positioned. Returning an error aborts the pass.
type SizingHook func(it *Item) error

// Options configures a Layout.
type Options struct {
	Orientation Orientation
	Width       int // viewport width
	Height      int // viewport height
	Padding     Edges
	ItemMargins Edges
	Decoration  Decoration

	// Reverse stacks items from the trailing edge (bottom or right).
	Reverse bool

	// Anchor is the first position laid out; Offset is how far the anchor
	// item is scrolled past the leading edge.
	Anchor int
	Offset int
}

// Layout is a generic incremental list layout over an Adapter.
// It is not safe for concurrent use.
type Layout struct {
	adapter  Adapter
	opts     Options
	items    []*Item
	consumed int
	passes   int
}

// New creates a layout for adapter.
func New(adapter Adapter, opts Options) *Layout {
	return &Layout{adapter: adapter, opts: opts}
}

// Options returns the current options.
func (l *Layout) Options() Options { return l.opts }

// SetViewport resizes the viewport. It takes effect on the next pass.
func (l *Layout) SetViewport(width, height int) {
	l.opts.Width, l.opts.Height = width, height
}

// SetOrientation switches the main axis. It takes effect on the next pass.
func (l *Layout) SetOrientation(o Orientation) { l.opts.Orientation = o }

// Orientation returns the main axis.
func (l *Layout) Orientation() Orientation { return l.opts.Orientation }

// ViewportExtent returns the main-axis space available to items.
func (l *Layout) ViewportExtent() int {
	o := l.opts.Orientation
	size := Size{Width: l.opts.Width, Height: l.opts.Height}
	return max(0, size.Main(o)-l.opts.Padding.Main(o))
}

func (l *Layout) crossExtent() int {
	o := l.opts.Orientation
	size := Size{Width: l.opts.Width, Height: l.opts.Height}
	return max(0, size.Cross(o)-l.opts.Padding.Cross(o))
}

// TotalCount returns the adapter's item count.
func (l *Layout) TotalCount() int { return l.adapter.ItemCount() }

// RealizedCount returns the number of items laid out by the last pass.
func (l *Layout) RealizedCount() int { return len(l.items) }

// Realized returns the i-th realized item in ascending position order.
func (l *Layout) Realized(i int) *Item { return l.items[i] }

// Items returns the realized items of the last pass.
func (l *Layout) Items() []*Item {
	out := make([]*Item, len(l.items))
	copy(out, l.items)
	return out
}

// Consumed returns the total decorated main-axis size of the realized items.
func (l *Layout) Consumed() int { return l.consumed }

// Passes returns how many passes have run since the layout was created.
func (l *Layout) Passes() int { return l.passes }

// Measure measures it against the viewport, honoring its main-axis
// constraint. The cross axis is capped by the available cross extent.
func (l *Layout) Measure(it *Item) error {
	o := it.orientation
	crossHint := AtMostHint(max(0, l.crossExtent()-it.Margins.Cross(o)-it.Insets.Cross(o)))
	var mainHint Hint
	if it.constraint > 0 {
		mainHint = ExactlyHint(it.constraint)
	}

	wh, hh := crossHint, mainHint
	if o == Horizontal {
		wh, hh = mainHint, crossHint
	}

	s := l.adapter.Measure(it.Position, wh, hh)
	if s.Width < 0 || s.Height < 0 {
		return errors.New(errors.ErrCodeHostContract,
			"negative size %dx%d measured for item at position %d", s.Width, s.Height, it.Position)
	}
	it.measured = Size{Width: wh.Resolve(s.Width), Height: hh.Resolve(s.Height)}
	return nil
}

// Pass runs one full layout traversal: it fills the viewport from the
// anchor toward the end, pulls earlier items in while space remains, and
// commits positions. The realized set is replaced.
func (l *Layout) Pass(hook SizingHook) error {
	l.passes++
	l.items = nil
	l.consumed = 0

	count := l.adapter.ItemCount()
	if count == 0 {
		return nil
	}

	extent := l.ViewportExtent()
	anchor := min(max(l.opts.Anchor, 0), count-1)
	offset := max(l.opts.Offset, 0)

	var seq []*Item
	filled := -offset
	for pos := anchor; pos < count && filled < extent; pos++ {
		it, err := l.layoutChunk(pos, hook)
		if err != nil {
			return err
		}
		seq = append(seq, it)
		filled += it.DecoratedMainSize()
	}

	prepended := false
	if filled < extent && anchor > 0 {
		filled += offset
		offset = 0
		var head []*Item
		for pos := anchor - 1; pos >= 0 && filled < extent; pos-- {
			it, err := l.layoutChunk(pos, hook)
			if err != nil {
				return err
			}
			head = append(head, it)
			filled += it.DecoratedMainSize()
			prepended = true
		}
		for i, j := 0, len(head)-1; i < j; i, j = i+1, j-1 {
			head[i], head[j] = head[j], head[i]
		}
		seq = append(head, seq...)
	}

	total := 0
	for _, it := range seq {
		total += it.DecoratedMainSize()
	}

	start := -offset
	if prepended && total > extent {
		start = extent - total
	}
	l.commit(seq, start, extent)
	l.items = seq
	l.consumed = total
	return nil
}

// layoutChunk binds the item at pos, runs the hook, and measures it.
func (l *Layout) layoutChunk(pos int, hook SizingHook) (*Item, error) {
	it, err := l.next(pos)
	if err != nil {
		return nil, err
	}
	if hook != nil {
		if err := hook(it); err != nil {
			return nil, err
		}
	}
	if err := l.Measure(it); err != nil {
		return nil, err
	}
	return it, nil
}

// next binds a fresh item for pos. The adapter is re-read so that a data
// source shrinking mid-pass is reported instead of silently truncated.
func (l *Layout) next(pos int) (*Item, error) {
	count := l.adapter.ItemCount()
	if pos < 0 || pos >= count {
		return nil, errors.New(errors.ErrCodeHostContract,
			"no item at position %d during layout (item count %d)", pos, count)
	}
	it := &Item{
		Position:    pos,
		Type:        l.adapter.ItemType(pos),
		Margins:     l.opts.ItemMargins,
		orientation: l.opts.Orientation,
	}
	if l.opts.Decoration != nil {
		it.Insets = l.opts.Decoration.Insets(pos, count, l.opts.Orientation)
	}
	return it, nil
}

// commit assigns bounds to seq, starting at main-axis offset start
// relative to the padded viewport.
func (l *Layout) commit(seq []*Item, start, extent int) {
	o := l.opts.Orientation
	mainStart := l.opts.Padding.Leading(o)
	crossStart := l.opts.Padding.CrossLeading(o)

	cursor := start
	for _, it := range seq {
		dm := it.DecoratedMainSize()
		boxStart := mainStart + cursor
		if l.opts.Reverse {
			boxStart = mainStart + extent - cursor - dm
		}
		mainPos := boxStart + it.Margins.Leading(o) + it.Insets.Leading(o)
		crossPos := crossStart + it.Margins.CrossLeading(o) + it.Insets.CrossLeading(o)
		it.bounds = rectOnAxis(o, mainPos, crossPos, it.MainSize(), it.CrossSize())
		cursor += dm
	}
}
