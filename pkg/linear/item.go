package linear

// Item is a realized list item bound for the duration of one pass.
type Item struct {
	Position int   // adapter position
	Type     int   // adapter type tag
	Margins  Edges // layout margins around the item
	Insets   Edges // decoration insets (dividers)

	orientation Orientation
	constraint  int
	measured    Size
	bounds      Rect
}

// Orientation returns the main axis the item was bound for.
func (it *Item) Orientation() Orientation { return it.orientation }

// Constraint returns the main-axis size override, or 0 when unset.
func (it *Item) Constraint() int { return it.constraint }

// SetConstraint overrides the item's main-axis size for subsequent
// measurements. Non-positive sizes are ignored.
func (it *Item) SetConstraint(size int) {
	if size > 0 {
		it.constraint = size
	}
}

// ClearConstraint removes any main-axis override.
func (it *Item) ClearConstraint() { it.constraint = 0 }

// Measured returns the size recorded by the last measurement.
func (it *Item) Measured() Size { return it.measured }

// MainSize returns the measured size along the main axis.
func (it *Item) MainSize() int { return it.measured.Main(it.orientation) }

// CrossSize returns the measured size across the main axis.
func (it *Item) CrossSize() int { return it.measured.Cross(it.orientation) }

// DecoratedMainSize returns the main-axis space the item consumes,
// including margins and decoration insets.
func (it *Item) DecoratedMainSize() int {
	return it.MainSize() + it.Margins.Main(it.orientation) + it.Insets.Main(it.orientation)
}

// Bounds returns the item's committed rectangle, excluding margins and insets.
func (it *Item) Bounds() Rect { return it.bounds }
