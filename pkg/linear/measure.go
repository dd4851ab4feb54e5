package linear

// Mode selects how a Hint constrains a measured dimension.
type Mode int

const (
	// Unspecified lets the item take its natural size.
	Unspecified Mode = iota
	// Exactly forces the dimension to Hint.Size.
	Exactly
	// AtMost caps the dimension at Hint.Size.
	AtMost
)

// Hint is a proposed size constraint for one dimension.
type Hint struct {
	Mode Mode
	Size int
}

// ExactlyHint returns a Hint forcing size n.
func ExactlyHint(n int) Hint { return Hint{Mode: Exactly, Size: n} }

// AtMostHint returns a Hint capping the size at n.
func AtMostHint(n int) Hint { return Hint{Mode: AtMost, Size: n} }

// Resolve applies the hint to a natural size.
func (h Hint) Resolve(natural int) int {
	switch h.Mode {
	case Exactly:
		return h.Size
	case AtMost:
		return min(natural, h.Size)
	}
	return natural
}

// Adapter is the data source of a list and its measurement primitive.
type Adapter interface {
	// ItemCount returns the total number of items in the data source.
	ItemCount() int

	// ItemType returns the type tag of the item at position.
	ItemType(position int) int

	// Measure returns the natural size of the item at position under the
	// given hints. Implementations may ignore the hints; the layout enforces
	// them afterwards. Repeated calls must be side-effect free.
	Measure(position int, width, height Hint) Size
}

// Decoration supplies extra insets around items, such as dividers.
type Decoration interface {
	Insets(position, count int, o Orientation) Edges
}

// Divider inserts Size units of space after every item except the last.
type Divider struct {
	Size int
}

// Insets places the divider on the trailing edge along the main axis.
func (d Divider) Insets(position, count int, o Orientation) Edges {
	if d.Size <= 0 || position >= count-1 {
		return Edges{}
	}
	if o == Horizontal {
		return Edges{Right: d.Size}
	}
	return Edges{Bottom: d.Size}
}
