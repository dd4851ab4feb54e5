package linear

// StaticItem is one entry of a Static adapter.
type StaticItem struct {
	Type int
	Size Size // natural size

	// FillCross makes the item take the full available cross extent.
	FillCross bool
}

// Static is an in-memory Adapter over a fixed slice of items.
type Static []StaticItem

// ItemCount implements Adapter.
func (s Static) ItemCount() int { return len(s) }

// ItemType implements Adapter.
func (s Static) ItemType(position int) int { return s[position].Type }

// Measure implements Adapter.
func (s Static) Measure(position int, width, height Hint) Size {
	it := s[position]
	size := it.Size
	if it.FillCross {
		if width.Mode == AtMost {
			size.Width = width.Size
		}
		if height.Mode == AtMost {
			size.Height = height.Size
		}
	}
	return size
}
