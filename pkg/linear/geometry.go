package linear

import (
	"strings"

	"github.com/matzehuels/adjustable/pkg/errors"
)

// Orientation is the main axis along which items are stacked and scrolled.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// String returns "vertical" or "horizontal".
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ParseOrientation parses "vertical"/"v" or "horizontal"/"h".
// An empty string yields Vertical.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vertical", "v":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	}
	return Vertical, errors.New(errors.ErrCodeInvalidInput, "unknown orientation %q (want vertical or horizontal)", s)
}

// Size is a width/height pair.
type Size struct {
	Width  int `json:"width" toml:"width"`
	Height int `json:"height" toml:"height"`
}

// Main returns the dimension along o.
func (s Size) Main(o Orientation) int {
	if o == Horizontal {
		return s.Width
	}
	return s.Height
}

// Cross returns the dimension perpendicular to o.
func (s Size) Cross(o Orientation) int {
	if o == Horizontal {
		return s.Height
	}
	return s.Width
}

// Edges represents spacing on four sides.
type Edges struct {
	Top    int `json:"top,omitempty" toml:"top"`
	Right  int `json:"right,omitempty" toml:"right"`
	Bottom int `json:"bottom,omitempty" toml:"bottom"`
	Left   int `json:"left,omitempty" toml:"left"`
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// Add returns the side-wise sum of e and other.
func (e Edges) Add(other Edges) Edges {
	return Edges{
		Top:    e.Top + other.Top,
		Right:  e.Right + other.Right,
		Bottom: e.Bottom + other.Bottom,
		Left:   e.Left + other.Left,
	}
}

// Main returns the total spacing along o.
func (e Edges) Main(o Orientation) int {
	if o == Horizontal {
		return e.Left + e.Right
	}
	return e.Top + e.Bottom
}

// Cross returns the total spacing perpendicular to o.
func (e Edges) Cross(o Orientation) int {
	if o == Horizontal {
		return e.Top + e.Bottom
	}
	return e.Left + e.Right
}

// Leading returns the spacing before the content along o (top or left).
func (e Edges) Leading(o Orientation) int {
	if o == Horizontal {
		return e.Left
	}
	return e.Top
}

// CrossLeading returns the spacing before the content across o.
func (e Edges) CrossLeading(o Orientation) int {
	if o == Horizontal {
		return e.Top
	}
	return e.Left
}

// Rect is a positioned rectangle.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Right returns the right edge (exclusive).
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the bottom edge (exclusive).
func (r Rect) Bottom() int { return r.Y + r.Height }

// rectOnAxis builds a Rect from main/cross coordinates.
func rectOnAxis(o Orientation, mainPos, crossPos, mainSize, crossSize int) Rect {
	if o == Horizontal {
		return Rect{X: mainPos, Y: crossPos, Width: mainSize, Height: crossSize}
	}
	return Rect{X: crossPos, Y: mainPos, Width: crossSize, Height: mainSize}
}
