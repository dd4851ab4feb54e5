package linear

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/adjustable/pkg/errors"
)

func vertical(heights ...int) Static {
	s := make(Static, len(heights))
	for i, h := range heights {
		s[i] = StaticItem{Type: 1, Size: Size{Width: 10, Height: h}}
	}
	return s
}

func bounds(l *Layout) []Rect {
	var out []Rect
	for _, it := range l.Items() {
		out = append(out, it.Bounds())
	}
	return out
}

func TestPassVertical(t *testing.T) {
	l := New(vertical(100, 200, 300), Options{Width: 40, Height: 1000})
	if err := l.Pass(nil); err != nil {
		t.Fatalf("Pass() error = %v", err)
	}

	want := []Rect{
		{X: 0, Y: 0, Width: 10, Height: 100},
		{X: 0, Y: 100, Width: 10, Height: 200},
		{X: 0, Y: 300, Width: 10, Height: 300},
	}
	if diff := cmp.Diff(want, bounds(l)); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}
	if l.Consumed() != 600 {
		t.Errorf("Consumed() = %d, want 600", l.Consumed())
	}
	if l.RealizedCount() != 3 || l.TotalCount() != 3 {
		t.Errorf("realized/total = %d/%d, want 3/3", l.RealizedCount(), l.TotalCount())
	}
}

func TestPassHorizontal(t *testing.T) {
	adapter := Static{
		{Type: 1, Size: Size{Width: 30, Height: 5}},
		{Type: 1, Size: Size{Width: 20, Height: 8}},
	}
	l := New(adapter, Options{Orientation: Horizontal, Width: 100, Height: 10})
	if err := l.Pass(nil); err != nil {
		t.Fatalf("Pass() error = %v", err)
	}

	want := []Rect{
		{X: 0, Y: 0, Width: 30, Height: 5},
		{X: 30, Y: 0, Width: 20, Height: 8},
	}
	if diff := cmp.Diff(want, bounds(l)); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestPassPaddingMarginsDivider(t *testing.T) {
	l := New(vertical(10, 10), Options{
		Width:       40,
		Height:      100,
		Padding:     Edges{Top: 5, Left: 3},
		ItemMargins: Edges{Top: 1, Bottom: 1, Left: 2},
		Decoration:  Divider{Size: 4},
	})
	if err := l.Pass(nil); err != nil {
		t.Fatalf("Pass() error = %v", err)
	}

	items := l.Items()
	if got := items[0].DecoratedMainSize(); got != 16 {
		t.Errorf("first decorated size = %d, want 16 (10 + margins 2 + divider 4)", got)
	}
	if got := items[1].DecoratedMainSize(); got != 12 {
		t.Errorf("last decorated size = %d, want 12 (no divider after last)", got)
	}

	want := []Rect{
		{X: 5, Y: 6, Width: 10, Height: 10},
		{X: 5, Y: 22, Width: 10, Height: 10},
	}
	if diff := cmp.Diff(want, bounds(l)); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}
	if l.ViewportExtent() != 95 {
		t.Errorf("ViewportExtent() = %d, want 95", l.ViewportExtent())
	}
}

func TestPassReverse(t *testing.T) {
	l := New(vertical(100, 200), Options{Width: 40, Height: 1000, Reverse: true})
	if err := l.Pass(nil); err != nil {
		t.Fatalf("Pass() error = %v", err)
	}

	want := []Rect{
		{X: 0, Y: 900, Width: 10, Height: 100},
		{X: 0, Y: 700, Width: 10, Height: 200},
	}
	if diff := cmp.Diff(want, bounds(l)); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestPassStopsAtViewport(t *testing.T) {
	l := New(vertical(400, 400, 400, 400), Options{Width: 40, Height: 1000})
	if err := l.Pass(nil); err != nil {
		t.Fatalf("Pass() error = %v", err)
	}
	if l.RealizedCount() != 3 {
		t.Errorf("RealizedCount() = %d, want 3", l.RealizedCount())
	}
	if l.TotalCount() != 4 {
		t.Errorf("TotalCount() = %d, want 4", l.TotalCount())
	}
}

func TestPassAnchorOffset(t *testing.T) {
	t.Run("scrolled", func(t *testing.T) {
		l := New(vertical(100, 100, 100, 100, 100), Options{Width: 10, Height: 150, Anchor: 1, Offset: 30})
		if err := l.Pass(nil); err != nil {
			t.Fatalf("Pass() error = %v", err)
		}
		items := l.Items()
		if len(items) != 2 || items[0].Position != 1 {
			t.Fatalf("realized positions wrong: %d items, first %d", len(items), items[0].Position)
		}
		if items[0].Bounds().Y != -30 {
			t.Errorf("anchor Y = %d, want -30", items[0].Bounds().Y)
		}
	})

	t.Run("pulls earlier items in", func(t *testing.T) {
		l := New(vertical(100, 100, 100), Options{Width: 10, Height: 1000, Anchor: 2, Offset: 50})
		if err := l.Pass(nil); err != nil {
			t.Fatalf("Pass() error = %v", err)
		}
		var positions []int
		for _, it := range l.Items() {
			positions = append(positions, it.Position)
		}
		if diff := cmp.Diff([]int{0, 1, 2}, positions); diff != "" {
			t.Errorf("positions mismatch (-want +got):\n%s", diff)
		}
		if y := l.Realized(0).Bounds().Y; y != 0 {
			t.Errorf("first Y = %d, want 0", y)
		}
	})
}

func TestPassHookOncePerItemInOrder(t *testing.T) {
	l := New(vertical(10, 20, 30), Options{Width: 10, Height: 100})

	var seen []int
	err := l.Pass(func(it *Item) error {
		if it.MainSize() != 0 {
			t.Errorf("item %d measured before hook", it.Position)
		}
		seen = append(seen, it.Position)
		return nil
	})
	if err != nil {
		t.Fatalf("Pass() error = %v", err)
	}
	if diff := cmp.Diff([]int{0, 1, 2}, seen); diff != "" {
		t.Errorf("hook order mismatch (-want +got):\n%s", diff)
	}
}

func TestPassConstraintIsMainAxisOnly(t *testing.T) {
	l := New(vertical(10, 20), Options{Width: 10, Height: 100})
	err := l.Pass(func(it *Item) error {
		if it.Position == 1 {
			it.SetConstraint(55)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Pass() error = %v", err)
	}

	got := l.Realized(1).Measured()
	if got != (Size{Width: 10, Height: 55}) {
		t.Errorf("Measured() = %+v, want 10x55", got)
	}
}

func TestPassConstraintDoesNotLeak(t *testing.T) {
	l := New(vertical(10, 20), Options{Width: 10, Height: 100})
	_ = l.Pass(func(it *Item) error {
		it.SetConstraint(70)
		return nil
	})
	if err := l.Pass(nil); err != nil {
		t.Fatalf("Pass() error = %v", err)
	}
	if h := l.Realized(0).MainSize(); h != 10 {
		t.Errorf("second pass MainSize() = %d, want natural 10", h)
	}
	if l.Passes() != 2 {
		t.Errorf("Passes() = %d, want 2", l.Passes())
	}
}

func TestSetConstraintIgnoresNonPositive(t *testing.T) {
	it := &Item{}
	it.SetConstraint(0)
	it.SetConstraint(-5)
	if it.Constraint() != 0 {
		t.Errorf("Constraint() = %d, want 0", it.Constraint())
	}
	it.SetConstraint(8)
	it.ClearConstraint()
	if it.Constraint() != 0 {
		t.Errorf("Constraint() after clear = %d, want 0", it.Constraint())
	}
}

func TestPassCrossCappedByViewport(t *testing.T) {
	adapter := Static{
		{Type: 1, Size: Size{Width: 500, Height: 10}},
		{Type: 1, Size: Size{Width: 5, Height: 10}, FillCross: true},
	}
	l := New(adapter, Options{Width: 40, Height: 100, Padding: Edges{Left: 2, Right: 2}})
	if err := l.Pass(nil); err != nil {
		t.Fatalf("Pass() error = %v", err)
	}
	if w := l.Realized(0).CrossSize(); w != 36 {
		t.Errorf("capped cross = %d, want 36", w)
	}
	if w := l.Realized(1).CrossSize(); w != 36 {
		t.Errorf("fill cross = %d, want 36", w)
	}
}

func TestPassEmpty(t *testing.T) {
	l := New(Static{}, Options{Width: 10, Height: 10})
	if err := l.Pass(nil); err != nil {
		t.Fatalf("Pass() error = %v", err)
	}
	if l.RealizedCount() != 0 {
		t.Errorf("RealizedCount() = %d, want 0", l.RealizedCount())
	}
}

// shrinkingAdapter drops to zero items after the first measurement.
type shrinkingAdapter struct {
	Static
	measured bool
}

func (s *shrinkingAdapter) ItemCount() int {
	if s.measured {
		return 0
	}
	return len(s.Static)
}

func (s *shrinkingAdapter) Measure(position int, w, h Hint) Size {
	s.measured = true
	return s.Static.Measure(position, w, h)
}

type negativeAdapter struct{ Static }

func (negativeAdapter) Measure(int, Hint, Hint) Size { return Size{Width: -1, Height: 10} }

func TestPassHostContract(t *testing.T) {
	tests := []struct {
		name    string
		adapter Adapter
	}{
		{"adapter shrinks mid-pass", &shrinkingAdapter{Static: vertical(10, 10)}},
		{"negative measurement", negativeAdapter{Static: vertical(10)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.adapter, Options{Width: 10, Height: 100})
			err := l.Pass(nil)
			if !errors.Is(err, errors.ErrCodeHostContract) {
				t.Errorf("Pass() error = %v, want %s", err, errors.ErrCodeHostContract)
			}
		})
	}
}
