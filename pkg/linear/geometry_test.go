package linear

import "testing"

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		in      string
		want    Orientation
		wantErr bool
	}{
		{"", Vertical, false},
		{"vertical", Vertical, false},
		{"V", Vertical, false},
		{"horizontal", Horizontal, false},
		{" h ", Horizontal, false},
		{"diagonal", Vertical, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOrientation(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOrientation(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseOrientation(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSizeAxes(t *testing.T) {
	s := Size{Width: 3, Height: 7}
	if s.Main(Vertical) != 7 || s.Cross(Vertical) != 3 {
		t.Errorf("vertical main/cross = %d/%d, want 7/3", s.Main(Vertical), s.Cross(Vertical))
	}
	if s.Main(Horizontal) != 3 || s.Cross(Horizontal) != 7 {
		t.Errorf("horizontal main/cross = %d/%d, want 3/7", s.Main(Horizontal), s.Cross(Horizontal))
	}
}

func TestEdgesAxes(t *testing.T) {
	e := Edges{Top: 1, Right: 2, Bottom: 3, Left: 4}
	if e.Main(Vertical) != 4 || e.Cross(Vertical) != 6 {
		t.Errorf("vertical main/cross = %d/%d, want 4/6", e.Main(Vertical), e.Cross(Vertical))
	}
	if e.Leading(Horizontal) != 4 || e.CrossLeading(Horizontal) != 1 {
		t.Errorf("horizontal leading = %d/%d, want 4/1", e.Leading(Horizontal), e.CrossLeading(Horizontal))
	}
	if got := e.Add(EdgeAll(1)); got != (Edges{Top: 2, Right: 3, Bottom: 4, Left: 5}) {
		t.Errorf("Add() = %+v", got)
	}
}

func TestHintResolve(t *testing.T) {
	tests := []struct {
		name    string
		hint    Hint
		natural int
		want    int
	}{
		{"unspecified", Hint{}, 42, 42},
		{"exactly grows", ExactlyHint(50), 10, 50},
		{"exactly shrinks", ExactlyHint(5), 10, 5},
		{"at most caps", AtMostHint(8), 10, 8},
		{"at most passes", AtMostHint(20), 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hint.Resolve(tt.natural); got != tt.want {
				t.Errorf("Resolve(%d) = %d, want %d", tt.natural, got, tt.want)
			}
		})
	}
}

func TestDividerInsets(t *testing.T) {
	d := Divider{Size: 2}
	if got := d.Insets(0, 3, Vertical); got != (Edges{Bottom: 2}) {
		t.Errorf("vertical insets = %+v", got)
	}
	if got := d.Insets(0, 3, Horizontal); got != (Edges{Right: 2}) {
		t.Errorf("horizontal insets = %+v", got)
	}
	if got := d.Insets(2, 3, Vertical); got != (Edges{}) {
		t.Errorf("last item insets = %+v, want none", got)
	}
}
