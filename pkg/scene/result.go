package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/matzehuels/adjustable/pkg/adjust"
	"github.com/matzehuels/adjustable/pkg/errors"
	"github.com/matzehuels/adjustable/pkg/linear"
)

// Result is the serialized outcome of laying out a scene.
type Result struct {
	ID          string       `json:"id"`
	Name        string       `json:"name,omitempty"`
	Orientation string       `json:"orientation"`
	Viewport    linear.Size  `json:"viewport"`
	Extent      int          `json:"extent"`   // main-axis space available to items
	Consumed    int          `json:"consumed"` // decorated main-axis space used
	Passes      int          `json:"passes"`
	Qualifying  int          `json:"qualifying"`
	Resolved    int          `json:"resolved,omitempty"`
	Items       []PlacedItem `json:"items"`
}

// PlacedItem is a realized item with its final bounds.
type PlacedItem struct {
	Position int    `json:"position"`
	Type     int    `json:"type"`
	Label    string `json:"label,omitempty"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Adjusted bool   `json:"adjusted,omitempty"`
}

// Fills reports whether the realized items use exactly the available extent.
func (r Result) Fills() bool { return r.Consumed == r.Extent }

// Compute lays out s with an adjust.Manager and returns the result.
func Compute(s *Scene, opts ...adjust.Option) (Result, error) {
	host := s.Host()
	m := adjust.NewManager(append([]adjust.Option{adjust.WithConfig(s.Adjust)}, opts...)...)
	res, err := m.Layout(host)
	if err != nil {
		return Result{}, fmt.Errorf("layout scene %q: %w", s.Name, err)
	}
	return NewResult(s, host, m.Config(), res), nil
}

// NewResult captures the realized items of host after a layout.
func NewResult(s *Scene, host *linear.Layout, cfg adjust.Config, res adjust.Result) Result {
	out := Result{
		ID:          uuid.NewString(),
		Name:        s.Name,
		Orientation: host.Orientation().String(),
		Viewport:    s.Viewport,
		Extent:      host.ViewportExtent(),
		Consumed:    host.Consumed(),
		Passes:      res.Passes,
		Qualifying:  res.State.Qualifying,
		Items:       make([]PlacedItem, 0, host.RealizedCount()),
	}
	if res.Resized() {
		out.Resolved = res.State.Resolved
	}
	for _, it := range host.Items() {
		b := it.Bounds()
		p := PlacedItem{
			Position: it.Position,
			Type:     it.Type,
			X:        b.X,
			Y:        b.Y,
			Width:    b.Width,
			Height:   b.Height,
			Adjusted: res.Resized() && cfg.IsAdjustable(it),
		}
		if it.Position < len(s.Items) {
			p.Label = s.Items[it.Position].Label
		}
		out.Items = append(out.Items, p)
	}
	return out
}

// MarshalResult serializes a Result to pretty-printed JSON bytes.
func MarshalResult(r Result) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// UnmarshalResult deserializes JSON bytes into a Result.
func UnmarshalResult(data []byte) (Result, error) {
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return Result{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "unmarshal layout result")
	}
	if r.ID == "" {
		return Result{}, errors.New(errors.ErrCodeInvalidInput, "layout result has no id")
	}
	return r, nil
}

// WriteResultFile writes a Result to a JSON file.
func WriteResultFile(r Result, path string) error {
	data, err := MarshalResult(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultFile reads a Result from a JSON file.
func ReadResultFile(path string) (Result, error) {
	if err := errors.ValidatePath(path); err != nil {
		return Result{}, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Result{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout %s not found", path)
	}
	if err != nil {
		return Result{}, err
	}
	return UnmarshalResult(data)
}
