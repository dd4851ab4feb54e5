// Package scene describes a list to lay out and the result of laying it out.
//
// A scene is a viewport, a list of items with natural sizes and type tags,
// and the adjustment configuration. Scenes are read from TOML or JSON:
//
//	name = "settings"
//	orientation = "vertical"
//	divider = 1
//
//	[viewport]
//	width = 40
//	height = 24
//
//	[adjust]
//	type = 2
//	min_size = 3
//
//	[[items]]
//	type = 1
//	label = "header"
//	height = 3
//
// Fields left out of the [adjust] table keep the values of
// [adjust.DefaultConfig].
package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/adjustable/pkg/adjust"
	"github.com/matzehuels/adjustable/pkg/errors"
	"github.com/matzehuels/adjustable/pkg/linear"
)

// Supported scene encodings.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
)

// Scene is a list layout problem.
type Scene struct {
	Name        string        `json:"name,omitempty" toml:"name"`
	Orientation string        `json:"orientation,omitempty" toml:"orientation"`
	Viewport    linear.Size   `json:"viewport" toml:"viewport"`
	Padding     linear.Edges  `json:"padding" toml:"padding"`
	Margins     linear.Edges  `json:"margins" toml:"margins"`
	Divider     int           `json:"divider,omitempty" toml:"divider"`
	Reverse     bool          `json:"reverse,omitempty" toml:"reverse"`
	Adjust      adjust.Config `json:"adjust" toml:"adjust"`
	Items       []Item        `json:"items" toml:"items"`
}

// Item is one list entry with its natural size.
type Item struct {
	Type      int    `json:"type" toml:"type"`
	Label     string `json:"label,omitempty" toml:"label"`
	Width     int    `json:"width,omitempty" toml:"width"`
	Height    int    `json:"height,omitempty" toml:"height"`
	FillCross bool   `json:"fill_cross,omitempty" toml:"fill_cross"`
}

// New returns an empty scene with the default adjustment configuration.
func New() *Scene {
	return &Scene{Adjust: adjust.DefaultConfig()}
}

// Decode parses data in the given format and validates the result.
func Decode(data []byte, format string) (*Scene, error) {
	s := New()
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, s); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode toml scene")
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(s); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode json scene")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported scene format %q (must be toml or json)", format)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// FormatFromPath infers the scene encoding from a file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer scene format from %q (use .toml or .json)", path)
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene %s not found", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read scene %s", path)
	}
	s, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Validate reports every invalid field of the scene at once.
func (s *Scene) Validate() error {
	v := errors.NewValidation(errors.ErrCodeInvalidScene)

	if _, err := linear.ParseOrientation(s.Orientation); err != nil {
		v.Add("orientation", "must be vertical or horizontal, got %q", s.Orientation)
	}
	if s.Viewport.Width <= 0 {
		v.Add("viewport.width", "must be positive, got %d", s.Viewport.Width)
	}
	if s.Viewport.Height <= 0 {
		v.Add("viewport.height", "must be positive, got %d", s.Viewport.Height)
	}
	checkEdges(v, "padding", s.Padding)
	checkEdges(v, "margins", s.Margins)
	if s.Divider < 0 {
		v.Add("divider", "must not be negative, got %d", s.Divider)
	}
	for _, f := range errors.Fields(s.Adjust.Validate()) {
		v.Add("adjust."+f.Field, "%s", f.Reason)
	}
	for i, it := range s.Items {
		if it.Width < 0 || it.Height < 0 {
			v.Add(itemField(i), "size must not be negative, got %dx%d", it.Width, it.Height)
		}
	}
	return v.Err()
}

func checkEdges(v *errors.ValidationError, field string, e linear.Edges) {
	if e.Top < 0 || e.Right < 0 || e.Bottom < 0 || e.Left < 0 {
		v.Add(field, "must not be negative, got %+v", e)
	}
}

func itemField(i int) string {
	return fmt.Sprintf("items[%d]", i)
}

// Options returns the layout options for the scene. The scene must be valid.
func (s *Scene) Options() linear.Options {
	o, _ := linear.ParseOrientation(s.Orientation)
	opts := linear.Options{
		Orientation: o,
		Width:       s.Viewport.Width,
		Height:      s.Viewport.Height,
		Padding:     s.Padding,
		ItemMargins: s.Margins,
		Reverse:     s.Reverse,
	}
	if s.Divider > 0 {
		opts.Decoration = linear.Divider{Size: s.Divider}
	}
	return opts
}

// Adapter returns the scene items as a static data source.
func (s *Scene) Adapter() linear.Static {
	out := make(linear.Static, len(s.Items))
	for i, it := range s.Items {
		out[i] = linear.StaticItem{
			Type:      it.Type,
			Size:      linear.Size{Width: it.Width, Height: it.Height},
			FillCross: it.FillCross,
		}
	}
	return out
}

// Host builds the list layout for the scene.
func (s *Scene) Host() *linear.Layout {
	return linear.New(s.Adapter(), s.Options())
}

// Marshal serializes the scene to canonical JSON. Equal scenes produce
// equal bytes, which makes the output suitable as a cache key input.
func Marshal(s *Scene) ([]byte, error) {
	return json.Marshal(s)
}
