package adjust

import (
	"math"

	"github.com/matzehuels/adjustable/pkg/errors"
	"github.com/matzehuels/adjustable/pkg/linear"
)

const (
	// NoType is the type tag sentinel that matches no item.
	NoType = -11221

	// NoPosition leaves the adjustable item's position unconstrained.
	NoPosition = -1

	// DefaultMaxCount is the largest item count for which the measurement
	// protocol runs.
	DefaultMaxCount = 12
)

// Config selects the adjustable item and its minimum size.
type Config struct {
	// AdjustableType is the type tag of the adjustable item.
	AdjustableType int `json:"type" toml:"type"`

	// AdjustablePosition, when not NoPosition, additionally requires the
	// adjustable item to sit at this adapter position.
	AdjustablePosition int `json:"position" toml:"position"`

	// MinSize is the absolute minimum main-axis size. Values <= 0 are unset.
	MinSize int `json:"min_size,omitempty" toml:"min_size"`

	// MinRatio scales the item's cross-axis size to derive the minimum when
	// MinSize is unset. Values <= 0 mean 1.0.
	MinRatio float64 `json:"min_ratio,omitempty" toml:"min_ratio"`

	// MaxCount skips adjustment when the host holds more items. 0 disables
	// the cap.
	MaxCount int `json:"max_count" toml:"max_count"`
}

// DefaultConfig returns a configuration that adjusts nothing.
func DefaultConfig() Config {
	return Config{
		AdjustableType:     NoType,
		AdjustablePosition: NoPosition,
		MaxCount:           DefaultMaxCount,
	}
}

// Validate rejects configurations that cannot be meaningful.
func (c Config) Validate() error {
	v := errors.NewValidation(errors.ErrCodeInvalidConfig)
	if c.AdjustablePosition < NoPosition {
		v.Add("position", "must be >= 0 or %d, got %d", NoPosition, c.AdjustablePosition)
	}
	if c.MaxCount < 0 {
		v.Add("max_count", "must be >= 0, got %d", c.MaxCount)
	}
	if math.IsNaN(c.MinRatio) || math.IsInf(c.MinRatio, 0) {
		v.Add("min_ratio", "must be a finite number")
	}
	return v.Err()
}

// IsAdjustable reports whether it is the adjustable item.
func (c Config) IsAdjustable(it *linear.Item) bool {
	if c.AdjustableType == NoType || it.Type != c.AdjustableType {
		return false
	}
	return c.AdjustablePosition == NoPosition || it.Position == c.AdjustablePosition
}

// Ratio returns the effective minimum ratio.
func (c Config) Ratio() float64 {
	if c.MinRatio <= 0 {
		return 1.0
	}
	return c.MinRatio
}

// MinSizeFor returns the minimum main-axis size of it. The ratio form needs
// a measured cross size. Callers treat a result <= 0 as no override.
func (c Config) MinSizeFor(it *linear.Item) int {
	if c.MinSize > 0 {
		return c.MinSize
	}
	return int(math.Round(c.Ratio() * float64(it.CrossSize())))
}

// countAllowed reports whether total items are few enough to adjust.
func (c Config) countAllowed(total int) bool {
	return c.MaxCount <= 0 || total <= c.MaxCount
}

// positionReachable reports whether the configured position can exist.
func (c Config) positionReachable(total int) bool {
	return c.AdjustablePosition == NoPosition || c.AdjustablePosition < total
}
