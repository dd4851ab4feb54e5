package cache

import "fmt"

// Keyer derives cache keys for pipeline stages.
type Keyer interface {
	// LayoutKey returns the key of the layout computed for a scene hash.
	LayoutKey(sceneHash string) string

	// RenderKey returns the key of a layout rendered in format.
	RenderKey(layoutID, format string) string
}

// DefaultKeyer produces unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey implements Keyer.
func (DefaultKeyer) LayoutKey(sceneHash string) string {
	return "layout:" + sceneHash
}

// RenderKey implements Keyer.
func (DefaultKeyer) RenderKey(layoutID, format string) string {
	return hashKey(fmt.Sprintf("render:%s", format), layoutID)
}
