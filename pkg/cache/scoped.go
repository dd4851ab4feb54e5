package cache

// ScopedKeyer wraps a Keyer with a prefix so separate front ends (the CLI
// and the HTTP server, for instance) can share one cache directory without
// reading each other's entries.
//
//	apiKeyer := NewScopedKeyer(NewDefaultKeyer(), "api:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// LayoutKey generates a prefixed layout key.
func (k *ScopedKeyer) LayoutKey(sceneHash string) string {
	return k.prefix + k.inner.LayoutKey(sceneHash)
}

// RenderKey generates a prefixed render key.
func (k *ScopedKeyer) RenderKey(layoutID, format string) string {
	return k.prefix + k.inner.RenderKey(layoutID, format)
}
