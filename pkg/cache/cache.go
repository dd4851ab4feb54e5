// Package cache stores computed layouts and rendered artifacts between runs.
//
// Two implementations are provided: [FileCache] keeps JSON-wrapped entries
// under a directory (the CLI default), and [NullCache] stores nothing.
// Keys are produced by a [Keyer] from content hashes, so a cached entry is
// only reused for an identical scene.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiration.
type Cache interface {
	// Get returns the value for key and whether it was found.
	// Expired or corrupt entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Entry lifetimes.
const (
	// TTLLayout is how long a computed layout stays valid. Layouts are a pure
	// function of the scene, so this only bounds disk usage.
	TTLLayout = 7 * 24 * time.Hour

	// TTLRender is how long a rendered artifact stays valid.
	TTLRender = 24 * time.Hour
)
