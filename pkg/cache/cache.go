// Package cache provides caching for expensive arrangement computations.
//
// Two backends are provided:
//   - FileCache: file-based cache for CLI usage (~/.cache/pinwall)
//   - RedisCache: Redis-backed cache for server deployments
//
// The Cache interface stores opaque byte blobs under string keys with a TTL.
// Key construction is the job of a Keyer, which derives stable keys from
// board content hashes and arrangement options so identical inputs always hit
// the same entry.
package cache

import (
	"context"
	"time"
)

// TTLs for the different cache entry types.
const (
	// LayoutTTL is how long computed arrangements stay cached. Layouts are
	// pure functions of their key, so this is bounded only by disk usage.
	LayoutTTL = 7 * 24 * time.Hour

	// BoardTTL is how long serialized boards fetched from a remote store
	// stay cached locally.
	BoardTTL = time.Hour
)

// Cache is a byte-oriented cache with TTL support.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was present
	// and unexpired. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A non-positive TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// LayoutKeyOpts are the arrangement options that affect a computed layout.
// Every field participates in the cache key: changing any of them must
// produce a different key.
type LayoutKeyOpts struct {
	Strategy    string
	Width       float64
	Height      float64
	Seed        uint64
	Orientation string
}

// Keyer generates cache keys for the different entry types.
type Keyer interface {
	// BoardKey generates a key for a serialized board in the given namespace.
	BoardKey(namespace, name string) string

	// LayoutKey generates a key for a computed arrangement of the board
	// with the given content hash.
	LayoutKey(boardHash string, opts LayoutKeyOpts) string
}

// DefaultKeyer is the standard key generation strategy.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// BoardKey generates a key for board caching.
// Format: board:namespace:name
func (k *DefaultKeyer) BoardKey(namespace, name string) string {
	return "board:" + namespace + ":" + name
}

// LayoutKey generates a key for layout caching.
// The options are hashed into the key so any change invalidates the entry.
func (k *DefaultKeyer) LayoutKey(boardHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", boardHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
