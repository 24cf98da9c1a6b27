// Package cache stores ladder results between invocations.
//
// A search over a large dictionary repeats the same work for the same query,
// so the pipeline keys each result by the dictionary's content hash, the two
// endpoints and the search options, and stores the encoded result in a [Cache].
//
// # Implementations
//
//   - [FileCache]: one JSON file per entry under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for several machines using one dictionary
//   - [NullCache]: stores nothing, used with --no-cache
//
// # Keys
//
// [Keyer] builds keys; [DefaultKeyer] hashes every component so keys have a
// fixed length regardless of word or option values. [ScopedKeyer] prefixes
// keys to separate namespaces sharing one backend.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key-value store with per-entry expiry.
type Cache interface {
	// Get returns the stored data and true, or nil and false on a miss.
	// Expired entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
