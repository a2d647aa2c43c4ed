// Package cache provides the local key-value store behind the recent-image
// history and the language selection.
//
// # Backends
//
//   - [FileCache]: one JSON file per key under a directory, for the CLI
//   - [MemoryCache]: process-local map, for tests and throwaway sessions
//   - [NullCache]: stores nothing; readers see an empty store
//
// # Keys
//
// Keys come from a [Keyer]. [DefaultKeyer] produces the fixed keys
// "puzzle-history" and "puzzle-lang"; [ScopedKeyer] prefixes them so several
// profiles can share one store directory.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key-value store with optional expiry.
type Cache interface {
	// Get returns the value stored under key. A missing or expired key is
	// reported as a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the store.
	Close() error
}
