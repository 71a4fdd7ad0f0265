// Package cache provides byte-level caching backends for remote responses.
//
// Three backends are provided:
//   - [FileCache]: entries stored as JSON files under a directory, with TTL
//   - [RedisCache]: entries stored as Redis keys, shared between machines
//   - [NullCache]: stores nothing; every lookup is a miss
//
// Caching is opt-in for aurorder. A resolution with the [NullCache] re-fetches
// every record from the AUR, which is the default behavior of the CLI.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values by key.
type Cache interface {
	// Get returns the value for key. The bool reports a hit; a miss is not
	// an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// Clearer is implemented by backends that can drop all of their entries.
type Clearer interface {
	// Clear removes every entry and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}
