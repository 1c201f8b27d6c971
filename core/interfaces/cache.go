// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Cache implementations when a key is absent or expired
var ErrCacheMiss = errors.New("cache: key not found")

// Cache is the durable key-value storage port.
// Implementations can be SQLite, Redis, in-memory, or any other store.
//
// Example usage:
//
//	// Store a value with no expiry
//	err := cache.Set(ctx, "news:technology:1:50", payload, 0)
//
//	// Retrieve a value
//	data, err := cache.Get(ctx, "news:technology:1:50")
//	if errors.Is(err, interfaces.ErrCacheMiss) {
//		// absent
//	}
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns ErrCacheMiss if the key doesn't exist; other errors mean the store failed.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
