package cache

import (
	"context"
	"time"
)

// Cache is the contract for the cache layer. Implementations must be safe
// for concurrent use; a nil-safe no-op implementation is acceptable when
// no backing store is configured.
type Cache interface {
	// Get reads a key and unmarshals it into dest.
	// found = false means cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)

	// Set stores a value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}

// Noop is used when no cache backend is configured. Every read is a miss.
type Noop struct{}

func (Noop) Get(ctx context.Context, key string, dest interface{}) (bool, error) { return false, nil }
func (Noop) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}
func (Noop) Delete(ctx context.Context, keys ...string) error { return nil }
func (Noop) Ping(ctx context.Context) error                   { return nil }
