package cache

import (
	"context"
	"time"
)

// Cache stores payloads with a per-entry time-to-live. An entry is valid only
// while its age is below the TTL it was stored with; expired entries are
// treated as absent and are never returned.
type Cache[T any] interface {
	// Get returns the cached value for key and whether a valid entry exists.
	Get(ctx context.Context, key string) (T, bool, error)
	// Set stores value under key, replacing any previous entry.
	Set(ctx context.Context, key string, value T, ttl time.Duration) error
	// Delete removes the entry for key, if any.
	Delete(ctx context.Context, key string) error
}
