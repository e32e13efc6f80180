package cache

import (
	"context"
	"sync"
	"time"

	"github.com/fxmirror/fxmirror/pkg/cache"
)

// MemoryCache implements cache.Cache using process-local in-memory storage.
// Entries are checked for staleness lazily on read; a background sweep prunes
// what reads never touch again.
type MemoryCache[T any] struct {
	mu        sync.RWMutex
	entries   map[string]memoryEntry[T]
	now       func() time.Time
	done      chan struct{}
	closeOnce sync.Once
}

type memoryEntry[T any] struct {
	value     T
	expiresAt time.Time
}

// NewMemoryCache creates a new in-memory cache using the wall clock.
func NewMemoryCache[T any]() *MemoryCache[T] {
	c := &MemoryCache[T]{
		entries: make(map[string]memoryEntry[T]),
		now:     time.Now,
		done:    make(chan struct{}),
	}

	go c.sweep()

	return c
}

// NewMemoryCacheWithClock creates an in-memory cache with an injected clock
// and no background sweep. Tests use this to control entry expiry.
func NewMemoryCacheWithClock[T any](now func() time.Time) *MemoryCache[T] {
	return &MemoryCache[T]{
		entries: make(map[string]memoryEntry[T]),
		now:     now,
	}
}

// Get returns the value for key if a valid entry exists.
func (c *MemoryCache[T]) Get(_ context.Context, key string) (T, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || !c.now().Before(entry.expiresAt) {
		var zero T
		return zero, false, nil
	}
	return entry.value, true, nil
}

// Set stores value under key with the given TTL, replacing any prior entry.
func (c *MemoryCache[T]) Set(_ context.Context, key string, value T, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry[T]{
		value:     value,
		expiresAt: c.now().Add(ttl),
	}
	return nil
}

// Delete removes the entry for key.
func (c *MemoryCache[T]) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}

// Close stops the background sweep. Safe to call more than once; the cache
// itself stays usable, entries just expire lazily from then on.
func (c *MemoryCache[T]) Close() {
	c.closeOnce.Do(func() {
		if c.done != nil {
			close(c.done)
		}
	})
}

// Ensure MemoryCache implements cache.Cache
var _ cache.Cache[struct{}] = (*MemoryCache[struct{}])(nil)

// sweep removes expired entries periodically until Close is called.
func (c *MemoryCache[T]) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.mu.Lock()
			now := c.now()
			for key, entry := range c.entries {
				if !now.Before(entry.expiresAt) {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		}
	}
}
