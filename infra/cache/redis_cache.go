package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fxmirror/fxmirror/pkg/cache"
	"github.com/redis/go-redis/v9"
)

// RedisCache implements cache.Cache on top of Redis. Payloads are stored as
// JSON and expiry is delegated to the server-side TTL, so the staleness
// window survives process restarts when Redis is shared.
type RedisCache[T any] struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisCache creates a Redis-backed cache from client options.
func NewRedisCache[T any](opt *redis.Options, prefix string, logger *slog.Logger) *RedisCache[T] {
	return &RedisCache[T]{
		client: redis.NewClient(opt),
		prefix: prefix,
		logger: logger,
	}
}

func (c *RedisCache[T]) key(key string) string {
	return c.prefix + key
}

// Get returns the value for key if a valid entry exists.
func (c *RedisCache[T]) Get(ctx context.Context, key string) (T, bool, error) {
	var zero T

	payload, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return zero, false, nil
	}
	if err != nil {
		c.logger.Error("redis cache get failed", "key", key, "error", err)
		return zero, false, err
	}

	var value T
	if err := json.Unmarshal(payload, &value); err != nil {
		return zero, false, fmt.Errorf("decode cached payload for %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key with the given TTL, replacing any prior entry.
func (c *RedisCache[T]) Set(ctx context.Context, key string, value T, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode payload for %q: %w", key, err)
	}
	return c.client.Set(ctx, c.key(key), payload, ttl).Err()
}

// Delete removes the entry for key.
func (c *RedisCache[T]) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.key(key)).Err()
}

// Ensure RedisCache implements cache.Cache
var _ cache.Cache[struct{}] = (*RedisCache[struct{}])(nil)
