package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/storefront-cart/internal/config"
	"github.com/redis/go-redis/v9"
)

// RedisCache keeps cart snapshots in Redis. It accepts any UniversalClient so
// a cluster or sentinel setup works without changes.
type RedisCache struct {
	client     redis.UniversalClient
	defaultTTL time.Duration
}

func NewRedisCache(client redis.UniversalClient, cfg *config.CacheConfig) *RedisCache {
	return &RedisCache{
		client:     client,
		defaultTTL: cfg.DefaultTTL,
	}
}

func (c *RedisCache) Get(ctx context.Context, key string, dest any, ttl time.Duration) (bool, error) {

	var cmd *redis.StringCmd
	if ttl > 0 {
		// GETEX reads and slides the expiry in one round trip
		cmd = c.client.GetEx(ctx, key, ttl)
	} else {
		cmd = c.client.Get(ctx, key)
	}

	raw, err := cmd.Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		return false, opError("get", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("cache: decode %s: %w", key, err)
	}

	return true, nil
}

// Set falls back to the configured default TTL when ttl is not positive.
func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}

	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return opError("set", key, err)
	}

	return nil
}

// Delete is idempotent; a missing key is not an error.
func (c *RedisCache) Delete(ctx context.Context, key string) error {

	if err := c.client.Del(ctx, key).Err(); err != nil {
		return opError("delete", key, err)
	}

	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func opError(op, key string, err error) error {
	return fmt.Errorf("cache: redis %s %s: %w", op, key, err)
}
