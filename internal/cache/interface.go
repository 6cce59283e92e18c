package cache

import (
	"context"
	"time"
)

// Cache stores JSON encoded values under namespaced keys.
type Cache interface {
	// Get decodes the value at key into dest and reports whether it existed.
	// A positive ttl also pushes the key's expiry out, so reads keep a
	// session alive.
	Get(ctx context.Context, key string, dest any, ttl time.Duration) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	CartKeyPrefix = "cart"
)
