package db

import (
	"context"
	"time"
)

// RedisClient defines the counter operations the provider quota relies on
type RedisClient interface {
	// Incr increments key and returns the new value, creating it at 1.
	Incr(ctx context.Context, key string) (int64, error)
	// Expire sets a time to live on key.
	Expire(ctx context.Context, key string, ttl time.Duration) error
	Ping(ctx context.Context) error
	Close() error
}
