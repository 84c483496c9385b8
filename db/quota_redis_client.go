package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// QuotaRedisClient struct holds the go-redis client used for call counters
type QuotaRedisClient struct {
	client *redis.Client
}

// NewQuotaRedisClient connects to redis and verifies the connection.
func NewQuotaRedisClient(ctx context.Context, client *redis.Client) (*QuotaRedisClient, error) {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}
	log.Println("[QuotaRedisClient] Connected to Redis")

	return &QuotaRedisClient{client: client}, nil
}

// Incr increments the counter stored at key
func (r *QuotaRedisClient) Incr(ctx context.Context, key string) (int64, error) {
	return r.client.Incr(ctx, key).Result()
}

// Expire sets the counter time to live
func (r *QuotaRedisClient) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return r.client.Expire(ctx, key, ttl).Err()
}

func (r *QuotaRedisClient) Ping(ctx context.Context) error {
	_, err := r.client.Ping(ctx).Result()
	return err
}

func (r *QuotaRedisClient) Close() error {
	return r.client.Close()
}
