package db

import (
	"context"
	"log"
	"sync"
	"time"
)

// MockRedisClient simulates the redis counters in memory for testing purposes.
type MockRedisClient struct {
	counters map[string]int64         // Counter store
	expiries map[string]time.Duration // Last ttl set per key
	mu       sync.Mutex               // Mutex for thread-safe operations

	// Err, when set, is returned by every operation.
	Err error
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{
		counters: make(map[string]int64),
		expiries: make(map[string]time.Duration),
	}
}

// Incr increments the in-memory counter at key.
func (m *MockRedisClient) Incr(ctx context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	m.counters[key]++
	return m.counters[key], nil
}

// Expire records the ttl; keys never actually expire in the mock.
func (m *MockRedisClient) Expire(ctx context.Context, key string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.expiries[key] = ttl
	return nil
}

// TTL returns the last ttl set on key.
func (m *MockRedisClient) TTL(key string) (time.Duration, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ttl, ok := m.expiries[key]
	return ttl, ok
}

// Ping simulates a Redis Ping operation.
func (m *MockRedisClient) Ping(ctx context.Context) error {
	if m.Err != nil {
		return m.Err
	}
	log.Println("[MockRedisClient] Ping successful")
	return nil
}

func (m *MockRedisClient) Close() error {
	return nil
}
