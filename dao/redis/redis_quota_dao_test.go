package redis

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/db"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestRedisQuotaDAO_Allow_WithinLimit(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient()
	dao := NewRedisQuotaDAO(mockClient, 2)
	dao.now = fixedClock(time.Date(2024, 5, 1, 10, 15, 30, 0, time.UTC))

	// Act
	first, err := dao.Allow(context.Background())
	require.NoError(t, err)
	second, err := dao.Allow(context.Background())
	require.NoError(t, err)
	third, err := dao.Allow(context.Background())
	require.NoError(t, err)

	// Assert
	assert.True(t, first)
	assert.True(t, second)
	assert.False(t, third)
}

func TestRedisQuotaDAO_Allow_SetsExpiryOnWindowKey(t *testing.T) {
	mockClient := db.NewMockRedisClient()
	dao := NewRedisQuotaDAO(mockClient, 5)
	now := time.Date(2024, 5, 1, 10, 15, 30, 0, time.UTC)
	dao.now = fixedClock(now)

	_, err := dao.Allow(context.Background())
	require.NoError(t, err)

	expectedKey := fmt.Sprintf(PROVIDER_CALLS_KEY_FORMAT, time.Date(2024, 5, 1, 10, 15, 0, 0, time.UTC).Unix())
	ttl, ok := mockClient.TTL(expectedKey)
	require.True(t, ok, "expected expiry on %s", expectedKey)
	assert.Equal(t, 2*QUOTA_WINDOW, ttl)
}

func TestRedisQuotaDAO_Allow_NewWindowResetsCount(t *testing.T) {
	mockClient := db.NewMockRedisClient()
	dao := NewRedisQuotaDAO(mockClient, 1)
	dao.now = fixedClock(time.Date(2024, 5, 1, 10, 15, 59, 0, time.UTC))

	allowed, err := dao.Allow(context.Background())
	require.NoError(t, err)
	assert.True(t, allowed)
	allowed, err = dao.Allow(context.Background())
	require.NoError(t, err)
	assert.False(t, allowed)

	dao.now = fixedClock(time.Date(2024, 5, 1, 10, 16, 0, 0, time.UTC))
	allowed, err = dao.Allow(context.Background())
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisQuotaDAO_Allow_RedisError(t *testing.T) {
	mockClient := db.NewMockRedisClient()
	mockClient.Err = errors.New("connection refused")
	dao := NewRedisQuotaDAO(mockClient, 1)

	allowed, err := dao.Allow(context.Background())

	assert.False(t, allowed)
	assert.ErrorContains(t, err, "connection refused")
}
