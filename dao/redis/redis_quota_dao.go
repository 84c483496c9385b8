package redis

import (
	"context"
	"fmt"
	"log"
	"time"

	"weather-dashboard/db"
)

// PROVIDER_CALLS_KEY_FORMAT holds one counter per quota window, keyed by window start.
const PROVIDER_CALLS_KEY_FORMAT = "provider_calls_v1:%d"

// QUOTA_WINDOW is the length of a counting window.
const QUOTA_WINDOW = time.Minute

// RedisQuotaDAO counts provider calls in fixed one minute windows.
type RedisQuotaDAO struct {
	client db.RedisClient
	limit  int64
	now    func() time.Time
}

// NewRedisQuotaDAO initializes a RedisQuotaDAO allowing limit calls per window.
func NewRedisQuotaDAO(client db.RedisClient, limit int) *RedisQuotaDAO {
	return &RedisQuotaDAO{
		client: client,
		limit:  int64(limit),
		now:    time.Now,
	}
}

// Allow records one provider call and reports whether it fits in the
// current window's budget.
func (dao *RedisQuotaDAO) Allow(ctx context.Context) (bool, error) {
	key := dao.windowKey()

	count, err := dao.client.Incr(ctx, key)
	if err != nil {
		return false, fmt.Errorf("[RedisQuotaDAO] failed to increment %s: %w", key, err)
	}

	// First call in the window owns the expiry.
	if count == 1 {
		if err := dao.client.Expire(ctx, key, 2*QUOTA_WINDOW); err != nil {
			return false, fmt.Errorf("[RedisQuotaDAO] failed to set expiry on %s: %w", key, err)
		}
	}

	if count > dao.limit {
		log.Printf("[RedisQuotaDAO] Quota exhausted for window %s (%d/%d)", key, count, dao.limit)
		return false, nil
	}
	return true, nil
}

func (dao *RedisQuotaDAO) windowKey() string {
	return fmt.Sprintf(PROVIDER_CALLS_KEY_FORMAT, dao.now().Truncate(QUOTA_WINDOW).Unix())
}
