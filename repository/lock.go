package repository

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RunLock is a best-effort mutex over Redis keeping a manual batch trigger
// from overlapping the scheduled run. The upsert already makes double
// processing harmless; the lock avoids paying for it.
type RunLock struct {
	client *redis.Client
}

func NewRunLock(client *redis.Client) *RunLock {
	return &RunLock{client: client}
}

// Acquire takes the lock for key, returning false when another run holds it.
func (l *RunLock) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, "daily_summary_lock:"+key, "1", ttl).Result()
}

func (l *RunLock) Release(ctx context.Context, key string) error {
	return l.client.Del(ctx, "daily_summary_lock:"+key).Err()
}
