package repository

import (
	"CivicPulseAPI/internal/adapter"
	"context"
	"time"
)

// RateLimitRepository meters citizen write traffic (report submissions,
// votes) with a redis fixed window per user. The INCR and TTL run in one
// pipeline so concurrent requests in the same window count exactly once.
type RateLimitRepository struct {
	redisAdapter *adapter.RedisAdapter
}

func NewRateLimitRepository(redisAdapter *adapter.RedisAdapter) *RateLimitRepository {
	return &RateLimitRepository{
		redisAdapter: redisAdapter,
	}
}

// Allow counts one request against the window and reports how much quota is
// left, so callers can surface the remaining allowance to the client.
func (r *RateLimitRepository) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, int, time.Duration, error) {
	client := r.redisAdapter.Client()
	pipe := client.Pipeline()
	incr := pipe.Incr(ctx, key)
	ttlCmd := pipe.TTL(ctx, key)
	_, err := pipe.Exec(ctx)

	if err != nil {
		return false, 0, 0, err
	}

	count := incr.Val()
	ttl := ttlCmd.Val()

	if count == 1 || ttl == -1 {
		client.Expire(ctx, key, window)
		ttl = window
	}

	remaining := limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	if count > int64(limit) {
		return false, 0, ttl, nil
	}

	return true, remaining, ttl, nil
}
