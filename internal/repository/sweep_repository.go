package repository

import (
	"CivicPulseAPI/internal/adapter"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SweepRepository persists the resume cursor of long-running sweeps in redis
// so an interrupted pass picks up where it stopped instead of rescanning from
// the beginning.
type SweepRepository struct {
	redisAdapter *adapter.RedisAdapter
}

func NewSweepRepository(redisAdapter *adapter.RedisAdapter) *SweepRepository {
	return &SweepRepository{
		redisAdapter: redisAdapter,
	}
}

const sweepCursorTTL = 24 * time.Hour

func (r *SweepRepository) GetCursor(ctx context.Context, name string) (*uuid.UUID, error) {
	val, err := r.redisAdapter.Get(ctx, cursorKey(name))
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(val)
	if err != nil {
		// A corrupt cursor only costs a rescan.
		return nil, nil
	}
	return &id, nil
}

func (r *SweepRepository) SetCursor(ctx context.Context, name string, id uuid.UUID) error {
	return r.redisAdapter.Set(ctx, cursorKey(name), id.String(), sweepCursorTTL)
}

func (r *SweepRepository) ClearCursor(ctx context.Context, name string) error {
	return r.redisAdapter.Del(ctx, cursorKey(name))
}

func cursorKey(name string) string {
	return "sweep:cursor:" + name
}
