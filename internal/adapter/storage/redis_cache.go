package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vitrine/stock-reserve/internal/core/domain"
)

const (
	availabilityKeyPrefix = "availability:"
	sweepLockKey          = "reservation:sweep:lock"

	// Snapshots only shield hot variants from repeated display reads;
	// anything longer risks showing stale counts during a rush.
	availabilitySnapshotTTL = 2 * time.Second

	sweepLockTTL = 30 * time.Second
)

// RedisCache holds short-lived availability snapshots and the shared sweep
// lock. It is advisory only: the MySQL store remains the source of truth,
// and every mutation path invalidates the snapshot it touches.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (r *RedisCache) GetAvailability(ctx context.Context, variantID string) (*domain.Availability, bool, error) {
	data, err := r.client.Get(ctx, availabilityKeyPrefix+variantID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var a domain.Availability
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, false, nil
	}
	return &a, true, nil
}

func (r *RedisCache) SetAvailability(ctx context.Context, a domain.Availability) error {
	data, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, availabilityKeyPrefix+a.VariantID, data, availabilitySnapshotTTL).Err()
}

func (r *RedisCache) Invalidate(ctx context.Context, variantID string) error {
	return r.client.Del(ctx, availabilityKeyPrefix+variantID).Err()
}

func (r *RedisCache) AcquireSweepLock(ctx context.Context) (bool, error) {
	return r.client.SetNX(ctx, sweepLockKey, 1, sweepLockTTL).Result()
}

func (r *RedisCache) ReleaseSweepLock(ctx context.Context) error {
	return r.client.Del(ctx, sweepLockKey).Err()
}
