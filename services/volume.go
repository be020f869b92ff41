package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// VolumeTTL keeps a month's counter around a little longer than the month.
const VolumeTTL = 40 * 24 * time.Hour

// VolumeStore counts tracked booking clicks per provider per calendar month.
// The counts feed the volume bonus in revenue projections.
type VolumeStore interface {
	Increment(ctx context.Context, provider string, at time.Time) (int64, error)
	Get(ctx context.Context, provider string, at time.Time) (int64, error)
}

func volumeKey(provider string, at time.Time) string {
	p := strings.ToLower(strings.Join(strings.Fields(provider), "-"))
	return fmt.Sprintf("wayfarer:volume:%s:%s", p, at.UTC().Format("2006-01"))
}

// ─── Redis ────────────────────────────────────────────────────────────────────

type RedisVolumeStore struct{ c *redis.Client }

func NewRedisVolumeStore(addr, pass string, db int) *RedisVolumeStore {
	return &RedisVolumeStore{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func (r *RedisVolumeStore) Ping(ctx context.Context) error {
	return r.c.Ping(ctx).Err()
}

func (r *RedisVolumeStore) Increment(ctx context.Context, provider string, at time.Time) (int64, error) {
	key := volumeKey(provider, at)
	var incr *redis.IntCmd
	_, err := r.c.TxPipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.Incr(ctx, key)
		p.Expire(ctx, key, VolumeTTL)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("increment %s: %w", key, err)
	}
	return incr.Val(), nil
}

func (r *RedisVolumeStore) Get(ctx context.Context, provider string, at time.Time) (int64, error) {
	n, err := r.c.Get(ctx, volumeKey(provider, at)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

func (r *RedisVolumeStore) Close() error { return r.c.Close() }

// ─── In-memory ────────────────────────────────────────────────────────────────

// MemoryVolumeStore is the single-process fallback when Redis is not configured.
type MemoryVolumeStore struct{ c *cache.Cache }

func NewMemoryVolumeStore() *MemoryVolumeStore {
	return &MemoryVolumeStore{c: cache.New(VolumeTTL, 1*time.Hour)}
}

func (m *MemoryVolumeStore) Increment(_ context.Context, provider string, at time.Time) (int64, error) {
	key := volumeKey(provider, at)
	// Add is a no-op when the key exists
	_ = m.c.Add(key, int64(0), cache.DefaultExpiration)
	return m.c.IncrementInt64(key, 1)
}

func (m *MemoryVolumeStore) Get(_ context.Context, provider string, at time.Time) (int64, error) {
	v, ok := m.c.Get(volumeKey(provider, at))
	if !ok {
		return 0, nil
	}
	n, _ := v.(int64)
	return n, nil
}
