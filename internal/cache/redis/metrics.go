package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/coursepilot/searchcache/internal/domain"
	"github.com/coursepilot/searchcache/internal/observability"
)

const (
	hitsKey   = "metrics:search_cache:hits"
	missesKey = "metrics:search_cache:misses"
)

// MetricsRecorder implements domain.MetricsRecorder on Redis so counters
// are shared across service instances. Increments ride on Redis INCR,
// which is atomic; failures are logged and swallowed since metrics are
// best-effort and must never fail a search.
type MetricsRecorder struct {
	client    *redis.Client
	opTimeout time.Duration
}

// NewMetricsRecorder creates a new Redis-backed metrics recorder.
func NewMetricsRecorder(client *redis.Client, opTimeout time.Duration) *MetricsRecorder {
	return &MetricsRecorder{
		client:    client,
		opTimeout: opTimeout,
	}
}

// RecordHit increments the shared hit counter.
func (m *MetricsRecorder) RecordHit(ctx context.Context) {
	m.increment(ctx, hitsKey)
}

// RecordMiss increments the shared miss counter.
func (m *MetricsRecorder) RecordMiss(ctx context.Context) {
	m.increment(ctx, missesKey)
}

func (m *MetricsRecorder) increment(ctx context.Context, key string) {
	opCtx, cancel := m.opContext(ctx)
	defer cancel()

	if err := m.client.Incr(opCtx, key).Err(); err != nil {
		observability.FromContext(ctx).Warn("metrics increment failed",
			observability.String("counter", key),
			observability.Error(err))
	}
}

// Snapshot reads both counters in a single round trip.
func (m *MetricsRecorder) Snapshot(ctx context.Context) (*domain.MetricsSnapshot, error) {
	opCtx, cancel := m.opContext(ctx)
	defer cancel()

	values, err := m.client.MGet(opCtx, hitsKey, missesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: read counters: %v", domain.ErrCacheUnavailable, err)
	}

	snapshot := &domain.MetricsSnapshot{
		Hits:   parseCounter(values[0]),
		Misses: parseCounter(values[1]),
	}
	snapshot.Total = snapshot.Hits + snapshot.Misses

	if snapshot.Total > 0 {
		snapshot.HitRate = float64(snapshot.Hits) / float64(snapshot.Total)
	}

	return snapshot, nil
}

// parseCounter interprets an MGET value; absent counters read as zero.
func parseCounter(value interface{}) int64 {
	raw, ok := value.(string)
	if !ok {
		return 0
	}

	var count int64
	if _, err := fmt.Sscanf(raw, "%d", &count); err != nil {
		return 0
	}
	return count
}

func (m *MetricsRecorder) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.opTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, m.opTimeout)
}
