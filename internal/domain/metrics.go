package domain

import (
	"context"
	"sync/atomic"
)

// CacheMetrics implements MetricsRecorder with process-local atomic
// counters. Production deployments use the Redis-backed recorder so
// counters are shared across instances; this implementation backs
// single-process deployments and tests.
type CacheMetrics struct {
	hits   atomic.Int64
	misses atomic.Int64
}

// NewCacheMetrics creates a new in-process metrics recorder.
func NewCacheMetrics() *CacheMetrics {
	return &CacheMetrics{}
}

// RecordHit increments the hit counter.
func (m *CacheMetrics) RecordHit(_ context.Context) {
	m.hits.Add(1)
}

// RecordMiss increments the miss counter.
func (m *CacheMetrics) RecordMiss(_ context.Context) {
	m.misses.Add(1)
}

// Snapshot returns the current counter values.
func (m *CacheMetrics) Snapshot(_ context.Context) (*MetricsSnapshot, error) {
	hits := m.hits.Load()
	misses := m.misses.Load()

	snapshot := &MetricsSnapshot{
		Hits:   hits,
		Misses: misses,
		Total:  hits + misses,
	}

	if snapshot.Total > 0 {
		snapshot.HitRate = float64(hits) / float64(snapshot.Total)
	}

	return snapshot, nil
}
