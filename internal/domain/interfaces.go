package domain

import (
	"context"
	"time"
)

// CacheStore is a thin interface over a shared key-value store with TTL
// support and pattern-based bulk deletion.
type CacheStore interface {
	// Get retrieves a cache entry. Returns ErrCacheMiss when the key is
	// absent and ErrCacheUnavailable when the store failed.
	Get(ctx context.Context, key string) (*CacheEntry, error)

	// Set stores a cache entry with the given TTL.
	Set(ctx context.Context, key string, entry *CacheEntry, ttl time.Duration) error

	// DeleteByPattern removes every key matching the glob-style pattern
	// and returns the number of keys deleted.
	DeleteByPattern(ctx context.Context, pattern string) (int, error)
}

// MetricsRecorder tracks cache hit/miss counters. Recording is
// best-effort: implementations must never return an error to the
// search path.
type MetricsRecorder interface {
	// RecordHit increments the hit counter.
	RecordHit(ctx context.Context)

	// RecordMiss increments the miss counter.
	RecordMiss(ctx context.Context)

	// Snapshot returns the current counter values.
	Snapshot(ctx context.Context) (*MetricsSnapshot, error)
}

// SearchFunc executes the underlying vector similarity search for a
// request. It is expected to expand MatchCount internally to allow
// personalization re-ranking; the orchestrator trusts its ordering.
type SearchFunc func(ctx context.Context, req *SearchRequest) ([]SearchResult, error)

// VectorSearcher performs similarity search over transcript chunk
// embeddings.
type VectorSearcher interface {
	// Search returns ranked transcript chunks for the request.
	Search(ctx context.Context, req *SearchRequest) ([]SearchResult, error)
}

// VideoCatalog resolves video ownership in the host platform.
type VideoCatalog interface {
	// ListCreatorVideos returns all video IDs belonging to a creator.
	ListCreatorVideos(ctx context.Context, creatorID string) ([]string, error)
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}
