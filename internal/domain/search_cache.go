package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coursepilot/searchcache/internal/observability"
)

// DefaultCacheTTL is applied when a caller does not supply a TTL.
const DefaultCacheTTL = 10 * time.Minute

// SearchCacheService sits in front of the vector search collaborator,
// serving cached results when possible. The cache is a pure performance
// optimization: callers never observe a difference between a hit and a
// miss except latency, and a broken store degrades to uncached search.
type SearchCacheService struct {
	store   CacheStore
	metrics MetricsRecorder
}

// NewSearchCacheService creates a new search cache orchestrator (DI constructor).
func NewSearchCacheService(store CacheStore, metrics MetricsRecorder) *SearchCacheService {
	return &SearchCacheService{
		store:   store,
		metrics: metrics,
	}
}

// SearchOutcome carries search results plus cache metadata for callers
// that surface hit/miss information (for example as response headers).
type SearchOutcome struct {
	Results  []SearchResult
	CacheHit bool
	CachedAt time.Time
}

// Search resolves a request with default cache options.
func (s *SearchCacheService) Search(
	ctx context.Context,
	req *SearchRequest,
	searchFn SearchFunc,
) ([]SearchResult, error) {
	outcome, err := s.SearchWithOptions(ctx, req, searchFn, nil)
	if err != nil {
		return nil, err
	}
	return outcome.Results, nil
}

// SearchWithOptions resolves a request, consulting the cache first unless
// opts disables it. Exactly one metric is recorded per cached call: a hit
// when the entry was served from the store, a miss otherwise. Store
// failures are absorbed and treated as misses; searchFn failures propagate
// and nothing is cached.
func (s *SearchCacheService) SearchWithOptions(
	ctx context.Context,
	req *SearchRequest,
	searchFn SearchFunc,
	opts *SearchOptions,
) (*SearchOutcome, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request cannot be nil", ErrInvalidRequest)
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	logger := observability.FromContext(ctx)

	ttl := DefaultCacheTTL
	if opts != nil {
		if opts.Disabled {
			logger.Info("cache bypassed by caller")
			results, err := searchFn(ctx, req)
			if err != nil {
				return nil, fmt.Errorf("vector search failed: %w", err)
			}
			return &SearchOutcome{Results: results}, nil
		}
		if opts.TTL > 0 {
			ttl = opts.TTL
		}
	}

	key := BuildCacheKey(req)

	entry, err := s.store.Get(ctx, key)
	switch {
	case err == nil:
		s.metrics.RecordHit(ctx)
		logger.Info("search cache hit",
			observability.String("cache_key", key),
			observability.Int("results", len(entry.Results)))
		return &SearchOutcome{
			Results:  entry.Results,
			CacheHit: true,
			CachedAt: entry.CachedAt,
		}, nil

	case errors.Is(err, ErrCacheMiss):
		// Cold key, fall through to the search.

	default:
		logger.Warn("cache read failed, treating as miss",
			observability.String("cache_key", key),
			observability.Error(err))
	}

	// The miss counts regardless of whether the search below succeeds:
	// it records "had to search", not "search succeeded".
	s.metrics.RecordMiss(ctx)

	results, err := searchFn(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}

	// A cancelled caller must not leave a partial result behind.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	freshEntry := &CacheEntry{
		Results:    results,
		CachedAt:   time.Now(),
		TTLSeconds: int(ttl.Seconds()),
	}

	if setErr := s.store.Set(ctx, key, freshEntry, ttl); setErr != nil {
		logger.Warn("cache write failed, result not cached",
			observability.String("cache_key", key),
			observability.Error(setErr))
	}

	logger.Info("search cache miss",
		observability.String("cache_key", key),
		observability.Int("results", len(results)))

	return &SearchOutcome{Results: results}, nil
}

// Metrics returns the current cache counter snapshot.
func (s *SearchCacheService) Metrics(ctx context.Context) (*MetricsSnapshot, error) {
	snapshot, err := s.metrics.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache metrics: %w", err)
	}
	return snapshot, nil
}
