package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	rediscache "github.com/coursepilot/searchcache/internal/cache/redis"
	"github.com/coursepilot/searchcache/internal/domain"
)

func setupStore(t *testing.T) (*miniredis.Miniredis, *rediscache.Store) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, rediscache.NewStore(client, time.Second)
}

func sampleEntry() *domain.CacheEntry {
	return &domain.CacheEntry{
		Results: []domain.SearchResult{
			{Content: "Welcome to the course", VideoID: "v1", StartTime: 12.5, Similarity: 0.91},
		},
		CachedAt:   time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
		TTLSeconds: 600,
	}
}

func TestStore_SetGet_RoundTrip(t *testing.T) {
	ctx := context.Background()
	_, store := setupStore(t)

	entry := sampleEntry()
	require.NoError(t, store.Set(ctx, "search:all:none:abc:5:0.7", entry, 10*time.Minute))

	got, err := store.Get(ctx, "search:all:none:abc:5:0.7")
	require.NoError(t, err)
	require.Equal(t, entry.Results, got.Results)
	require.True(t, entry.CachedAt.Equal(got.CachedAt))
	require.Equal(t, entry.TTLSeconds, got.TTLSeconds)
}

func TestStore_Get_Absent(t *testing.T) {
	_, store := setupStore(t)

	_, err := store.Get(context.Background(), "search:missing")
	require.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	mr, store := setupStore(t)

	require.NoError(t, store.Set(ctx, "search:short-lived", sampleEntry(), time.Second))

	_, err := store.Get(ctx, "search:short-lived")
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	_, err = store.Get(ctx, "search:short-lived")
	require.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestStore_DeleteByPattern(t *testing.T) {
	ctx := context.Background()
	_, store := setupStore(t)

	entry := sampleEntry()
	keys := []string{
		"search:v1,v2:none:aaa:5:0.7",
		"search:v1:student-1:bbb:5:0.7",
		"search:all:none:ccc:5:0.7",
		"search:v3:none:ddd:5:0.7",
	}
	for _, key := range keys {
		require.NoError(t, store.Set(ctx, key, entry, 10*time.Minute))
	}

	deleted, err := store.DeleteByPattern(ctx, "search:*v1*")
	require.NoError(t, err)
	require.Equal(t, 2, deleted)

	// Keys that never referenced v1 survive.
	_, err = store.Get(ctx, "search:all:none:ccc:5:0.7")
	require.NoError(t, err)
	_, err = store.Get(ctx, "search:v3:none:ddd:5:0.7")
	require.NoError(t, err)

	deleted, err = store.DeleteByPattern(ctx, "search:all:*")
	require.NoError(t, err)
	require.Equal(t, 1, deleted)
}

func TestStore_DeleteByPattern_NoMatches(t *testing.T) {
	_, store := setupStore(t)

	deleted, err := store.DeleteByPattern(context.Background(), "search:*nothing*")
	require.NoError(t, err)
	require.Zero(t, deleted)
}

func TestStore_Unavailable(t *testing.T) {
	ctx := context.Background()
	mr, store := setupStore(t)

	mr.Close()

	_, err := store.Get(ctx, "search:any")
	require.ErrorIs(t, err, domain.ErrCacheUnavailable)

	err = store.Set(ctx, "search:any", sampleEntry(), time.Minute)
	require.ErrorIs(t, err, domain.ErrCacheUnavailable)

	_, err = store.DeleteByPattern(ctx, "search:*")
	require.ErrorIs(t, err, domain.ErrCacheUnavailable)
}

// End-to-end: orchestrator over a real store. Expiry must cause the
// next search to re-invoke the collaborator.
func TestSearchCache_TTLExpiry_ReinvokesSearch(t *testing.T) {
	ctx := context.Background()
	mr, store := setupStore(t)

	service := domain.NewSearchCacheService(store, domain.NewCacheMetrics())

	calls := 0
	searchFn := func(_ context.Context, _ *domain.SearchRequest) ([]domain.SearchResult, error) {
		calls++
		return sampleEntry().Results, nil
	}

	req := &domain.SearchRequest{
		QueryText:           "how to get started",
		MatchCount:          5,
		SimilarityThreshold: 0.7,
	}
	opts := &domain.SearchOptions{TTL: time.Second}

	_, err := service.SearchWithOptions(ctx, req, searchFn, opts)
	require.NoError(t, err)
	require.Equal(t, 1, calls)

	_, err = service.SearchWithOptions(ctx, req, searchFn, opts)
	require.NoError(t, err)
	require.Equal(t, 1, calls, "entry still live, must be served from cache")

	mr.FastForward(2 * time.Second)

	_, err = service.SearchWithOptions(ctx, req, searchFn, opts)
	require.NoError(t, err)
	require.Equal(t, 2, calls, "expired entry must re-invoke the search")
}

// End-to-end: video invalidation clears matching and all-scoped keys,
// leaves unrelated filters cached.
func TestInvalidation_VideoScope(t *testing.T) {
	ctx := context.Background()
	_, store := setupStore(t)

	service := domain.NewInvalidationService(store, nil, nil)

	entry := sampleEntry()
	filtered := domain.BuildCacheKey(&domain.SearchRequest{
		QueryText: "q", VideoIDFilter: []string{"v1", "v2"}, MatchCount: 5, SimilarityThreshold: 0.7,
	})
	unrelated := domain.BuildCacheKey(&domain.SearchRequest{
		QueryText: "q", VideoIDFilter: []string{"v3"}, MatchCount: 5, SimilarityThreshold: 0.7,
	})
	allScoped := domain.BuildCacheKey(&domain.SearchRequest{
		QueryText: "q", MatchCount: 5, SimilarityThreshold: 0.7,
	})
	for _, key := range []string{filtered, unrelated, allScoped} {
		require.NoError(t, store.Set(ctx, key, entry, 10*time.Minute))
	}

	deleted, err := service.InvalidateVideo(ctx, "v1")
	require.NoError(t, err)
	require.Equal(t, 2, deleted)

	_, err = store.Get(ctx, filtered)
	require.ErrorIs(t, err, domain.ErrCacheMiss)
	_, err = store.Get(ctx, allScoped)
	require.ErrorIs(t, err, domain.ErrCacheMiss)
	_, err = store.Get(ctx, unrelated)
	require.NoError(t, err, "filters excluding the video must stay cached")
}
