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

func setupMetrics(t *testing.T) (*miniredis.Miniredis, *rediscache.MetricsRecorder) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, rediscache.NewMetricsRecorder(client, time.Second)
}

func TestMetricsRecorder_EmptySnapshot(t *testing.T) {
	_, recorder := setupMetrics(t)

	snapshot, err := recorder.Snapshot(context.Background())
	require.NoError(t, err)
	require.Zero(t, snapshot.Hits)
	require.Zero(t, snapshot.Misses)
	require.Zero(t, snapshot.HitRate)
}

func TestMetricsRecorder_Accounting(t *testing.T) {
	ctx := context.Background()
	mr, recorder := setupMetrics(t)

	recorder.RecordMiss(ctx)
	recorder.RecordHit(ctx)
	recorder.RecordHit(ctx)
	recorder.RecordHit(ctx)

	mr.CheckGet(t, "metrics:search_cache:hits", "3")
	mr.CheckGet(t, "metrics:search_cache:misses", "1")

	snapshot, err := recorder.Snapshot(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, snapshot.Hits)
	require.EqualValues(t, 1, snapshot.Misses)
	require.EqualValues(t, 4, snapshot.Total)
	require.InEpsilon(t, 0.75, snapshot.HitRate, 0.0001)
}

func TestMetricsRecorder_Unavailable(t *testing.T) {
	ctx := context.Background()
	mr, recorder := setupMetrics(t)

	mr.Close()

	// Increments must swallow failures.
	recorder.RecordHit(ctx)
	recorder.RecordMiss(ctx)

	_, err := recorder.Snapshot(ctx)
	require.ErrorIs(t, err, domain.ErrCacheUnavailable)
}
