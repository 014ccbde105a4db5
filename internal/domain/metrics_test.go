package domain_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coursepilot/searchcache/internal/domain"
)

func TestCacheMetrics_EmptySnapshot(t *testing.T) {
	metrics := domain.NewCacheMetrics()

	snapshot, err := metrics.Snapshot(context.Background())
	require.NoError(t, err)
	require.Zero(t, snapshot.Hits)
	require.Zero(t, snapshot.Misses)
	require.Zero(t, snapshot.Total)
	require.Zero(t, snapshot.HitRate)
}

func TestCacheMetrics_Accounting(t *testing.T) {
	ctx := context.Background()
	metrics := domain.NewCacheMetrics()

	metrics.RecordMiss(ctx)
	metrics.RecordHit(ctx)

	snapshot, err := metrics.Snapshot(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, snapshot.Hits)
	require.EqualValues(t, 1, snapshot.Misses)
	require.EqualValues(t, 2, snapshot.Total)
	require.InEpsilon(t, 0.5, snapshot.HitRate, 0.0001)
}

func TestCacheMetrics_ConcurrentIncrements(t *testing.T) {
	ctx := context.Background()
	metrics := domain.NewCacheMetrics()

	const perKind = 200

	var wg sync.WaitGroup
	for range perKind {
		wg.Add(2)
		go func() {
			defer wg.Done()
			metrics.RecordHit(ctx)
		}()
		go func() {
			defer wg.Done()
			metrics.RecordMiss(ctx)
		}()
	}
	wg.Wait()

	snapshot, err := metrics.Snapshot(ctx)
	require.NoError(t, err)
	require.EqualValues(t, perKind, snapshot.Hits)
	require.EqualValues(t, perKind, snapshot.Misses)
}
