package domain

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/coursepilot/searchcache/internal/observability"
)

// defaultDeleteConcurrency bounds concurrent per-video deletes during
// creator-level invalidation so bulk operations cannot overwhelm the store.
const defaultDeleteConcurrency = 10

// InvalidationService removes stale cache entries when video content
// changes. Video-level invalidation deliberately over-invalidates: it
// clears every entry whose key mentions the video plus every all-scoped
// entry, since an unrestricted search could have returned chunks from
// the changed video too.
type InvalidationService struct {
	store       CacheStore
	catalog     VideoCatalog
	events      EventPublisher
	concurrency int
}

// NewInvalidationService creates a new invalidation manager (DI constructor).
func NewInvalidationService(store CacheStore, catalog VideoCatalog, events EventPublisher) *InvalidationService {
	return &InvalidationService{
		store:       store,
		catalog:     catalog,
		events:      events,
		concurrency: defaultDeleteConcurrency,
	}
}

// InvalidateVideo deletes every cache entry that could reference the
// video and returns the number of keys deleted. Individual pattern
// deletes are retried once, then logged and skipped; partial success
// is reported through the count, never as an error.
func (s *InvalidationService) InvalidateVideo(ctx context.Context, videoID string) (int, error) {
	if videoID == "" {
		return 0, fmt.Errorf("%w: video id cannot be empty", ErrInvalidationFailed)
	}

	deleted := 0
	for _, pattern := range []string{VideoKeyPattern(videoID), AllScopedKeyPattern()} {
		deleted += s.deleteWithRetry(ctx, pattern)
	}

	s.publish(ctx, "cache.invalidated.video", map[string]interface{}{
		"video_id": videoID,
		"deleted":  deleted,
	})

	return deleted, nil
}

// InvalidateCreator resolves the creator's full video set and invalidates
// each video, with per-video deletes issued concurrently up to the
// configured limit. A failed catalog lookup surfaces ErrInvalidationFailed
// since the operation could not be attempted at all.
func (s *InvalidationService) InvalidateCreator(ctx context.Context, creatorID string) (int, error) {
	if creatorID == "" {
		return 0, fmt.Errorf("%w: creator id cannot be empty", ErrInvalidationFailed)
	}

	videoIDs, err := s.catalog.ListCreatorVideos(ctx, creatorID)
	if err != nil {
		return 0, fmt.Errorf("%w: creator video lookup: %v", ErrInvalidationFailed, err)
	}

	var deleted atomic.Int64

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.concurrency)

	for _, videoID := range videoIDs {
		group.Go(func() error {
			count, videoErr := s.InvalidateVideo(groupCtx, videoID)
			deleted.Add(int64(count))
			return videoErr
		})
	}

	if waitErr := group.Wait(); waitErr != nil {
		return int(deleted.Load()), fmt.Errorf("%w: %v", ErrInvalidationFailed, waitErr)
	}

	s.publish(ctx, "cache.invalidated.creator", map[string]interface{}{
		"creator_id": creatorID,
		"videos":     len(videoIDs),
		"deleted":    int(deleted.Load()),
	})

	return int(deleted.Load()), nil
}

// InvalidateAll flushes the entire search cache namespace.
func (s *InvalidationService) InvalidateAll(ctx context.Context) (int, error) {
	deleted := s.deleteWithRetry(ctx, NamespaceKeyPattern())

	s.publish(ctx, "cache.invalidated.all", map[string]interface{}{
		"deleted": deleted,
	})

	return deleted, nil
}

// deleteWithRetry attempts a pattern delete, retrying once on failure.
// A second failure is logged and skipped.
func (s *InvalidationService) deleteWithRetry(ctx context.Context, pattern string) int {
	logger := observability.FromContext(ctx)

	count, err := s.store.DeleteByPattern(ctx, pattern)
	if err == nil {
		return count
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		logger.Warn("pattern delete cancelled",
			observability.String("pattern", pattern),
			observability.Error(err))
		return 0
	}

	logger.Warn("pattern delete failed, retrying once",
		observability.String("pattern", pattern),
		observability.Error(err))

	count, err = s.store.DeleteByPattern(ctx, pattern)
	if err != nil {
		logger.Warn("pattern delete failed after retry, skipping",
			observability.String("pattern", pattern),
			observability.Error(err))
		return 0
	}

	return count
}

func (s *InvalidationService) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.events == nil {
		return
	}
	s.events.Publish(ctx, eventType, data)
}
