package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/coursepilot/searchcache/internal/domain"
	"github.com/coursepilot/searchcache/internal/mocks"
)

func TestInvalidationService_InvalidateVideo(t *testing.T) {
	ctx := context.Background()
	mockStore := mocks.NewMockCacheStore(t)
	mockCatalog := mocks.NewMockVideoCatalog(t)

	mockStore.EXPECT().
		DeleteByPattern(mock.Anything, "search:*v123*").
		Return(3, nil)
	mockStore.EXPECT().
		DeleteByPattern(mock.Anything, "search:all:*").
		Return(2, nil)

	service := domain.NewInvalidationService(mockStore, mockCatalog, nil)

	deleted, err := service.InvalidateVideo(ctx, "v123")
	require.NoError(t, err)
	require.Equal(t, 5, deleted)
}

func TestInvalidationService_InvalidateVideo_EmptyID(t *testing.T) {
	service := domain.NewInvalidationService(mocks.NewMockCacheStore(t), mocks.NewMockVideoCatalog(t), nil)

	_, err := service.InvalidateVideo(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrInvalidationFailed)
}

func TestInvalidationService_InvalidateVideo_RetriesOnce(t *testing.T) {
	ctx := context.Background()
	mockStore := mocks.NewMockCacheStore(t)

	mockStore.EXPECT().
		DeleteByPattern(mock.Anything, "search:*v9*").
		Return(0, domain.ErrCacheUnavailable).
		Once()
	mockStore.EXPECT().
		DeleteByPattern(mock.Anything, "search:*v9*").
		Return(4, nil).
		Once()
	mockStore.EXPECT().
		DeleteByPattern(mock.Anything, "search:all:*").
		Return(1, nil)

	service := domain.NewInvalidationService(mockStore, mocks.NewMockVideoCatalog(t), nil)

	deleted, err := service.InvalidateVideo(ctx, "v9")
	require.NoError(t, err)
	require.Equal(t, 5, deleted)
}

func TestInvalidationService_InvalidateVideo_PartialFailureSkipped(t *testing.T) {
	ctx := context.Background()
	mockStore := mocks.NewMockCacheStore(t)

	// Video pattern fails twice (initial + retry); the all-scope
	// delete still runs and its count is reported.
	mockStore.EXPECT().
		DeleteByPattern(mock.Anything, "search:*v9*").
		Return(0, domain.ErrCacheUnavailable).
		Times(2)
	mockStore.EXPECT().
		DeleteByPattern(mock.Anything, "search:all:*").
		Return(2, nil)

	service := domain.NewInvalidationService(mockStore, mocks.NewMockVideoCatalog(t), nil)

	deleted, err := service.InvalidateVideo(ctx, "v9")
	require.NoError(t, err)
	require.Equal(t, 2, deleted)
}

func TestInvalidationService_InvalidateCreator(t *testing.T) {
	ctx := context.Background()
	mockStore := mocks.NewMockCacheStore(t)
	mockCatalog := mocks.NewMockVideoCatalog(t)

	mockCatalog.EXPECT().
		ListCreatorVideos(mock.Anything, "creator-7").
		Return([]string{"v1", "v2"}, nil)

	mockStore.EXPECT().
		DeleteByPattern(mock.Anything, "search:*v1*").
		Return(2, nil)
	mockStore.EXPECT().
		DeleteByPattern(mock.Anything, "search:*v2*").
		Return(1, nil)
	mockStore.EXPECT().
		DeleteByPattern(mock.Anything, "search:all:*").
		Return(0, nil).
		Times(2)

	service := domain.NewInvalidationService(mockStore, mockCatalog, nil)

	deleted, err := service.InvalidateCreator(ctx, "creator-7")
	require.NoError(t, err)
	require.Equal(t, 3, deleted)
}

func TestInvalidationService_InvalidateCreator_LookupFails(t *testing.T) {
	ctx := context.Background()
	mockStore := mocks.NewMockCacheStore(t)
	mockCatalog := mocks.NewMockVideoCatalog(t)

	mockCatalog.EXPECT().
		ListCreatorVideos(mock.Anything, "creator-7").
		Return(nil, errors.New("platform unreachable"))

	service := domain.NewInvalidationService(mockStore, mockCatalog, nil)

	_, err := service.InvalidateCreator(ctx, "creator-7")
	require.ErrorIs(t, err, domain.ErrInvalidationFailed)
}

func TestInvalidationService_InvalidateCreator_EmptyID(t *testing.T) {
	service := domain.NewInvalidationService(mocks.NewMockCacheStore(t), mocks.NewMockVideoCatalog(t), nil)

	_, err := service.InvalidateCreator(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrInvalidationFailed)
}

func TestInvalidationService_InvalidateAll(t *testing.T) {
	ctx := context.Background()
	mockStore := mocks.NewMockCacheStore(t)

	mockStore.EXPECT().
		DeleteByPattern(mock.Anything, "search:*").
		Return(42, nil)

	service := domain.NewInvalidationService(mockStore, mocks.NewMockVideoCatalog(t), nil)

	deleted, err := service.InvalidateAll(ctx)
	require.NoError(t, err)
	require.Equal(t, 42, deleted)
}
