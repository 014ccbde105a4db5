package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/coursepilot/searchcache/internal/config"
	"github.com/coursepilot/searchcache/internal/domain"
	"github.com/coursepilot/searchcache/internal/observability"
)

// Handler handles HTTP requests.
type Handler struct {
	searchCache *domain.SearchCacheService
	invalidator *domain.InvalidationService
	searcher    domain.VectorSearcher
	cacheConfig *config.CacheConfig
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(
	searchCache *domain.SearchCacheService,
	invalidator *domain.InvalidationService,
	searcher domain.VectorSearcher,
	cacheConfig *config.CacheConfig,
) *Handler {
	return &Handler{
		searchCache: searchCache,
		invalidator: invalidator,
		searcher:    searcher,
		cacheConfig: cacheConfig,
	}
}

type searchResponse struct {
	Results []domain.SearchResult `json:"results"`
}

type invalidateResponse struct {
	Deleted int `json:"deleted"`
}

// HandleSearch processes transcript search requests.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req domain.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.StudentID != "" {
		ctx = observability.WithStudentID(ctx, req.StudentID)
	}

	logger := observability.FromContext(ctx)
	logger.Info("search request received",
		observability.Int("video_filter_size", len(req.VideoIDFilter)),
		observability.Int("match_count", req.MatchCount))

	opts := &domain.SearchOptions{
		TTL:      time.Duration(h.cacheConfig.TTLSeconds) * time.Second,
		Disabled: !h.cacheConfig.Enabled,
	}

	outcome, err := h.searchCache.SearchWithOptions(ctx, &req, h.searcher.Search, opts)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.Error("search failed", observability.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if outcome.CacheHit {
		w.Header().Set("X-Search-Cache", "HIT")
		w.Header().Set("X-Search-Cache-Timestamp", outcome.CachedAt.Format(time.RFC3339))
	} else {
		w.Header().Set("X-Search-Cache", "MISS")
	}

	h.writeJSON(ctx, w, searchResponse{Results: outcome.Results})
}

// HandleInvalidateVideo removes cache entries that could reference a video.
func (h *Handler) HandleInvalidateVideo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	videoID := r.PathValue("videoID")
	if videoID == "" {
		http.Error(w, "video id is required", http.StatusBadRequest)
		return
	}

	deleted, err := h.invalidator.InvalidateVideo(ctx, videoID)
	if err != nil {
		observability.FromContext(ctx).Error("video invalidation failed",
			observability.String("video_id", videoID),
			observability.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(ctx, w, invalidateResponse{Deleted: deleted})
}

// HandleInvalidateCreator removes cache entries for every video a creator owns.
func (h *Handler) HandleInvalidateCreator(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	creatorID := r.PathValue("creatorID")
	if creatorID == "" {
		http.Error(w, "creator id is required", http.StatusBadRequest)
		return
	}

	ctx = observability.WithCreatorID(ctx, creatorID)

	deleted, err := h.invalidator.InvalidateCreator(ctx, creatorID)
	if err != nil {
		observability.FromContext(ctx).Error("creator invalidation failed",
			observability.Error(err))

		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidationFailed) {
			status = http.StatusBadGateway
		}
		http.Error(w, err.Error(), status)
		return
	}

	h.writeJSON(ctx, w, invalidateResponse{Deleted: deleted})
}

// HandleInvalidateAll flushes the entire search cache namespace.
func (h *Handler) HandleInvalidateAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deleted, err := h.invalidator.InvalidateAll(ctx)
	if err != nil {
		observability.FromContext(ctx).Error("full invalidation failed",
			observability.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(ctx, w, invalidateResponse{Deleted: deleted})
}

// HandleMetrics reports the cache hit/miss counters.
func (h *Handler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snapshot, err := h.searchCache.Metrics(ctx)
	if err != nil {
		observability.FromContext(ctx).Error("metrics snapshot failed",
			observability.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(ctx, w, snapshot)
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
	}); err != nil {
		// Already written status, can't change it, just log.
		return
	}
}

func (h *Handler) writeJSON(ctx context.Context, w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		observability.FromContext(ctx).Error("failed to encode response",
			observability.Error(err))
		http.Error(w, fmt.Sprintf("failed to encode response: %v", err), http.StatusInternalServerError)
	}
}
