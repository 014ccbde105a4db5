package domain

import (
	"fmt"
	"time"
)

// SearchRequest describes a transcript search over a creator's video library.
type SearchRequest struct {
	QueryText           string   `json:"query_text"`
	VideoIDFilter       []string `json:"video_id_filter,omitempty"` // empty means search all videos
	StudentID           string   `json:"student_id,omitempty"`      // empty means no personalization
	MatchCount          int      `json:"match_count"`
	SimilarityThreshold float64  `json:"similarity_threshold"`
}

// Validate checks the request before any I/O is attempted.
func (r *SearchRequest) Validate() error {
	if r.QueryText == "" {
		return fmt.Errorf("%w: query text is required", ErrInvalidRequest)
	}

	if r.MatchCount <= 0 {
		return fmt.Errorf("%w: match count must be positive", ErrInvalidRequest)
	}

	if r.SimilarityThreshold < 0 || r.SimilarityThreshold > 1 {
		return fmt.Errorf("%w: similarity threshold must be between 0 and 1", ErrInvalidRequest)
	}

	return nil
}

// SearchResult is a single transcript chunk match.
type SearchResult struct {
	Content     string  `json:"content"`
	VideoID     string  `json:"video_id"`
	StartTime   float64 `json:"start_time"` // offset into the video, in seconds
	Similarity  float64 `json:"similarity"`
	ViewedBoost float64 `json:"viewed_boost,omitempty"` // personalization boost applied, if any
}

// CacheEntry is the stored value for a search cache key.
type CacheEntry struct {
	Results    []SearchResult `json:"results"`
	CachedAt   time.Time      `json:"cached_at"`
	TTLSeconds int            `json:"ttl_seconds"`
}

// SearchOptions carries per-call cache settings.
// A nil *SearchOptions means defaults: caching enabled, DefaultCacheTTL.
type SearchOptions struct {
	TTL      time.Duration
	Disabled bool
}

// MetricsSnapshot is a point-in-time view of the cache counters.
type MetricsSnapshot struct {
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	Total   int64   `json:"total"`
	HitRate float64 `json:"hit_rate"`
}
