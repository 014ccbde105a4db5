package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strconv"
	"strings"
)

const (
	cacheKeyNamespace = "search"
	cacheKeyDelimiter = ":"
	videoIDDelimiter  = ","

	// videoScopeAll marks entries produced by unrestricted searches.
	videoScopeAll = "all"

	// studentNone marks entries produced without personalization.
	studentNone = "none"
)

// BuildCacheKey derives the deterministic cache identity of a request:
//
//	search:{videoScope}:{studentID}:{queryHash}:{matchCount}:{threshold}
//
// The video filter is sorted and deduplicated so filter order never
// affects identity. Query text is always hashed, which keeps the key
// delimiter-safe and within store key-length limits.
func BuildCacheKey(req *SearchRequest) string {
	videoScope := videoScopeAll
	if len(req.VideoIDFilter) > 0 {
		ids := slices.Clone(req.VideoIDFilter)
		slices.Sort(ids)
		ids = slices.Compact(ids)
		videoScope = strings.Join(ids, videoIDDelimiter)
	}

	studentID := req.StudentID
	if studentID == "" {
		studentID = studentNone
	}

	queryHash := sha256.Sum256([]byte(req.QueryText))

	return strings.Join([]string{
		cacheKeyNamespace,
		videoScope,
		studentID,
		hex.EncodeToString(queryHash[:]),
		strconv.Itoa(req.MatchCount),
		strconv.FormatFloat(req.SimilarityThreshold, 'f', -1, 64),
	}, cacheKeyDelimiter)
}

// VideoKeyPattern matches every key whose video scope could reference
// the given video.
func VideoKeyPattern(videoID string) string {
	return cacheKeyNamespace + cacheKeyDelimiter + "*" + videoID + "*"
}

// AllScopedKeyPattern matches every key produced by an unrestricted
// search. Such entries may contain chunks from any video, so they are
// cleared on every video-level invalidation.
func AllScopedKeyPattern() string {
	return cacheKeyNamespace + cacheKeyDelimiter + videoScopeAll + cacheKeyDelimiter + "*"
}

// NamespaceKeyPattern matches every search cache key.
func NamespaceKeyPattern() string {
	return cacheKeyNamespace + cacheKeyDelimiter + "*"
}
