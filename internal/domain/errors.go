package domain

import "errors"

// ErrCacheMiss indicates no cached entry was found for a key.
var ErrCacheMiss = errors.New("cache miss")

// ErrCacheUnavailable indicates the cache store failed or timed out.
// It is always absorbed at the orchestrator boundary and never reaches
// a search caller.
var ErrCacheUnavailable = errors.New("cache unavailable")

// ErrInvalidRequest indicates malformed search parameters, rejected
// before any I/O.
var ErrInvalidRequest = errors.New("invalid search request")

// ErrInvalidationFailed indicates a bulk invalidation could not be
// attempted at all (as opposed to partial success, which is reported
// through the deleted-count return value).
var ErrInvalidationFailed = errors.New("invalidation failed")
