package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/coursepilot/searchcache/internal/domain"
	"github.com/coursepilot/searchcache/internal/observability"
)

const (
	// scanBatchSize is the COUNT hint for SCAN during pattern deletion.
	scanBatchSize = 100

	// deleteBatchSize caps how many keys a single DEL carries.
	deleteBatchSize = 128
)

// Store implements domain.CacheStore on Redis. Every operation runs
// under a bounded timeout so a slow store can never block the search
// path indefinitely; timeouts and connection failures surface as
// domain.ErrCacheUnavailable.
type Store struct {
	client    *redis.Client
	opTimeout time.Duration
}

// NewStore creates a new Redis cache store adapter.
func NewStore(client *redis.Client, opTimeout time.Duration) *Store {
	return &Store{
		client:    client,
		opTimeout: opTimeout,
	}
}

// Get retrieves a cache entry by key.
func (s *Store) Get(ctx context.Context, key string) (*domain.CacheEntry, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get: %v", domain.ErrCacheUnavailable, err)
	}

	var entry domain.CacheEntry
	if unmarshalErr := json.Unmarshal(raw, &entry); unmarshalErr != nil {
		// A corrupt entry is as good as no entry.
		return nil, fmt.Errorf("%w: decode entry: %v", domain.ErrCacheUnavailable, unmarshalErr)
	}

	return &entry, nil
}

// Set stores a cache entry under the given TTL.
func (s *Store) Set(ctx context.Context, key string, entry *domain.CacheEntry, ttl time.Duration) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("%w: encode entry: %v", domain.ErrCacheUnavailable, err)
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	if setErr := s.client.Set(ctx, key, data, ttl).Err(); setErr != nil {
		return fmt.Errorf("%w: set: %v", domain.ErrCacheUnavailable, setErr)
	}

	return nil
}

// DeleteByPattern removes every key matching the glob-style pattern and
// returns the number of keys deleted. Keys are discovered with SCAN and
// deleted in batches; on failure the count of keys already deleted is
// returned alongside the error.
func (s *Store) DeleteByPattern(ctx context.Context, pattern string) (int, error) {
	logger := observability.FromContext(ctx)

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	deleted := 0
	batch := make([]string, 0, deleteBatchSize)

	iter := s.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) < deleteBatchSize {
			continue
		}

		count, err := s.deleteBatch(ctx, batch)
		deleted += count
		if err != nil {
			return deleted, err
		}
		batch = batch[:0]
	}

	if err := iter.Err(); err != nil {
		return deleted, fmt.Errorf("%w: scan %q: %v", domain.ErrCacheUnavailable, pattern, err)
	}

	if len(batch) > 0 {
		count, err := s.deleteBatch(ctx, batch)
		deleted += count
		if err != nil {
			return deleted, err
		}
	}

	logger.Debug("pattern delete completed",
		observability.String("pattern", pattern),
		observability.Int("deleted", deleted))

	return deleted, nil
}

func (s *Store) deleteBatch(ctx context.Context, keys []string) (int, error) {
	count, err := s.client.Del(ctx, keys...).Result()
	if err != nil {
		return int(count), fmt.Errorf("%w: del: %v", domain.ErrCacheUnavailable, err)
	}
	return int(count), nil
}

// opContext bounds a store operation. The caller's deadline still
// applies if it is shorter.
func (s *Store) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.opTimeout)
}
