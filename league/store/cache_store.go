// league/store/cache_store.go
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a cache key does not exist.
var ErrCacheMiss = errors.New("cache entry not found")

// CacheStore manages the JSON side-cache in Redis. Entries are written with
// the configured TTL; a zero TTL leaves expiry to external configuration.
type CacheStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCacheStore creates a new CacheStore instance.
func NewCacheStore(client *redis.Client, ttl time.Duration) *CacheStore {
	return &CacheStore{
		client: client,
		ttl:    ttl,
	}
}

// GetJSON reads the entry under key and unmarshals it into dest. Returns
// ErrCacheMiss when the key does not exist.
func (cs *CacheStore) GetJSON(ctx context.Context, key string, dest interface{}) error {
	val, err := cs.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("failed to read cache key %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return fmt.Errorf("failed to decode cache entry %s: %w", key, err)
	}
	return nil
}

// SetJSON marshals value and stores it under key.
func (cs *CacheStore) SetJSON(ctx context.Context, key string, value interface{}) error {
	buf, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry %s: %w", key, err)
	}
	if err := cs.client.Set(ctx, key, buf, cs.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}
	return nil
}

// Delete removes the given keys. Missing keys are not an error.
func (cs *CacheStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := cs.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cache keys %v: %w", keys, err)
	}
	return nil
}
