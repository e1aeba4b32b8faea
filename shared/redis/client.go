// shared/redis/client.go
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// NewClient creates and returns a new configured Redis client. Any component
// that needs the cache layer connects through this function.
func NewClient(addr, password string) (*redis.Client, error) {
	if addr == "" {
		return nil, fmt.Errorf("no Redis address provided")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolTimeout:  6 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Ping to ensure connection
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	log.Info().Str("addr", addr).Msg("connected to Redis")
	return rdb, nil
}
