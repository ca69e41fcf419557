// Package cache provides an optional Redis-backed JSON cache. Caching is
// disabled when no Redis URL is configured; all operations then behave as
// misses so callers fall through to the primary store.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Miss is returned by Get when the key is absent or caching is disabled.
var Miss = redis.Nil

var (
	redisClient *redis.Client
	enabled     bool
)

// Initialize sets up the Redis connection if redisURL is provided. A bad URL
// or unreachable server disables caching rather than failing startup.
func Initialize(redisURL string) {
	if redisURL == "" {
		log.Println("cache: Redis URL not provided, caching disabled")
		enabled = false
		return
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("cache: failed to parse Redis URL: %v, caching disabled", err)
		enabled = false
		return
	}

	redisClient = redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("cache: failed to connect to Redis: %v, caching disabled", err)
		enabled = false
		return
	}

	enabled = true
	log.Println("cache: Redis cache initialized")
}

// Close closes the Redis connection.
func Close() {
	if redisClient != nil {
		_ = redisClient.Close()
	}
}

// Set stores a value in the cache with an expiration.
func Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	if !enabled {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return redisClient.Set(ctx, key, data, expiration).Err()
}

// Get retrieves a value from the cache into dest. Returns Miss when absent.
func Get(ctx context.Context, key string, dest any) error {
	if !enabled {
		return Miss
	}

	data, err := redisClient.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// Delete removes a key from the cache.
func Delete(ctx context.Context, key string) error {
	if !enabled {
		return nil
	}

	return redisClient.Del(ctx, key).Err()
}
