package cache

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewRedisFromURL creates a redis client from a REDIS_URL-style string and
// verifies it with a ping.
func NewRedisFromURL(ctx context.Context, url string) *redis.Client {
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis ping failed, cache disabled: %v", err)
	}
	return rdb
}

// Close closes the redis client, ignoring errors.
func Close(rdb *redis.Client) {
	_ = rdb.Close()
}
