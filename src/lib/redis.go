package lib

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"travel/src/config"
)

var redisClient *redis.Client

// GetRedisClient returns the shared client, or nil when REDIS_HOST is unset
// or unparsable.
func GetRedisClient() *redis.Client {
	if redisClient != nil {
		return redisClient
	}
	if config.REDIS_HOST == "" {
		return nil
	}
	opt, err := redis.ParseURL(config.REDIS_HOST)
	if err != nil {
		log.Printf("[redis] Error parsing connection string: %s\n", err.Error())
		return nil
	}
	rdb := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[redis] Server not reachable, caching disabled: %s\n", err.Error())
		rdb.Close()
		return nil
	}
	redisClient = rdb
	return rdb
}

// NewRedisClient Replace redis instance with custom client implementation
func NewRedisClient(c *redis.Client) *redis.Client {
	redisClient = c
	return redisClient
}
