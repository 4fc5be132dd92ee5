package lib

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	FEATURED_DESTINATIONS_KEY = "catalog:destinations:featured"
	FEATURED_PACKAGES_KEY     = "catalog:packages:featured"
)

// CatalogCache stores JSON snapshots of read-mostly listings in redis.
// A nil *CatalogCache is valid and caches nothing.
type CatalogCache struct {
	rd  *redis.Client
	ttl time.Duration
}

func NewCatalogCache(rd *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{rd: rd, ttl: ttl}
}

func (c *CatalogCache) enabled() bool {
	return c != nil && c.rd != nil
}

// Get decodes the cached value for key into dest and reports whether it was found.
func (c *CatalogCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if !c.enabled() {
		return false, nil
	}
	raw, err := c.rd.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *CatalogCache) Set(ctx context.Context, key string, value any) error {
	if !c.enabled() {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rd.Set(ctx, key, payload, c.ttl).Err()
}

// Remember serves key from the cache, falling back to load and storing its
// result. Cache failures are logged and never fail the read.
func Remember[T any](ctx context.Context, c *CatalogCache, key string, load func(context.Context) (T, error)) (T, error) {
	var cached T
	hit, err := c.Get(ctx, key, &cached)
	if err != nil {
		log.Printf("[Cache] Error reading %s: %s\n", key, err.Error())
	}
	if hit {
		return cached, nil
	}
	value, err := load(ctx)
	if err != nil {
		return value, err
	}
	if err := c.Set(ctx, key, value); err != nil {
		log.Printf("[Cache] Error writing %s: %s\n", key, err.Error())
	}
	return value, nil
}
