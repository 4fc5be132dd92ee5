package common

import (
	"context"
	"fmt"
	"log"
	"time"

	"travel/src/lib"
	"travel/src/storage"
)

// WarmFeaturedCache reloads the featured listings from the store into the cache.
func WarmFeaturedCache(ctx context.Context, store storage.Storage, cache *lib.CatalogCache) error {
	dests, err := store.GetFeaturedDestinations(ctx)
	if err != nil {
		return fmt.Errorf("load featured destinations: %w", err)
	}
	if err := cache.Set(ctx, lib.FEATURED_DESTINATIONS_KEY, dests); err != nil {
		return fmt.Errorf("cache featured destinations: %w", err)
	}
	pkgs, err := store.GetFeaturedPackages(ctx)
	if err != nil {
		return fmt.Errorf("load featured packages: %w", err)
	}
	if err := cache.Set(ctx, lib.FEATURED_PACKAGES_KEY, pkgs); err != nil {
		return fmt.Errorf("cache featured packages: %w", err)
	}
	return nil
}

// FeaturedCacheJob is the scheduler task wrapping WarmFeaturedCache.
func FeaturedCacheJob(store storage.Storage, cache *lib.CatalogCache) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := WarmFeaturedCache(ctx, store, cache); err != nil {
		log.Printf("[Cache] Error warming featured listings: %s\n", err.Error())
		return
	}
	log.Println("[Cache] Featured listings refreshed")
}
