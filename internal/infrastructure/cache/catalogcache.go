package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"simvia/internal/shared/config"
	"simvia/internal/shared/logger"
)

const keyPrefix = "catalog:"

// CatalogCache is a read-through cache for rendered catalog responses.
// All methods degrade to a miss when the cache is disabled or Redis is
// unreachable, so callers never fail because of the cache.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

// NewCatalogCache builds a cache from configuration. A disabled config
// returns a cache that always misses.
func NewCatalogCache(cfg config.RedisConfig, log logger.Interface) *CatalogCache {
	c := &CatalogCache{
		ttl:    time.Duration(cfg.TTL) * time.Second,
		logger: log.Named("catalog-cache"),
	}
	if !cfg.Enabled {
		return c
	}

	c.client = redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return c
}

// Get returns the cached payload for key, or (nil, false) on a miss.
func (c *CatalogCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warnw("cache read failed", "key", key, "error", err)
		}
		return nil, false
	}
	return data, true
}

// Set stores the payload under key for the configured TTL.
func (c *CatalogCache) Set(ctx context.Context, key string, payload []byte) {
	if c.client == nil {
		return
	}

	if err := c.client.Set(ctx, keyPrefix+key, payload, c.ttl).Err(); err != nil {
		c.logger.Warnw("cache write failed", "key", key, "error", err)
	}
}

// InvalidateAll drops every catalog key. Called after an import run so
// storefront reads pick up fresh data.
func (c *CatalogCache) InvalidateAll(ctx context.Context) {
	if c.client == nil {
		return
	}

	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Warnw("cache scan failed", "error", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warnw("cache invalidation failed", "keys", len(keys), "error", err)
	}
}

// Close releases the underlying connection pool.
func (c *CatalogCache) Close() error {
	if c.client == nil {
		return nil
	}
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}
	return nil
}
