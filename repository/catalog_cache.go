package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/solvera/storefront-api/models"
)

const catalogCacheKey = "catalog:products"

// CatalogCache keeps the full product list in Redis so that every filter or
// search request does not hit Mongo. Misses and marshal failures degrade to
// a fetch, never to an error.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached catalog and whether it was present.
func (c *CatalogCache) Get(ctx context.Context) ([]models.Product, bool) {
	data, err := c.client.Get(ctx, catalogCacheKey).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		zap.L().Warn("Catalog cache read failed", zap.Error(err))
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(data), &products); err != nil {
		zap.L().Warn("Failed to unmarshal cached catalog", zap.Error(err))
		return nil, false
	}
	return products, true
}

// SetAsync writes the catalog to the cache off the request path.
func (c *CatalogCache) SetAsync(products []models.Product) {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		data, err := json.Marshal(products)
		if err != nil {
			zap.L().Warn("Failed to marshal catalog for cache", zap.Error(err))
			return
		}
		if err := c.client.Set(bgCtx, catalogCacheKey, data, c.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache catalog", zap.Error(err))
		}
	}()
}

// Invalidate drops the cached catalog; the next read repopulates it.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, catalogCacheKey).Err()
}
