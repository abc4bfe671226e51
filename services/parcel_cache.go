package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"parcel-service/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	parcelListCachePrefix = "parcels:v:"
	parcelCacheVersionKey = "parcels:version"
	parcelCacheTTL        = 2 * time.Minute
)

// cachedParcelList is the cached payload for one list page.
type cachedParcelList struct {
	Parcels []models.Parcel `json:"parcels"`
	Total   int64           `json:"total"`
}

// ParcelCache caches parcel list pages in Redis. Invalidation bumps a
// version counter so stale pages simply stop being addressable.
type ParcelCache struct {
	redis  *redis.Client
	logger *zap.Logger
}

// NewParcelCache creates a ParcelCache. A nil redis client disables caching.
func NewParcelCache(rdb *redis.Client, logger *zap.Logger) *ParcelCache {
	return &ParcelCache{redis: rdb, logger: logger}
}

func (c *ParcelCache) enabled() bool { return c != nil && c.redis != nil }

func (c *ParcelCache) listKey(version int64, email string, page, limit int) string {
	return fmt.Sprintf("%s%d:%s:%d:%d", parcelListCachePrefix, version, email, page, limit)
}

func (c *ParcelCache) version(ctx context.Context) int64 {
	v, err := c.redis.Get(ctx, parcelCacheVersionKey).Int64()
	if err != nil {
		return 0
	}
	return v
}

// GetList returns a cached list page, if present.
func (c *ParcelCache) GetList(ctx context.Context, email string, page, limit int) ([]models.Parcel, int64, bool) {
	if !c.enabled() {
		return nil, 0, false
	}
	version := c.version(ctx)
	if version == 0 {
		return nil, 0, false
	}

	data, err := c.redis.Get(ctx, c.listKey(version, email, page, limit)).Result()
	if err != nil {
		return nil, 0, false
	}

	var cached cachedParcelList
	if err := json.Unmarshal([]byte(data), &cached); err != nil {
		c.logger.Warn("Failed to unmarshal cached parcel list", zap.Error(err))
		return nil, 0, false
	}
	return cached.Parcels, cached.Total, true
}

// SetList caches a list page asynchronously.
func (c *ParcelCache) SetList(email string, page, limit int, parcels []models.Parcel, total int64) {
	if !c.enabled() {
		return
	}
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version := c.version(bgCtx)
		if version == 0 {
			if err := c.redis.Set(bgCtx, parcelCacheVersionKey, 1, 0).Err(); err != nil {
				return
			}
			version = 1
		}

		data, err := json.Marshal(cachedParcelList{Parcels: parcels, Total: total})
		if err != nil {
			c.logger.Warn("Failed to marshal parcel list for cache", zap.Error(err))
			return
		}
		if err := c.redis.Set(bgCtx, c.listKey(version, email, page, limit), data, parcelCacheTTL).Err(); err != nil {
			c.logger.Warn("Failed to cache parcel list", zap.Error(err))
		}
	}()
}

// Invalidate bumps the cache version, orphaning every cached list page.
func (c *ParcelCache) Invalidate(ctx context.Context) {
	if !c.enabled() {
		return
	}
	if err := c.redis.Incr(ctx, parcelCacheVersionKey).Err(); err != nil {
		c.logger.Warn("Failed to invalidate parcel list cache", zap.Error(err))
	}
}
