package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"pet-house-be/internal/entity"
	"pet-house-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const historyKeyPrefix = "pethouse:history:"

// RedisHistoryCache stores built dashboard histories per scope. Every Redis error is logged
// and treated as a miss so the caller falls back to the store.
type RedisHistoryCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.ILogger
}

func NewRedisHistoryCache(rdb *redis.Client, ttl time.Duration, logger logger.ILogger) *RedisHistoryCache {
	return &RedisHistoryCache{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisHistoryCache) Get(ctx context.Context, scope string) (*entity.DashboardHistory, bool) {
	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, historyKeyPrefix+scope).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("CACHE", "History cache read failed", map[string]interface{}{"scope": scope, "error": err.Error()})
		}
		return nil, false
	}

	var h entity.DashboardHistory
	if err := json.Unmarshal(raw, &h); err != nil {
		c.logger.Warn("CACHE", "History cache entry is corrupt", map[string]interface{}{"scope": scope, "error": err.Error()})
		return nil, false
	}
	return &h, true
}

func (c *RedisHistoryCache) Set(ctx context.Context, scope string, h *entity.DashboardHistory) {
	if c.rdb == nil || h == nil {
		return
	}

	raw, err := json.Marshal(h)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, historyKeyPrefix+scope, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("CACHE", "History cache write failed", map[string]interface{}{"scope": scope, "error": err.Error()})
	}
}

func (c *RedisHistoryCache) Invalidate(ctx context.Context, scopes ...string) {
	if c.rdb == nil || len(scopes) == 0 {
		return
	}

	keys := make([]string, len(scopes))
	for i, s := range scopes {
		keys[i] = historyKeyPrefix + s
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("CACHE", "History cache invalidation failed", map[string]interface{}{"scopes": scopes, "error": err.Error()})
	}
}
