package cache

import (
	"context"
	"testing"
	"time"

	"pet-house-be/internal/entity"
	"pet-house-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestNilClientIsBypassed(t *testing.T) {
	c := NewRedisHistoryCache(nil, time.Minute, logger.NewNopLogger())
	ctx := context.Background()

	c.Set(ctx, "all", &entity.DashboardHistory{})
	c.Invalidate(ctx, "all")

	h, ok := c.Get(ctx, "all")
	assert.False(t, ok)
	assert.Nil(t, h)
}

func TestUnreachableRedisIsAMiss(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	c := NewRedisHistoryCache(rdb, time.Minute, logger.NewNopLogger())
	ctx := context.Background()

	assert.NotPanics(t, func() {
		c.Set(ctx, "author:a@example.com", &entity.DashboardHistory{})
		c.Invalidate(ctx, "author:a@example.com")
	})

	_, ok := c.Get(ctx, "author:a@example.com")
	assert.False(t, ok)
}
