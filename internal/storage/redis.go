package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"foodhub/internal/domain"
)

const menuCacheKey = "menu:all"

// MenuCache keeps the serialized menu in Redis so GET /menu does not
// hit the store on every request. Mutations invalidate the key.
type MenuCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewMenuCache(client *redis.Client, ttl time.Duration) *MenuCache {
	return &MenuCache{Client: client, TTL: ttl}
}

func (c *MenuCache) GetMenu(ctx context.Context) ([]domain.Dish, bool) {
	data, err := c.Client.Get(ctx, menuCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var dishes []domain.Dish
	if err := json.Unmarshal(data, &dishes); err != nil {
		return nil, false
	}
	return dishes, true
}

func (c *MenuCache) SetMenu(ctx context.Context, dishes []domain.Dish) error {
	data, err := json.Marshal(dishes)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, menuCacheKey, data, c.TTL).Err()
}

func (c *MenuCache) Invalidate(ctx context.Context) error {
	return c.Client.Del(ctx, menuCacheKey).Err()
}
