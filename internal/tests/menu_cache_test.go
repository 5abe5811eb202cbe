package tests

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"foodhub/internal/domain"
	"foodhub/internal/mocks"
	"foodhub/internal/service"
	"foodhub/internal/storage"
)

func setupMenuCache(t *testing.T) *storage.MenuCache {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return storage.NewMenuCache(client, time.Minute)
}

func TestMenuCache_SetGetInvalidate(t *testing.T) {
	cache := setupMenuCache(t)
	ctx := context.Background()

	_, ok := cache.GetMenu(ctx)
	assert.False(t, ok)

	dishes := []domain.Dish{{DishID: "d1", DishName: "Pasta", Ratings: []float64{}, Reviews: []string{}}}
	assert.NoError(t, cache.SetMenu(ctx, dishes))

	cached, ok := cache.GetMenu(ctx)
	assert.True(t, ok)
	assert.Equal(t, dishes, cached)

	assert.NoError(t, cache.Invalidate(ctx))
	_, ok = cache.GetMenu(ctx)
	assert.False(t, ok)
}

func TestMenuService_SecondListServedFromRedis(t *testing.T) {
	cache := setupMenuCache(t)
	ctx := context.Background()

	dishes := []domain.Dish{{DishID: "d1", DishName: "Pasta", Ratings: []float64{}, Reviews: []string{}}}

	repo := mocks.NewMenuRepository(t)
	repo.On("ListDishes", ctx).Return(dishes, nil).Once()

	svc := service.NewMenuService(repo, cache)

	first, err := svc.ListDishes(ctx)
	assert.NoError(t, err)
	assert.Equal(t, dishes, first)

	// Served from the cache: the repository is not consulted again.
	second, err := svc.ListDishes(ctx)
	assert.NoError(t, err)
	assert.Equal(t, dishes, second)
}
