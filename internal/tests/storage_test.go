package tests

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"foodhub/internal/domain"
	"foodhub/internal/storage"
)

func runStoreContract(t *testing.T, store storage.Store) {
	ctx := context.Background()

	dish := domain.Dish{DishID: "d1", DishName: "Pasta", Price: 9.99, Ratings: []float64{}, Reviews: []string{}}
	assert.NoError(t, store.Put(ctx, storage.MenuCollection, dish.DishID, &dish))

	var got domain.Dish
	assert.NoError(t, store.Get(ctx, storage.MenuCollection, "d1", &got))
	assert.Equal(t, dish, got)

	// Overwrite must replace, not duplicate.
	dish.Price = 11.5
	assert.NoError(t, store.Put(ctx, storage.MenuCollection, dish.DishID, &dish))

	dishes := []domain.Dish{}
	assert.NoError(t, store.List(ctx, storage.MenuCollection, &dishes))
	assert.Len(t, dishes, 1)
	assert.Equal(t, 11.5, dishes[0].Price)

	// Collections must not bleed into each other.
	order := domain.Order{OrderID: "o1", Status: "received", DishIDs: []string{"d1"}, Ratings: []float64{}, Reviews: []string{}}
	assert.NoError(t, store.Put(ctx, storage.OrdersCollection, order.OrderID, &order))

	orders := []domain.Order{}
	assert.NoError(t, store.List(ctx, storage.OrdersCollection, &orders))
	assert.Len(t, orders, 1)

	dishes = nil
	assert.NoError(t, store.List(ctx, storage.MenuCollection, &dishes))
	assert.Len(t, dishes, 1)

	// Missing documents.
	err := store.Get(ctx, storage.MenuCollection, "ghost", &got)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Delete, then delete again: both succeed.
	assert.NoError(t, store.Delete(ctx, storage.MenuCollection, "d1"))
	assert.NoError(t, store.Delete(ctx, storage.MenuCollection, "d1"))
	err = store.Get(ctx, storage.MenuCollection, "d1", &got)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestFileStore_Contract(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	assert.NoError(t, err)
	runStoreContract(t, store)
}

func TestPebbleStore_Contract(t *testing.T) {
	store, err := storage.NewPebbleStore(t.TempDir())
	assert.NoError(t, err)
	defer store.Close()
	runStoreContract(t, store)
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := storage.NewFileStore(dir)
	assert.NoError(t, err)

	dish := domain.Dish{DishID: "d1", DishName: "Pasta"}
	assert.NoError(t, store.Put(ctx, storage.MenuCollection, "d1", &dish))

	reopened, err := storage.NewFileStore(dir)
	assert.NoError(t, err)

	var got domain.Dish
	assert.NoError(t, reopened.Get(ctx, storage.MenuCollection, "d1", &got))
	assert.Equal(t, "Pasta", got.DishName)
}

// Concurrent writers to the same collection must not lose updates;
// this is what the per-collection lock exists for.
func TestFileStore_ConcurrentWritesNotLost(t *testing.T) {
	ctx := context.Background()

	store, err := storage.NewFileStore(t.TempDir())
	assert.NoError(t, err)

	const writers = 25

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("d%d", n)
			dish := domain.Dish{DishID: id, DishName: "Dish"}
			assert.NoError(t, store.Put(ctx, storage.MenuCollection, id, &dish))
		}(i)
	}
	wg.Wait()

	dishes := []domain.Dish{}
	assert.NoError(t, store.List(ctx, storage.MenuCollection, &dishes))
	assert.Len(t, dishes, writers)
}
