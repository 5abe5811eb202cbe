package tests

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"foodhub/internal/domain"
	"foodhub/internal/mocks"
	"foodhub/internal/service"
	"foodhub/internal/storage"
)

func TestOrderService_PlaceOrder(t *testing.T) {
	ctx := context.Background()

	availableDish := &domain.Dish{DishID: "d1", DishName: "Pasta", Availability: true}
	unavailableDish := &domain.Dish{DishID: "d2", DishName: "Soup", Availability: false}

	tests := []struct {
		name         string
		dishIDs      []string
		prepareMocks func(repo *mocks.OrderRepository, catalog *mocks.DishCatalog, notifier *mocks.Broadcaster, publisher *mocks.EventPublisher)
		expectedErr  error
	}{
		{
			name:    "success",
			dishIDs: []string{"d1", "d1"},
			prepareMocks: func(repo *mocks.OrderRepository, catalog *mocks.DishCatalog, notifier *mocks.Broadcaster, publisher *mocks.EventPublisher) {
				catalog.On("GetDish", ctx, "d1").Return(availableDish, nil).Twice()
				repo.On("PutOrder", ctx, mock.MatchedBy(func(o *domain.Order) bool {
					return o.OrderID != "" && o.Status == domain.StatusReceived
				})).Return(nil).Once()
				notifier.On("Broadcast", mock.MatchedBy(func(e domain.OrderEvent) bool {
					return e.Status == domain.StatusReceived && e.OrderID != ""
				})).Once()
				publisher.On("PublishOrderEvent", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
					return e.Status == domain.StatusReceived
				})).Return(nil).Once()
			},
			expectedErr: nil,
		},
		{
			name:    "error_unknown_dish",
			dishIDs: []string{"ghost"},
			prepareMocks: func(repo *mocks.OrderRepository, catalog *mocks.DishCatalog, notifier *mocks.Broadcaster, publisher *mocks.EventPublisher) {
				catalog.On("GetDish", ctx, "ghost").Return(nil, domain.ErrNotFound).Once()
			},
			expectedErr: domain.ErrInvalidDish,
		},
		{
			name:    "error_unavailable_dish",
			dishIDs: []string{"d1", "d2"},
			prepareMocks: func(repo *mocks.OrderRepository, catalog *mocks.DishCatalog, notifier *mocks.Broadcaster, publisher *mocks.EventPublisher) {
				catalog.On("GetDish", ctx, "d1").Return(availableDish, nil).Once()
				catalog.On("GetDish", ctx, "d2").Return(unavailableDish, nil).Once()
			},
			expectedErr: domain.ErrInvalidDish,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrderRepository(t)
			catalog := mocks.NewDishCatalog(t)
			notifier := mocks.NewBroadcaster(t)
			publisher := mocks.NewEventPublisher(t)
			testCase.prepareMocks(repo, catalog, notifier, publisher)

			svc := service.NewOrderService(repo, catalog, notifier, publisher, service.OrderServiceOptions{})
			order, err := svc.PlaceOrder(ctx, "Alice", testCase.dishIDs, 2)

			assert.ErrorIs(t, err, testCase.expectedErr)
			if testCase.expectedErr == nil {
				assert.NotEmpty(t, order.OrderID)
				assert.Equal(t, domain.StatusReceived, order.Status)
				assert.Equal(t, testCase.dishIDs, order.DishIDs)
			} else {
				assert.Nil(t, order)
			}
		})
	}
}

// A catalog lookup failing for infrastructure reasons is not the
// customer's fault: the error must propagate as-is instead of being
// reported as an invalid dish.
func TestOrderService_PlaceOrder_CatalogOutage(t *testing.T) {
	ctx := context.Background()

	errStoreDown := errors.New("connection refused")

	repo := mocks.NewOrderRepository(t)
	catalog := mocks.NewDishCatalog(t)
	catalog.On("GetDish", ctx, "d1").Return(nil, errStoreDown).Once()

	svc := service.NewOrderService(repo, catalog, mocks.NewBroadcaster(t), nil, service.OrderServiceOptions{})
	order, err := svc.PlaceOrder(ctx, "Alice", []string{"d1"}, 1)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, errStoreDown)
	assert.NotErrorIs(t, err, domain.ErrInvalidDish)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		notifier := mocks.NewBroadcaster(t)

		order := &domain.Order{OrderID: "o1", Status: domain.StatusReceived}
		repo.On("GetOrder", ctx, "o1").Return(order, nil).Once()
		repo.On("PutOrder", ctx, mock.MatchedBy(func(o *domain.Order) bool {
			return o.OrderID == "o1" && o.Status == "preparing"
		})).Return(nil).Once()
		notifier.On("Broadcast", domain.OrderEvent{OrderID: "o1", Status: "preparing"}).Once()

		svc := service.NewOrderService(repo, mocks.NewDishCatalog(t), notifier, nil, service.OrderServiceOptions{})
		updated, err := svc.UpdateStatus(ctx, "o1", "preparing")
		assert.NoError(t, err)
		assert.Equal(t, "preparing", updated.Status)
	})

	t.Run("error_empty_status", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(repo, mocks.NewDishCatalog(t), mocks.NewBroadcaster(t), nil, service.OrderServiceOptions{})
		_, err := svc.UpdateStatus(ctx, "o1", "  ")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("error_not_found", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		repo.On("GetOrder", ctx, "ghost").Return(nil, domain.ErrNotFound).Once()
		svc := service.NewOrderService(repo, mocks.NewDishCatalog(t), mocks.NewBroadcaster(t), nil, service.OrderServiceOptions{})
		_, err := svc.UpdateStatus(ctx, "ghost", "preparing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("free_text_accepted_by_default", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		notifier := mocks.NewBroadcaster(t)

		order := &domain.Order{OrderID: "o1", Status: "delivered"}
		repo.On("GetOrder", ctx, "o1").Return(order, nil).Once()
		repo.On("PutOrder", ctx, mock.Anything).Return(nil).Once()
		notifier.On("Broadcast", domain.OrderEvent{OrderID: "o1", Status: "lost in a snowstorm"}).Once()

		svc := service.NewOrderService(repo, mocks.NewDishCatalog(t), notifier, nil, service.OrderServiceOptions{})
		updated, err := svc.UpdateStatus(ctx, "o1", "lost in a snowstorm")
		assert.NoError(t, err)
		assert.Equal(t, "lost in a snowstorm", updated.Status)
	})

	t.Run("strict_mode_rejects_unknown_status", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(repo, mocks.NewDishCatalog(t), mocks.NewBroadcaster(t), nil, service.OrderServiceOptions{StrictStatuses: true})
		_, err := svc.UpdateStatus(ctx, "o1", "lost in a snowstorm")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

// Concurrent placements in sequential-id mode must never produce
// duplicate order ids.
func TestOrderService_SequentialIDs_Concurrent(t *testing.T) {
	ctx := context.Background()

	store, err := storage.NewFileStore(t.TempDir())
	assert.NoError(t, err)

	menu := service.NewMenuService(storage.NewMenuRepository(store), nil)
	dish, err := menu.AddDish(ctx, "Pasta", 9.99, true)
	assert.NoError(t, err)

	svc := service.NewOrderService(
		storage.NewOrderRepository(store),
		menu,
		service.NewNotifier(),
		nil,
		service.OrderServiceOptions{IDMode: service.IDModeSequential},
	)

	const workers = 20

	var wg sync.WaitGroup
	var mu sync.Mutex
	ids := map[string]bool{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := svc.PlaceOrder(ctx, "Bob", []string{dish.DishID}, 1)
			assert.NoError(t, err)

			mu.Lock()
			defer mu.Unlock()
			assert.False(t, ids[order.OrderID], "duplicate order_id %s", order.OrderID)
			ids[order.OrderID] = true
		}()
	}
	wg.Wait()

	orders, err := svc.ListOrders(ctx)
	assert.NoError(t, err)
	assert.Len(t, orders, workers)
}

// A failed placement must leave no partial order behind.
func TestOrderService_InvalidDish_NoSideEffects(t *testing.T) {
	ctx := context.Background()

	store, err := storage.NewFileStore(t.TempDir())
	assert.NoError(t, err)

	menu := service.NewMenuService(storage.NewMenuRepository(store), nil)
	svc := service.NewOrderService(
		storage.NewOrderRepository(store),
		menu,
		service.NewNotifier(),
		nil,
		service.OrderServiceOptions{},
	)

	_, err = svc.PlaceOrder(ctx, "Mallory", []string{"nonexistent"}, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidDish)

	orders, err := svc.ListOrders(ctx)
	assert.NoError(t, err)
	assert.Empty(t, orders)
}
