package storage

import (
	"context"
	"errors"

	"foodhub/internal/domain"
)

// MenuRepository exposes typed dish persistence over a generic Store.
type MenuRepository struct {
	store Store
}

func NewMenuRepository(store Store) *MenuRepository {
	return &MenuRepository{store: store}
}

func (r *MenuRepository) GetDish(ctx context.Context, id string) (*domain.Dish, error) {
	var dish domain.Dish
	if err := r.store.Get(ctx, MenuCollection, id, &dish); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &dish, nil
}

func (r *MenuRepository) PutDish(ctx context.Context, dish *domain.Dish) error {
	return r.store.Put(ctx, MenuCollection, dish.DishID, dish)
}

func (r *MenuRepository) DeleteDish(ctx context.Context, id string) error {
	return r.store.Delete(ctx, MenuCollection, id)
}

func (r *MenuRepository) ListDishes(ctx context.Context) ([]domain.Dish, error) {
	dishes := []domain.Dish{}
	if err := r.store.List(ctx, MenuCollection, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

// OrderRepository exposes typed order persistence over a generic Store.
type OrderRepository struct {
	store Store
}

func NewOrderRepository(store Store) *OrderRepository {
	return &OrderRepository{store: store}
}

func (r *OrderRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	if err := r.store.Get(ctx, OrdersCollection, id, &order); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) PutOrder(ctx context.Context, order *domain.Order) error {
	return r.store.Put(ctx, OrdersCollection, order.OrderID, order)
}

func (r *OrderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders := []domain.Order{}
	if err := r.store.List(ctx, OrdersCollection, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
