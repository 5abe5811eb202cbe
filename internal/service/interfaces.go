package service

import (
	"context"

	"foodhub/internal/domain"
)

type MenuRepository interface {
	GetDish(ctx context.Context, id string) (*domain.Dish, error)
	PutDish(ctx context.Context, dish *domain.Dish) error
	DeleteDish(ctx context.Context, id string) error
	ListDishes(ctx context.Context) ([]domain.Dish, error)
}

type OrderRepository interface {
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	PutOrder(ctx context.Context, order *domain.Order) error
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

// DishCatalog is what the order service needs from the menu side:
// dish lookup for reference validation.
type DishCatalog interface {
	GetDish(ctx context.Context, id string) (*domain.Dish, error)
}

type MenuCache interface {
	GetMenu(ctx context.Context) ([]domain.Dish, bool)
	SetMenu(ctx context.Context, dishes []domain.Dish) error
	Invalidate(ctx context.Context) error
}

// Broadcaster delivers an event to every connected subscriber,
// best-effort.
type Broadcaster interface {
	Broadcast(event domain.OrderEvent)
}

// EventPublisher mirrors order events to an external sink.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

// CompletionClient calls the external text-completion API.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type MenuServiceInterface interface {
	AddDish(ctx context.Context, name string, price float64, availability bool) (*domain.Dish, error)
	RemoveDish(ctx context.Context, id string) error
	UpdateAvailability(ctx context.Context, id string, available bool) (*domain.Dish, error)
	AddRatingReview(ctx context.Context, id string, rating float64, review string) (*domain.Dish, error)
	ListDishes(ctx context.Context) ([]domain.Dish, error)
	GetDish(ctx context.Context, id string) (*domain.Dish, error)
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, customerName string, dishIDs []string, quantity int) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

type ChatServiceInterface interface {
	Reply(ctx context.Context, message string) string
}

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}
