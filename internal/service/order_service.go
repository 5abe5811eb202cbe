package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"foodhub/internal/domain"
)

// Order-id allocation schemes.
const (
	IDModeUUID       = "uuid"
	IDModeSequential = "sequential"
)

type OrderServiceOptions struct {
	// IDMode selects the allocation scheme; defaults to IDModeUUID.
	IDMode string
	// StrictStatuses restricts UpdateStatus to domain.KnownStatuses
	// instead of accepting arbitrary strings.
	StrictStatuses bool
}

// OrderService allocates order identifiers, validates dish references
// against the catalog and fans out status changes through the
// broadcaster and the optional external publisher.
type OrderService struct {
	repo      OrderRepository
	catalog   DishCatalog
	notifier  Broadcaster
	publisher EventPublisher
	opts      OrderServiceOptions

	// Serializes max+1 allocation in sequential mode; without it
	// concurrent placements could read the same maximum.
	allocMu sync.Mutex
}

func NewOrderService(repo OrderRepository, catalog DishCatalog, notifier Broadcaster, publisher EventPublisher, opts OrderServiceOptions) *OrderService {
	if opts.IDMode == "" {
		opts.IDMode = IDModeUUID
	}
	return &OrderService{
		repo:      repo,
		catalog:   catalog,
		notifier:  notifier,
		publisher: publisher,
		opts:      opts,
	}
}

func (s *OrderService) PlaceOrder(ctx context.Context, customerName string, dishIDs []string, quantity int) (*domain.Order, error) {
	for _, id := range dishIDs {
		dish, err := s.catalog.GetDish(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", domain.ErrInvalidDish, id)
			}
			return nil, err
		}
		if !dish.Availability {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidDish, id)
		}
	}

	order := &domain.Order{
		CustomerName: customerName,
		DishIDs:      dishIDs,
		Quantity:     quantity,
		Status:       domain.StatusReceived,
		Ratings:      []float64{},
		Reviews:      []string{},
	}

	if s.opts.IDMode == IDModeSequential {
		s.allocMu.Lock()
		defer s.allocMu.Unlock()
		id, err := s.nextSequentialID(ctx)
		if err != nil {
			return nil, err
		}
		order.OrderID = id
	} else {
		order.OrderID = uuid.NewString()
	}

	if err := s.repo.PutOrder(ctx, order); err != nil {
		return nil, err
	}

	s.emit(ctx, domain.OrderEvent{OrderID: order.OrderID, Status: order.Status})
	return order, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (*domain.Order, error) {
	if strings.TrimSpace(status) == "" {
		return nil, fmt.Errorf("%w: status is required", domain.ErrValidation)
	}
	if s.opts.StrictStatuses && !domain.KnownStatuses[status] {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.Status = status
	if err := s.repo.PutOrder(ctx, order); err != nil {
		return nil, err
	}

	s.emit(ctx, domain.OrderEvent{OrderID: order.OrderID, Status: order.Status})
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetOrder(ctx, id)
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListOrders(ctx)
}

// nextSequentialID returns 1 + max over existing numeric order ids.
// Caller must hold allocMu.
func (s *OrderService) nextSequentialID(ctx context.Context) (string, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return "", err
	}
	max := 0
	for _, order := range orders {
		if n, err := strconv.Atoi(order.OrderID); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1), nil
}

// emit pushes the event to connected clients and the external topic.
// Delivery is best-effort and never fails the triggering request.
func (s *OrderService) emit(ctx context.Context, event domain.OrderEvent) {
	s.notifier.Broadcast(event)
	if s.publisher != nil {
		if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
			log.Printf("[order] failed to publish event for order %s: %v", event.OrderID, err)
		}
	}
}

var _ OrderServiceInterface = (*OrderService)(nil)
