package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"foodhub/internal/domain"
)

// MenuService owns dish identity and the availability flag. The cache
// is optional; when present it is consulted on listing and dropped on
// every mutation.
type MenuService struct {
	repo  MenuRepository
	cache MenuCache

	// Serializes the read-modify-write in AddRatingReview; without it
	// two concurrent appends could both read the same slices and one
	// rating/review pair would be lost on write-back.
	reviewMu sync.Mutex
}

func NewMenuService(repo MenuRepository, cache MenuCache) *MenuService {
	return &MenuService{repo: repo, cache: cache}
}

func (s *MenuService) AddDish(ctx context.Context, name string, price float64, availability bool) (*domain.Dish, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: dish name is required", domain.ErrValidation)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}

	dish := &domain.Dish{
		DishID:       uuid.NewString(),
		DishName:     name,
		Price:        price,
		Availability: availability,
		Ratings:      []float64{},
		Reviews:      []string{},
	}
	if err := s.repo.PutDish(ctx, dish); err != nil {
		return nil, err
	}
	s.dropCache(ctx)
	return dish, nil
}

// RemoveDish is idempotent: removing an id that is already absent is
// not an error.
func (s *MenuService) RemoveDish(ctx context.Context, id string) error {
	if err := s.repo.DeleteDish(ctx, id); err != nil {
		return err
	}
	s.dropCache(ctx)
	return nil
}

func (s *MenuService) UpdateAvailability(ctx context.Context, id string, available bool) (*domain.Dish, error) {
	dish, err := s.repo.GetDish(ctx, id)
	if err != nil {
		return nil, err
	}
	dish.Availability = available
	if err := s.repo.PutDish(ctx, dish); err != nil {
		return nil, err
	}
	s.dropCache(ctx)
	return dish, nil
}

// AddRatingReview appends rating and review in lock-step so the two
// slices stay index-aligned.
func (s *MenuService) AddRatingReview(ctx context.Context, id string, rating float64, review string) (*domain.Dish, error) {
	s.reviewMu.Lock()
	defer s.reviewMu.Unlock()

	dish, err := s.repo.GetDish(ctx, id)
	if err != nil {
		return nil, err
	}
	dish.Ratings = append(dish.Ratings, rating)
	dish.Reviews = append(dish.Reviews, review)
	if err := s.repo.PutDish(ctx, dish); err != nil {
		return nil, err
	}
	s.dropCache(ctx)
	return dish, nil
}

func (s *MenuService) ListDishes(ctx context.Context) ([]domain.Dish, error) {
	if s.cache != nil {
		if dishes, ok := s.cache.GetMenu(ctx); ok {
			return dishes, nil
		}
	}
	dishes, err := s.repo.ListDishes(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetMenu(ctx, dishes); err != nil {
			log.Printf("[menu] failed to cache menu: %v", err)
		}
	}
	return dishes, nil
}

func (s *MenuService) GetDish(ctx context.Context, id string) (*domain.Dish, error) {
	return s.repo.GetDish(ctx, id)
}

func (s *MenuService) dropCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("[menu] failed to invalidate menu cache: %v", err)
	}
}

var _ MenuServiceInterface = (*MenuService)(nil)
var _ DishCatalog = (*MenuService)(nil)
