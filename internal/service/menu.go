package service

import (
	"context"

	"restaurant-api/internal/core/cache"
	"restaurant-api/internal/domain"
)

type MenuService struct {
	menus       domain.MenuRepository
	restaurants domain.RestaurantRepository
	cache       *cache.Cache
}

func NewMenuService(menus domain.MenuRepository, restaurants domain.RestaurantRepository, c *cache.Cache) *MenuService {
	return &MenuService{menus: menus, restaurants: restaurants, cache: c}
}

type MenuInput struct {
	Dish  string
	Price float64
}

// Create adds a dish to a restaurant. There is no target row yet, so the role
// is checked before the parent lookup.
func (s *MenuService) Create(ctx context.Context, p domain.Principal, restaurantID uint, in MenuInput) (*domain.Menu, error) {
	if !p.IsAdmin() {
		return nil, domain.Forbidden("admin role required")
	}
	r, err := s.restaurants.FindByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.NotFound("restaurant not found")
	}
	m := &domain.Menu{Dish: in.Dish, Price: in.Price, RestaurantID: restaurantID}
	if err := s.menus.Create(ctx, m); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, keyMenus(restaurantID))
	return m, nil
}

// ByRestaurant lists a restaurant's dishes. An unknown restaurant yields an
// empty list.
func (s *MenuService) ByRestaurant(ctx context.Context, restaurantID uint) ([]domain.Menu, error) {
	return cache.GetOrLoadJSON(s.cache, ctx, keyMenus(restaurantID), func(ctx context.Context) ([]domain.Menu, error) {
		return s.menus.ByRestaurant(ctx, restaurantID)
	})
}

func (s *MenuService) Get(ctx context.Context, id uint) (*domain.Menu, error) {
	return s.find(ctx, id)
}

func (s *MenuService) Update(ctx context.Context, p domain.Principal, id uint, in MenuInput) (*domain.Menu, error) {
	m, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsAdmin() {
		return nil, domain.Forbidden("admin role required")
	}
	ok, err := s.menus.Update(ctx, id, map[string]any{"platillo": in.Dish, "precio": in.Price})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NotFound("menu not found")
	}
	s.cache.Invalidate(ctx, keyMenus(m.RestaurantID))
	m.Dish, m.Price = in.Dish, in.Price
	return m, nil
}

func (s *MenuService) Delete(ctx context.Context, p domain.Principal, id uint) error {
	m, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if !p.IsAdmin() {
		return domain.Forbidden("admin role required")
	}
	ok, err := s.menus.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound("menu not found")
	}
	s.cache.Invalidate(ctx, keyMenus(m.RestaurantID))
	return nil
}

func (s *MenuService) find(ctx context.Context, id uint) (*domain.Menu, error) {
	m, err := s.menus.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.NotFound("menu not found")
	}
	return m, nil
}
