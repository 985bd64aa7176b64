package service

import (
	"context"
	"fmt"

	"restaurant-api/internal/core/cache"
	"restaurant-api/internal/domain"
)

const keyAllRestaurants = "restaurants:all"

func keyRestaurant(id uint) string { return fmt.Sprintf("restaurants:%d", id) }
func keyMenus(id uint) string      { return fmt.Sprintf("restaurants:%d:menus", id) }

type RestaurantService struct {
	repo  domain.RestaurantRepository
	cache *cache.Cache
}

func NewRestaurantService(repo domain.RestaurantRepository, c *cache.Cache) *RestaurantService {
	return &RestaurantService{repo: repo, cache: c}
}

type RestaurantInput struct {
	Name    string
	Address string
}

func (s *RestaurantService) Create(ctx context.Context, p domain.Principal, in RestaurantInput) (*domain.Restaurant, error) {
	if !p.IsAdmin() {
		return nil, domain.Forbidden("admin role required")
	}
	r := &domain.Restaurant{Name: in.Name, Address: in.Address}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, keyAllRestaurants)
	return r, nil
}

func (s *RestaurantService) List(ctx context.Context) ([]domain.Restaurant, error) {
	return cache.GetOrLoadJSON(s.cache, ctx, keyAllRestaurants, s.repo.All)
}

func (s *RestaurantService) Get(ctx context.Context, id uint) (*domain.Restaurant, error) {
	return cache.GetOrLoadJSON(s.cache, ctx, keyRestaurant(id), func(ctx context.Context) (*domain.Restaurant, error) {
		return s.find(ctx, id)
	})
}

func (s *RestaurantService) Update(ctx context.Context, p domain.Principal, id uint, in RestaurantInput) (*domain.Restaurant, error) {
	r, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsAdmin() {
		return nil, domain.Forbidden("admin role required")
	}
	ok, err := s.repo.Update(ctx, id, map[string]any{"nombre": in.Name, "direccion": in.Address})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NotFound("restaurant not found")
	}
	s.cache.Invalidate(ctx, keyAllRestaurants, keyRestaurant(id))
	r.Name, r.Address = in.Name, in.Address
	return r, nil
}

// Delete removes the restaurant; its menus, reservations and orders go with
// it through the foreign keys.
func (s *RestaurantService) Delete(ctx context.Context, p domain.Principal, id uint) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	if !p.IsAdmin() {
		return domain.Forbidden("admin role required")
	}
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound("restaurant not found")
	}
	s.cache.Invalidate(ctx, keyAllRestaurants, keyRestaurant(id), keyMenus(id))
	return nil
}

func (s *RestaurantService) find(ctx context.Context, id uint) (*domain.Restaurant, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.NotFound("restaurant not found")
	}
	return r, nil
}
