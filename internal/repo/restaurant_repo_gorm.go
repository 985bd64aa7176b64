package repo

import (
	"context"

	"gorm.io/gorm"

	"restaurant-api/internal/domain"
)

type RestaurantRepo struct{ crud[domain.Restaurant] }

func NewRestaurantRepo(db *gorm.DB) *RestaurantRepo {
	return &RestaurantRepo{crud[domain.Restaurant]{db: db}}
}

func (r *RestaurantRepo) All(ctx context.Context) ([]domain.Restaurant, error) {
	out := make([]domain.Restaurant, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

type MenuRepo struct{ crud[domain.Menu] }

func NewMenuRepo(db *gorm.DB) *MenuRepo { return &MenuRepo{crud[domain.Menu]{db: db}} }

func (r *MenuRepo) ByRestaurant(ctx context.Context, restaurantID uint) ([]domain.Menu, error) {
	out := make([]domain.Menu, 0)
	err := r.db.WithContext(ctx).Where("restaurante_id = ?", restaurantID).Order("id").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
