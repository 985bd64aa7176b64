package domain

import (
	"context"
	"time"
)

// Menu is a single dish offered by a restaurant.
type Menu struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Dish         string      `gorm:"column:platillo;size:255;not null" json:"platillo"`
	Price        float64     `gorm:"column:precio;not null" json:"precio"`
	RestaurantID uint        `gorm:"column:restaurante_id;not null;index" json:"restaurante_id"`
	Restaurant   *Restaurant `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (Menu) TableName() string { return "menus" }

type MenuRepository interface {
	Create(ctx context.Context, m *Menu) error
	FindByID(ctx context.Context, id uint) (*Menu, error)
	ByRestaurant(ctx context.Context, restaurantID uint) ([]Menu, error)
	Update(ctx context.Context, id uint, fields map[string]any) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
}
