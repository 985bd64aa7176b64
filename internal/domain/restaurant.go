package domain

import (
	"context"
	"time"
)

type Restaurant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"column:nombre;size:255;not null" json:"nombre"`
	Address   string    `gorm:"column:direccion;size:255;not null" json:"direccion"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Restaurant) TableName() string { return "restaurants" }

type RestaurantRepository interface {
	Create(ctx context.Context, r *Restaurant) error
	FindByID(ctx context.Context, id uint) (*Restaurant, error)
	All(ctx context.Context) ([]Restaurant, error)
	Update(ctx context.Context, id uint, fields map[string]any) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
}
