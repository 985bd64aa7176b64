package domain

import (
	"context"
	"time"
)

type Order struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	UserID        uint         `gorm:"column:usuario_id;not null;index" json:"usuario_id"`
	User          *User        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ReservationID *uint        `gorm:"column:reserva_id;index" json:"reserva_id"`
	Reservation   *Reservation `gorm:"foreignKey:ReservationID;constraint:OnDelete:SET NULL" json:"-"`
	MenuID        uint         `gorm:"column:menu_id;not null;index" json:"menu_id"`
	Menu          *Menu        `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE" json:"-"`
	Quantity      int          `gorm:"column:cantidad;not null" json:"cantidad"`
	RestaurantID  uint         `gorm:"column:restaurante_id;not null;index" json:"restaurante_id"`
	Restaurant    *Restaurant  `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

func (Order) TableName() string { return "orders" }

func (o *Order) OwnerID() uint { return o.UserID }

type OrderRepository interface {
	Create(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id uint) (*Order, error)
	List(ctx context.Context, f Filter, p Page) ([]Order, int64, error)
	Update(ctx context.Context, id uint, fields map[string]any) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
}
