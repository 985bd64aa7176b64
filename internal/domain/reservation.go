package domain

import (
	"context"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Reservation struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Date         string      `gorm:"column:fecha;size:10;not null" json:"fecha"`
	Time         string      `gorm:"column:hora;size:5;not null" json:"hora"`
	UserID       uint        `gorm:"column:usuario_id;not null;index" json:"usuario_id"`
	User         *User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	RestaurantID uint        `gorm:"column:restaurante_id;not null;index" json:"restaurante_id"`
	Restaurant   *Restaurant `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (Reservation) TableName() string { return "reservations" }

func (r *Reservation) OwnerID() uint { return r.UserID }

type ReservationRepository interface {
	Create(ctx context.Context, r *Reservation) error
	FindByID(ctx context.Context, id uint) (*Reservation, error)
	List(ctx context.Context, f Filter, p Page) ([]Reservation, int64, error)
	Delete(ctx context.Context, id uint) (bool, error)
}
