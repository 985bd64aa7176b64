package repo

import (
	"context"

	"gorm.io/gorm"

	"restaurant-api/internal/domain"
)

type ReservationRepo struct{ crud[domain.Reservation] }

func NewReservationRepo(db *gorm.DB) *ReservationRepo {
	return &ReservationRepo{crud[domain.Reservation]{db: db}}
}

func (r *ReservationRepo) List(ctx context.Context, f domain.Filter, p domain.Page) ([]domain.Reservation, int64, error) {
	return r.page(ctx, applyFilter(r.db, f), p)
}

type OrderRepo struct{ crud[domain.Order] }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{crud[domain.Order]{db: db}} }

func (r *OrderRepo) List(ctx context.Context, f domain.Filter, p domain.Page) ([]domain.Order, int64, error) {
	return r.page(ctx, applyFilter(r.db, f), p)
}

func applyFilter(db *gorm.DB, f domain.Filter) *gorm.DB {
	if f.UserID != 0 {
		db = db.Where("usuario_id = ?", f.UserID)
	}
	if f.RestaurantID != 0 {
		db = db.Where("restaurante_id = ?", f.RestaurantID)
	}
	return db
}
