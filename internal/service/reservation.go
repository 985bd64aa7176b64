package service

import (
	"context"
	"time"

	"restaurant-api/internal/domain"
)

type ReservationService struct {
	reservations domain.ReservationRepository
	restaurants  domain.RestaurantRepository
	users        domain.UserRepository
}

func NewReservationService(reservations domain.ReservationRepository, restaurants domain.RestaurantRepository, users domain.UserRepository) *ReservationService {
	return &ReservationService{reservations: reservations, restaurants: restaurants, users: users}
}

type ReservationInput struct {
	Date         string
	Time         string
	RestaurantID uint
}

// Create books a table for the caller, who becomes the owner.
func (s *ReservationService) Create(ctx context.Context, p domain.Principal, in ReservationInput) (*domain.Reservation, error) {
	if err := requireAccount(ctx, s.users, p); err != nil {
		return nil, err
	}
	if _, err := time.Parse(domain.DateLayout, in.Date); err != nil {
		return nil, domain.Invalid("fecha must be YYYY-MM-DD")
	}
	if _, err := time.Parse(domain.TimeLayout, in.Time); err != nil {
		return nil, domain.Invalid("hora must be HH:MM")
	}
	r, err := s.restaurants.FindByID(ctx, in.RestaurantID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.NotFound("restaurant not found")
	}
	res := &domain.Reservation{Date: in.Date, Time: in.Time, UserID: p.ID, RestaurantID: in.RestaurantID}
	if err := s.reservations.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ReservationService) Get(ctx context.Context, p domain.Principal, id uint) (*domain.Reservation, error) {
	r, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanAccess(r.OwnerID()) {
		return nil, domain.Forbidden("not allowed to view this reservation")
	}
	return r, nil
}

func (s *ReservationService) Mine(ctx context.Context, p domain.Principal, page domain.Page) ([]domain.Reservation, int64, error) {
	return s.reservations.List(ctx, domain.Filter{UserID: p.ID}, page)
}

// Cancel deletes the reservation and returns it as it was. Orders that
// referenced it keep existing with the reference cleared.
func (s *ReservationService) Cancel(ctx context.Context, p domain.Principal, id uint) (*domain.Reservation, error) {
	r, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanAccess(r.OwnerID()) {
		return nil, domain.Forbidden("not allowed to cancel this reservation")
	}
	ok, err := s.reservations.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NotFound("reservation not found")
	}
	return r, nil
}

func (s *ReservationService) List(ctx context.Context, p domain.Principal, f domain.Filter, page domain.Page) ([]domain.Reservation, int64, error) {
	if !p.IsAdmin() {
		return nil, 0, domain.Forbidden("admin role required")
	}
	return s.reservations.List(ctx, f, page)
}

func (s *ReservationService) find(ctx context.Context, id uint) (*domain.Reservation, error) {
	r, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.NotFound("reservation not found")
	}
	return r, nil
}
