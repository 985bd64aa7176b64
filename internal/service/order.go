package service

import (
	"context"

	"restaurant-api/internal/domain"
)

type OrderService struct {
	orders       domain.OrderRepository
	menus        domain.MenuRepository
	reservations domain.ReservationRepository
	users        domain.UserRepository
}

func NewOrderService(orders domain.OrderRepository, menus domain.MenuRepository, reservations domain.ReservationRepository, users domain.UserRepository) *OrderService {
	return &OrderService{orders: orders, menus: menus, reservations: reservations, users: users}
}

// OrderInput is the writable part of an order. RestaurantID is optional and
// must match the menu's restaurant when given; ReservationID is optional and
// must point at a reservation of the order's owner.
type OrderInput struct {
	MenuID        uint
	Quantity      int
	RestaurantID  uint
	ReservationID *uint
}

func (s *OrderService) Create(ctx context.Context, p domain.Principal, in OrderInput) (*domain.Order, error) {
	if err := requireAccount(ctx, s.users, p); err != nil {
		return nil, err
	}
	restaurantID, err := s.resolve(ctx, p.ID, in)
	if err != nil {
		return nil, err
	}
	o := &domain.Order{
		UserID:        p.ID,
		ReservationID: in.ReservationID,
		MenuID:        in.MenuID,
		Quantity:      in.Quantity,
		RestaurantID:  restaurantID,
	}
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OrderService) Get(ctx context.Context, p domain.Principal, id uint) (*domain.Order, error) {
	o, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanAccess(o.OwnerID()) {
		return nil, domain.Forbidden("not allowed to view this order")
	}
	return o, nil
}

func (s *OrderService) Mine(ctx context.Context, p domain.Principal, page domain.Page) ([]domain.Order, int64, error) {
	return s.orders.List(ctx, domain.Filter{UserID: p.ID}, page)
}

// Update replaces the writable fields. The owner stays the original creator
// even when an admin edits the order.
func (s *OrderService) Update(ctx context.Context, p domain.Principal, id uint, in OrderInput) (*domain.Order, error) {
	o, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanAccess(o.OwnerID()) {
		return nil, domain.Forbidden("not allowed to modify this order")
	}
	restaurantID, err := s.resolve(ctx, o.UserID, in)
	if err != nil {
		return nil, err
	}
	ok, err := s.orders.Update(ctx, id, map[string]any{
		"menu_id":        in.MenuID,
		"cantidad":       in.Quantity,
		"restaurante_id": restaurantID,
		"reserva_id":     in.ReservationID,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NotFound("order not found")
	}
	o.MenuID, o.Quantity, o.RestaurantID, o.ReservationID = in.MenuID, in.Quantity, restaurantID, in.ReservationID
	return o, nil
}

func (s *OrderService) Delete(ctx context.Context, p domain.Principal, id uint) error {
	o, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if !p.CanAccess(o.OwnerID()) {
		return domain.Forbidden("not allowed to delete this order")
	}
	ok, err := s.orders.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound("order not found")
	}
	return nil
}

func (s *OrderService) List(ctx context.Context, p domain.Principal, f domain.Filter, page domain.Page) ([]domain.Order, int64, error) {
	if !p.IsAdmin() {
		return nil, 0, domain.Forbidden("admin role required")
	}
	return s.orders.List(ctx, f, page)
}

func (s *OrderService) find(ctx context.Context, id uint) (*domain.Order, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.NotFound("order not found")
	}
	return o, nil
}

// resolve checks the references in the input and returns the restaurant the
// order belongs to, taken from the menu.
func (s *OrderService) resolve(ctx context.Context, ownerID uint, in OrderInput) (uint, error) {
	if in.Quantity <= 0 {
		return 0, domain.Invalid("cantidad must be positive")
	}
	m, err := s.menus.FindByID(ctx, in.MenuID)
	if err != nil {
		return 0, err
	}
	if m == nil {
		return 0, domain.NotFound("menu not found")
	}
	if in.RestaurantID != 0 && in.RestaurantID != m.RestaurantID {
		return 0, domain.Invalid("menu does not belong to restaurante_id")
	}
	if in.ReservationID != nil {
		r, err := s.reservations.FindByID(ctx, *in.ReservationID)
		if err != nil {
			return 0, err
		}
		if r == nil {
			return 0, domain.NotFound("reservation not found")
		}
		if r.UserID != ownerID {
			return 0, domain.Forbidden("reservation belongs to another user")
		}
		if r.RestaurantID != m.RestaurantID {
			return 0, domain.Invalid("reservation is for another restaurant")
		}
	}
	return m.RestaurantID, nil
}
