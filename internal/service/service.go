// Package service holds the resource controllers: each operation runs its
// policy and existence checks, then issues at most one mutating statement.
//
// Update and delete follow one order everywhere: load the target (404 when
// absent), check the caller's rights (403), then mutate by id and re-check the
// affected row count so a row removed in between reports 404, not success.
package service

import (
	"context"

	"gorm.io/gorm"

	"restaurant-api/internal/core/cache"
	"restaurant-api/internal/domain"
	"restaurant-api/internal/repo"
)

// TokenIssuer signs access tokens for a user id and role.
type TokenIssuer interface {
	Issue(id uint, role string) (string, error)
}

type Deps struct {
	DB               *gorm.DB
	Cache            *cache.Cache
	Tokens           TokenIssuer
	AllowAdminSignup bool
}

type Services struct {
	Auth         *AuthService
	Users        *UserService
	Restaurants  *RestaurantService
	Menus        *MenuService
	Reservations *ReservationService
	Orders       *OrderService
}

func New(d Deps) *Services {
	users := repo.NewUserRepo(d.DB)
	restaurants := repo.NewRestaurantRepo(d.DB)
	menus := repo.NewMenuRepo(d.DB)
	reservations := repo.NewReservationRepo(d.DB)
	orders := repo.NewOrderRepo(d.DB)

	return &Services{
		Auth:         NewAuthService(users, d.Tokens, d.AllowAdminSignup),
		Users:        NewUserService(users),
		Restaurants:  NewRestaurantService(restaurants, d.Cache),
		Menus:        NewMenuService(menus, restaurants, d.Cache),
		Reservations: NewReservationService(reservations, restaurants, users),
		Orders:       NewOrderService(orders, menus, reservations, users),
	}
}

// requireAccount rejects callers whose token outlived their account, so
// owned rows are never inserted against a missing user.
func requireAccount(ctx context.Context, users domain.UserRepository, p domain.Principal) error {
	if p.ID == 0 {
		return domain.Unauthorized("authentication required")
	}
	u, err := users.FindByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.NotFound("user not found")
	}
	return nil
}
