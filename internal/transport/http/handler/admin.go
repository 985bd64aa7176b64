package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-api/internal/domain"
	"restaurant-api/internal/service"
	"restaurant-api/internal/transport/http/ez"
	mdw "restaurant-api/internal/transport/http/middleware"
	resp "restaurant-api/internal/transport/http/response"
)

// AdminHandler serves the read-only admin console. The group it is mounted on
// already requires the admin role; the services check it again.
type AdminHandler struct {
	users        *service.UserService
	reservations *service.ReservationService
	orders       *service.OrderService
}

func NewAdminHandler(s *service.Services) *AdminHandler {
	return &AdminHandler{users: s.Users, reservations: s.Reservations, orders: s.Orders}
}

type userQuery struct {
	ez.OffsetQuery
	Q string `form:"q"` // email substring
}

type bookingQuery struct {
	ez.OffsetQuery
	RestaurantID uint `form:"restaurante_id"`
	UserID       uint `form:"usuario_id"`
}

func (q bookingQuery) filter() domain.Filter {
	return domain.Filter{UserID: q.UserID, RestaurantID: q.RestaurantID}
}

func (h *AdminHandler) MountAdmin(g *gin.RouterGroup) {
	ez.RegisterAction(g, ez.Action[userQuery, resp.Page[domain.User]]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: ez.BindQuery,
		Key:    "users",
		Handler: func(c *gin.Context, in *userQuery) (resp.Page[domain.User], error) {
			w := in.Window()
			items, total, err := h.users.Search(c.Request.Context(), mdw.PrincipalFrom(c), in.Q, w)
			return resp.NewPage(items, total, w.Offset, w.Limit), err
		},
	})

	ez.RegisterAction(g, ez.Action[bookingQuery, resp.Page[domain.Reservation]]{
		Method: http.MethodGet,
		Path:   "/reservations",
		Binder: ez.BindQuery,
		Key:    "reservations",
		Handler: func(c *gin.Context, in *bookingQuery) (resp.Page[domain.Reservation], error) {
			w := in.Window()
			items, total, err := h.reservations.List(c.Request.Context(), mdw.PrincipalFrom(c), in.filter(), w)
			return resp.NewPage(items, total, w.Offset, w.Limit), err
		},
	})

	ez.RegisterAction(g, ez.Action[bookingQuery, resp.Page[domain.Order]]{
		Method: http.MethodGet,
		Path:   "/orders",
		Binder: ez.BindQuery,
		Key:    "orders",
		Handler: func(c *gin.Context, in *bookingQuery) (resp.Page[domain.Order], error) {
			w := in.Window()
			items, total, err := h.orders.List(c.Request.Context(), mdw.PrincipalFrom(c), in.filter(), w)
			return resp.NewPage(items, total, w.Offset, w.Limit), err
		},
	})
}
