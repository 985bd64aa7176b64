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

type OrderHandler struct{ svc *service.OrderService }

func NewOrderHandler(svc *service.OrderService) *OrderHandler { return &OrderHandler{svc: svc} }

type orderIn struct {
	MenuID        uint  `json:"menu_id"        binding:"required"`
	Quantity      int   `json:"cantidad"       binding:"required,gt=0"`
	RestaurantID  uint  `json:"restaurante_id"`
	ReservationID *uint `json:"reserva_id"`
}

func (in *orderIn) input() service.OrderInput {
	return service.OrderInput{
		MenuID:        in.MenuID,
		Quantity:      in.Quantity,
		RestaurantID:  in.RestaurantID,
		ReservationID: in.ReservationID,
	}
}

func (h *OrderHandler) MountAPI(r ez.Routes) {
	ez.RegisterAction(r.Auth, ez.Action[orderIn, *domain.Order]{
		Method:  http.MethodPost,
		Path:    "/orders",
		Binder:  ez.BindJSON,
		Status:  http.StatusCreated,
		Message: "Order created",
		Key:     "order",
		Handler: func(c *gin.Context, in *orderIn) (*domain.Order, error) {
			return h.svc.Create(c.Request.Context(), mdw.PrincipalFrom(c), in.input())
		},
	})

	ez.RegisterAction(r.Auth, ez.Action[ez.PageQuery, resp.Page[domain.Order]]{
		Method: http.MethodGet,
		Path:   "/orders",
		Binder: ez.BindQuery,
		Key:    "orders",
		Handler: func(c *gin.Context, in *ez.PageQuery) (resp.Page[domain.Order], error) {
			w := in.Window()
			items, total, err := h.svc.Mine(c.Request.Context(), mdw.PrincipalFrom(c), w)
			return resp.NewPage(items, total, w.Offset, w.Limit), err
		},
	})

	ez.RegisterAction(r.Auth, ez.Action[struct{}, *domain.Order]{
		Method: http.MethodGet,
		Path:   "/orders/:id",
		Binder: ez.BindNone,
		Key:    "order",
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Order, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			return h.svc.Get(c.Request.Context(), mdw.PrincipalFrom(c), id)
		},
	})

	ez.RegisterAction(r.Auth, ez.Action[orderIn, *domain.Order]{
		Method:  http.MethodPut,
		Path:    "/orders/:id",
		Binder:  ez.BindJSON,
		Message: "Order updated",
		Key:     "order",
		Handler: func(c *gin.Context, in *orderIn) (*domain.Order, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			return h.svc.Update(c.Request.Context(), mdw.PrincipalFrom(c), id, in.input())
		},
	})

	ez.RegisterAction(r.Auth, ez.Action[struct{}, struct{}]{
		Method:  http.MethodDelete,
		Path:    "/orders/:id",
		Binder:  ez.BindNone,
		Message: "Order deleted",
		Handler: func(c *gin.Context, _ *struct{}) (struct{}, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return struct{}{}, err
			}
			return struct{}{}, h.svc.Delete(c.Request.Context(), mdw.PrincipalFrom(c), id)
		},
	})
}
