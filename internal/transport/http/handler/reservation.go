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

type ReservationHandler struct{ svc *service.ReservationService }

func NewReservationHandler(svc *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

type reservationIn struct {
	Date         string `json:"fecha"          binding:"required,datetime=2006-01-02"`
	Time         string `json:"hora"           binding:"required,datetime=15:04"`
	RestaurantID uint   `json:"restaurante_id" binding:"required"`
}

func (h *ReservationHandler) MountAPI(r ez.Routes) {
	ez.RegisterAction(r.Auth, ez.Action[reservationIn, *domain.Reservation]{
		Method:  http.MethodPost,
		Path:    "/reservations",
		Binder:  ez.BindJSON,
		Status:  http.StatusCreated,
		Message: "Reservation created",
		Key:     "reservation",
		Handler: func(c *gin.Context, in *reservationIn) (*domain.Reservation, error) {
			return h.svc.Create(c.Request.Context(), mdw.PrincipalFrom(c), service.ReservationInput{
				Date: in.Date, Time: in.Time, RestaurantID: in.RestaurantID,
			})
		},
	})

	ez.RegisterAction(r.Auth, ez.Action[ez.PageQuery, resp.Page[domain.Reservation]]{
		Method: http.MethodGet,
		Path:   "/reservations",
		Binder: ez.BindQuery,
		Key:    "reservations",
		Handler: func(c *gin.Context, in *ez.PageQuery) (resp.Page[domain.Reservation], error) {
			w := in.Window()
			items, total, err := h.svc.Mine(c.Request.Context(), mdw.PrincipalFrom(c), w)
			return resp.NewPage(items, total, w.Offset, w.Limit), err
		},
	})

	ez.RegisterAction(r.Auth, ez.Action[struct{}, *domain.Reservation]{
		Method: http.MethodGet,
		Path:   "/reservations/:id",
		Binder: ez.BindNone,
		Key:    "reservation",
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Reservation, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			return h.svc.Get(c.Request.Context(), mdw.PrincipalFrom(c), id)
		},
	})

	ez.RegisterAction(r.Auth, ez.Action[struct{}, *domain.Reservation]{
		Method:  http.MethodDelete,
		Path:    "/reservations/:id",
		Binder:  ez.BindNone,
		Message: "Reservation cancelled",
		Key:     "reservation",
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Reservation, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			return h.svc.Cancel(c.Request.Context(), mdw.PrincipalFrom(c), id)
		},
	})
}
