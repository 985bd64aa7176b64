package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-api/internal/domain"
	"restaurant-api/internal/service"
	"restaurant-api/internal/transport/http/ez"
	mdw "restaurant-api/internal/transport/http/middleware"
)

type RestaurantHandler struct{ svc *service.RestaurantService }

func NewRestaurantHandler(svc *service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{svc: svc}
}

type restaurantIn struct {
	Name    string `json:"nombre"    binding:"required,max=255"`
	Address string `json:"direccion" binding:"required,max=255"`
}

func (in *restaurantIn) input() service.RestaurantInput {
	return service.RestaurantInput{Name: in.Name, Address: in.Address}
}

func (h *RestaurantHandler) MountAPI(r ez.Routes) {
	ez.RegisterAction(r.Public, ez.Action[struct{}, []domain.Restaurant]{
		Method: http.MethodGet,
		Path:   "/restaurants",
		Binder: ez.BindNone,
		Key:    "restaurants",
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Restaurant, error) {
			return h.svc.List(c.Request.Context())
		},
	})

	ez.RegisterAction(r.Public, ez.Action[struct{}, *domain.Restaurant]{
		Method: http.MethodGet,
		Path:   "/restaurants/:id",
		Binder: ez.BindNone,
		Key:    "restaurant",
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Restaurant, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			return h.svc.Get(c.Request.Context(), id)
		},
	})

	ez.RegisterAction(r.Auth, ez.Action[restaurantIn, *domain.Restaurant]{
		Method:  http.MethodPost,
		Path:    "/restaurants",
		Binder:  ez.BindJSON,
		Status:  http.StatusCreated,
		Message: "Restaurant created",
		Key:     "restaurant",
		Handler: func(c *gin.Context, in *restaurantIn) (*domain.Restaurant, error) {
			return h.svc.Create(c.Request.Context(), mdw.PrincipalFrom(c), in.input())
		},
	})

	ez.RegisterAction(r.Auth, ez.Action[restaurantIn, *domain.Restaurant]{
		Method:  http.MethodPut,
		Path:    "/restaurants/:id",
		Binder:  ez.BindJSON,
		Message: "Restaurant updated",
		Key:     "restaurant",
		Handler: func(c *gin.Context, in *restaurantIn) (*domain.Restaurant, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			return h.svc.Update(c.Request.Context(), mdw.PrincipalFrom(c), id, in.input())
		},
	})

	ez.RegisterAction(r.Auth, ez.Action[struct{}, struct{}]{
		Method:  http.MethodDelete,
		Path:    "/restaurants/:id",
		Binder:  ez.BindNone,
		Message: "Restaurant deleted",
		Handler: func(c *gin.Context, _ *struct{}) (struct{}, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return struct{}{}, err
			}
			return struct{}{}, h.svc.Delete(c.Request.Context(), mdw.PrincipalFrom(c), id)
		},
	})
}
