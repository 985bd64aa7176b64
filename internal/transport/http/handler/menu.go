package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-api/internal/domain"
	"restaurant-api/internal/service"
	"restaurant-api/internal/transport/http/ez"
	mdw "restaurant-api/internal/transport/http/middleware"
)

type MenuHandler struct{ svc *service.MenuService }

func NewMenuHandler(svc *service.MenuService) *MenuHandler { return &MenuHandler{svc: svc} }

type menuIn struct {
	Dish  string  `json:"platillo" binding:"required,max=255"`
	Price float64 `json:"precio"   binding:"required,gt=0"`
}

func (in *menuIn) input() service.MenuInput {
	return service.MenuInput{Dish: in.Dish, Price: in.Price}
}

func (h *MenuHandler) MountAPI(r ez.Routes) {
	ez.RegisterAction(r.Auth, ez.Action[menuIn, *domain.Menu]{
		Method:  http.MethodPost,
		Path:    "/restaurants/:id/menus",
		Binder:  ez.BindJSON,
		Status:  http.StatusCreated,
		Message: "Menu created",
		Key:     "menu",
		Handler: func(c *gin.Context, in *menuIn) (*domain.Menu, error) {
			rid, err := ez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			return h.svc.Create(c.Request.Context(), mdw.PrincipalFrom(c), rid, in.input())
		},
	})

	ez.RegisterAction(r.Public, ez.Action[struct{}, []domain.Menu]{
		Method: http.MethodGet,
		Path:   "/restaurants/:id/menus",
		Binder: ez.BindNone,
		Key:    "menus",
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Menu, error) {
			rid, err := ez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			return h.svc.ByRestaurant(c.Request.Context(), rid)
		},
	})

	ez.RegisterAction(r.Public, ez.Action[struct{}, *domain.Menu]{
		Method: http.MethodGet,
		Path:   "/menus/:id",
		Binder: ez.BindNone,
		Key:    "menu",
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Menu, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			return h.svc.Get(c.Request.Context(), id)
		},
	})

	ez.RegisterAction(r.Auth, ez.Action[menuIn, *domain.Menu]{
		Method:  http.MethodPut,
		Path:    "/menus/:id",
		Binder:  ez.BindJSON,
		Message: "Menu updated",
		Key:     "menu",
		Handler: func(c *gin.Context, in *menuIn) (*domain.Menu, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			return h.svc.Update(c.Request.Context(), mdw.PrincipalFrom(c), id, in.input())
		},
	})

	ez.RegisterAction(r.Auth, ez.Action[struct{}, struct{}]{
		Method:  http.MethodDelete,
		Path:    "/menus/:id",
		Binder:  ez.BindNone,
		Message: "Menu deleted",
		Handler: func(c *gin.Context, _ *struct{}) (struct{}, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return struct{}{}, err
			}
			return struct{}{}, h.svc.Delete(c.Request.Context(), mdw.PrincipalFrom(c), id)
		},
	})
}
