package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-api/internal/domain"
	"restaurant-api/internal/service"
	"restaurant-api/internal/transport/http/ez"
	mdw "restaurant-api/internal/transport/http/middleware"
)

type UserHandler struct{ svc *service.UserService }

func NewUserHandler(svc *service.UserService) *UserHandler { return &UserHandler{svc: svc} }

type userUpdateIn struct {
	Email string `json:"email" binding:"omitempty,email,max=191"`
	Role  string `json:"role"`
}

func (h *UserHandler) MountAPI(r ez.Routes) {
	ez.RegisterAction(r.Auth, ez.Action[struct{}, *domain.User]{
		Method: http.MethodGet,
		Path:   "/users/me",
		Binder: ez.BindNone,
		Key:    "user",
		Handler: func(c *gin.Context, _ *struct{}) (*domain.User, error) {
			return h.svc.Me(c.Request.Context(), mdw.PrincipalFrom(c))
		},
	})

	ez.RegisterAction(r.Auth, ez.Action[userUpdateIn, *domain.User]{
		Method:  http.MethodPut,
		Path:    "/users/:id",
		Binder:  ez.BindJSON,
		Message: "User updated",
		Key:     "user",
		Handler: func(c *gin.Context, in *userUpdateIn) (*domain.User, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			return h.svc.Update(c.Request.Context(), mdw.PrincipalFrom(c), id, service.UserUpdate{
				Email: in.Email, Role: in.Role,
			})
		},
	})

	ez.RegisterAction(r.Auth, ez.Action[struct{}, struct{}]{
		Method:  http.MethodDelete,
		Path:    "/users/:id",
		Binder:  ez.BindNone,
		Message: "User deleted",
		Handler: func(c *gin.Context, _ *struct{}) (struct{}, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return struct{}{}, err
			}
			return struct{}{}, h.svc.Delete(c.Request.Context(), mdw.PrincipalFrom(c), id)
		},
	})
}
