package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-api/internal/domain"
	"restaurant-api/internal/service"
	"restaurant-api/internal/transport/http/ez"
)

type AuthHandler struct{ svc *service.AuthService }

func NewAuthHandler(svc *service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Priority mounts the auth routes first.
func (h *AuthHandler) Priority() int { return 10 }

type registerIn struct {
	Email    string `json:"email"    binding:"required,email,max=191"`
	Password string `json:"password" binding:"required,max=72"`
	Role     string `json:"role"`
}

type loginIn struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) MountAPI(r ez.Routes) {
	ez.RegisterAction(r.Public, ez.Action[registerIn, *domain.User]{
		Method:  http.MethodPost,
		Path:    "/auth/register",
		Binder:  ez.BindJSON,
		Status:  http.StatusCreated,
		Message: "User registered successfully",
		Key:     "user",
		Handler: func(c *gin.Context, in *registerIn) (*domain.User, error) {
			return h.svc.Register(c.Request.Context(), service.RegisterInput{
				Email: in.Email, Password: in.Password, Role: in.Role,
			})
		},
	})

	ez.RegisterAction(r.Public, ez.Action[loginIn, string]{
		Method:  http.MethodPost,
		Path:    "/auth/login",
		Binder:  ez.BindJSON,
		Message: "Login successful",
		Key:     "token",
		Handler: func(c *gin.Context, in *loginIn) (string, error) {
			return h.svc.Login(c.Request.Context(), in.Email, in.Password)
		},
	})
}
