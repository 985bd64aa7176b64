package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"restaurant-api/internal/core/server"
	"restaurant-api/internal/domain"
	"restaurant-api/internal/transport/http/handler"
	mdw "restaurant-api/internal/transport/http/middleware"
)

// NewAdminEngine builds the admin console. Everything under /admin/v1
// requires an admin token.
func NewAdminEngine(l *zap.Logger, d Deps, o Options) *gin.Engine {
	r := server.NewRouter(l)
	r.Use(o.chain(l)...)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	var reg Registry
	reg.Register(handler.NewAdminHandler(d.services()))

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(d.JWT, domain.RoleAdmin))
	reg.MountAdmin(admin)

	return r
}
