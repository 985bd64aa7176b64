package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"restaurant-api/internal/core/auth"
	"restaurant-api/internal/core/cache"
	"restaurant-api/internal/core/config"
	"restaurant-api/internal/core/server"
	"restaurant-api/internal/service"
	"restaurant-api/internal/transport/http/ez"
	"restaurant-api/internal/transport/http/handler"
	mdw "restaurant-api/internal/transport/http/middleware"
)

// Deps are the process-wide resources the engines are built from.
type Deps struct {
	DB               *gorm.DB
	Cache            *cache.Cache // nil disables caching
	JWT              *auth.JWTer
	AllowAdminSignup bool
}

func (d Deps) services() *service.Services {
	return service.New(service.Deps{
		DB:               d.DB,
		Cache:            d.Cache,
		Tokens:           d.JWT,
		AllowAdminSignup: d.AllowAdminSignup,
	})
}

// Options tune the middleware chain.
type Options struct {
	RPS          float64
	Burst        int
	PerIP        bool
	MaxInFlight  int64
	MaxBodyBytes int64
	Timeout      time.Duration
}

func OptionsFrom(l config.Limits) Options {
	return Options{
		RPS:          l.RPS,
		Burst:        l.Burst,
		PerIP:        l.PerIP,
		MaxInFlight:  l.MaxInFlight,
		MaxBodyBytes: l.MaxBodyBytes,
		Timeout:      time.Duration(l.TimeoutSec) * time.Second,
	}
}

// chain builds the middleware stack. Zero-valued limits are left out.
func (o Options) chain(l *zap.Logger) []gin.HandlerFunc {
	chain := []gin.HandlerFunc{mdw.RequestID()}
	if o.RPS > 0 {
		limit := mdw.RateLimit
		if o.PerIP {
			limit = mdw.RateLimitPerIP
		}
		chain = append(chain, limit(rate.Limit(o.RPS), o.Burst))
	}
	if o.MaxInFlight > 0 {
		chain = append(chain, mdw.ConcurrencyLimit(o.MaxInFlight))
	}
	if o.MaxBodyBytes > 0 {
		chain = append(chain, mdw.MaxBodyBytes(o.MaxBodyBytes))
	}
	if o.Timeout > 0 {
		chain = append(chain, mdw.Timeout(o.Timeout))
	}
	return append(chain,
		mdw.SimpleRecovery(l),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)
}

// NewAPIEngine builds the public API: auth, users, restaurants, menus,
// reservations and orders, plus /health and /metrics.
func NewAPIEngine(l *zap.Logger, d Deps, o Options) *gin.Engine {
	r := server.NewRouter(l)
	r.Use(o.chain(l)...)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s := d.services()
	var reg Registry
	reg.Register(
		handler.NewAuthHandler(s.Auth),
		handler.NewUserHandler(s.Users),
		handler.NewRestaurantHandler(s.Restaurants),
		handler.NewMenuHandler(s.Menus),
		handler.NewReservationHandler(s.Reservations),
		handler.NewOrderHandler(s.Orders),
	)

	authed := r.Group("")
	authed.Use(mdw.AuthJWT(d.JWT, ""))
	reg.MountAPI(ez.Routes{Public: &r.RouterGroup, Auth: authed})

	return r
}
