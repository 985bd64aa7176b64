package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-api/internal/core/auth"
	"restaurant-api/internal/domain"
	resp "restaurant-api/internal/transport/http/response"
)

const KeyPrincipal = "principal"

// AuthJWT requires a valid bearer token and stores the caller's principal on
// the context. A non-empty requireRole also rejects every other role with 403.
func AuthJWT(j *auth.JWTer, requireRole domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := j.FromHeader(c.GetHeader("Authorization"))
		if errors.Is(err, auth.ErrMissingToken) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(http.StatusUnauthorized, "No token provided"))
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(http.StatusUnauthorized, "Invalid token"))
			return
		}
		p := domain.Principal{ID: claims.ID, Role: domain.Role(claims.Role)}
		if requireRole != "" && p.Role != requireRole {
			c.AbortWithStatusJSON(http.StatusForbidden, resp.Error(http.StatusForbidden, "Access denied"))
			return
		}
		c.Set(KeyPrincipal, p)
		c.Next()
	}
}

// PrincipalFrom returns the caller set by AuthJWT, or the zero principal on
// routes without it.
func PrincipalFrom(c *gin.Context) domain.Principal {
	v, _ := c.Get(KeyPrincipal)
	p, _ := v.(domain.Principal)
	return p
}
