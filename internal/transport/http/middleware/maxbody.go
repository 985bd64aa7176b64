package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	resp "restaurant-api/internal/transport/http/response"
)

// MaxBodyBytes caps the request body. Handlers that hit the cap while binding
// answer 413 themselves; a handler that only records the error with c.Error
// and writes nothing gets the 413 here.
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
		if c.Writer.Written() {
			return
		}
		var mbe *http.MaxBytesError
		for _, e := range c.Errors {
			if errors.As(e.Err, &mbe) {
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, resp.Error(http.StatusRequestEntityTooLarge, ""))
				return
			}
		}
	}
}
