// Package ez registers typed handlers on gin groups: bind the input, run the
// handler, then map the result or error onto the response envelope.
package ez

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"restaurant-api/internal/domain"
	resp "restaurant-api/internal/transport/http/response"
)

type Binder string

const (
	BindJSON  Binder = "json"
	BindQuery Binder = "query"
	BindNone  Binder = "none" // handler reads c.Param itself
)

// Action describes one endpoint. I is the bound input, O the payload placed
// under Key in the envelope.
type Action[I any, O any] struct {
	Method  string
	Path    string
	Binder  Binder
	Status  int    // success status, 200 when zero
	Message string // success message
	Key     string // payload key; empty sends the message only
	Handler func(c *gin.Context, in *I) (O, error)
}

// Routes are the two groups API handlers mount on.
type Routes struct {
	Public *gin.RouterGroup
	Auth   *gin.RouterGroup
}

func RegisterAction[I any, O any](g *gin.RouterGroup, a Action[I, O]) {
	status := a.Status
	if status == 0 {
		status = http.StatusOK
	}
	msg := a.Message
	if msg == "" {
		msg = resp.CodeMsgMap[status]
	}

	h := func(c *gin.Context) {
		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		}
		if bindErr != nil {
			Fail(c, bindError(bindErr))
			return
		}

		out, err := a.Handler(c, &in)
		if err != nil {
			Fail(c, err)
			return
		}
		c.JSON(status, resp.Message(msg).With(a.Key, out))
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		g.GET(a.Path, h)
	case http.MethodPut:
		g.PUT(a.Path, h)
	case http.MethodDelete:
		g.DELETE(a.Path, h)
	default:
		g.POST(a.Path, h)
	}
}

// Fail writes the error response for err. Expected errors carry their own
// message; anything else is attached to the context for the access log and
// answered with a bare 500.
func Fail(c *gin.Context, err error) {
	code := StatusOf(err)
	var de *domain.Error
	if errors.As(err, &de) {
		c.AbortWithStatusJSON(code, resp.Error(code, de.Msg))
		return
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(code, resp.Error(code, ""))
}

func StatusOf(err error) int {
	switch domain.KindOf(err) {
	case domain.KindInvalid, domain.KindConflict:
		return http.StatusBadRequest
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	}
	var mbe *http.MaxBytesError
	switch {
	case errors.As(err, &mbe):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func bindError(err error) error {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return err
	}
	return domain.Invalid("invalid request: " + err.Error())
}
