package ez

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"restaurant-api/internal/domain"
)

// ParamID reads a numeric path parameter. A value that cannot be an id can
// never match a row, so it is reported as not found.
func ParamID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, domain.NotFound("resource not found")
	}
	return uint(id), nil
}

// PageQuery is the page/size pagination of the caller's own listings.
type PageQuery struct {
	Page int `form:"page"`
	Size int `form:"size"`
}

func (q PageQuery) Window() domain.Page {
	page := atoiDefault(q.Page, 1)
	size := domain.Page{Limit: q.Size}.Normalize().Limit
	return domain.Page{Offset: (page - 1) * size, Limit: size}
}

// OffsetQuery is the offset/limit pagination of the admin console.
type OffsetQuery struct {
	Offset int `form:"offset"`
	Limit  int `form:"limit"`
}

func (q OffsetQuery) Window() domain.Page {
	return domain.Page{Offset: q.Offset, Limit: q.Limit}.Normalize()
}

func atoiDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
