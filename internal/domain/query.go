package domain

// Page is an offset/limit window. Limit is clamped by Normalize.
type Page struct {
	Offset int
	Limit  int
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

func (p Page) Normalize() Page {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 || p.Limit > MaxPageSize {
		p.Limit = DefaultPageSize
	}
	return p
}

// Filter narrows owned-resource listings. Zero fields match everything.
type Filter struct {
	UserID       uint
	RestaurantID uint
}
