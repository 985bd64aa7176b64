package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"restaurant-api/internal/domain"
)

type UserRepo struct{ crud[domain.User] }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{crud[domain.User]{db: db}} }

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.first(ctx, "email = ?", email)
}

// Search pages through users, optionally filtered by an email substring.
func (r *UserRepo) Search(ctx context.Context, q string, p domain.Page) ([]domain.User, int64, error) {
	tx := r.db
	if s := strings.TrimSpace(q); s != "" {
		tx = tx.Where("email LIKE ?", "%"+s+"%")
	}
	return r.page(ctx, tx, p)
}
