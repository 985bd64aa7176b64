package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"restaurant-api/internal/domain"
)

// crud holds the statements every table shares. Missing rows are reported as
// (nil, nil) and unique violations as domain.ErrDuplicateKey.
type crud[T any] struct{ db *gorm.DB }

func (r crud[T]) Create(ctx context.Context, m *T) error {
	return translate(r.db.WithContext(ctx).Create(m).Error)
}

func (r crud[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	return r.first(ctx, "id = ?", id)
}

func (r crud[T]) first(ctx context.Context, query string, args ...any) (*T, error) {
	var m T
	err := r.db.WithContext(ctx).Where(query, args...).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Update writes fields (keyed by column) to the row with the given id and
// reports whether a row matched.
func (r crud[T]) Update(ctx context.Context, id uint, fields map[string]any) (bool, error) {
	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r crud[T]) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r crud[T]) page(ctx context.Context, q *gorm.DB, p domain.Page) ([]T, int64, error) {
	p = p.Normalize()
	q = q.WithContext(ctx).Model(new(T))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	items := make([]T, 0)
	if err := q.Order("id DESC").Offset(p.Offset).Limit(p.Limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	if isDupKey(err) {
		return domain.ErrDuplicateKey
	}
	return err
}

func isDupKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation")
}
