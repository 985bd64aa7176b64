package service

import (
	"context"
	"errors"

	"restaurant-api/internal/domain"
)

type UserService struct{ users domain.UserRepository }

func NewUserService(users domain.UserRepository) *UserService { return &UserService{users: users} }

func (s *UserService) Me(ctx context.Context, p domain.Principal) (*domain.User, error) {
	return s.find(ctx, p.ID)
}

type UserUpdate struct {
	Email string
	Role  string
}

// Update changes email and/or role. Owners may edit their own email; only an
// admin may change a role.
func (s *UserService) Update(ctx context.Context, p domain.Principal, id uint, in UserUpdate) (*domain.User, error) {
	u, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanAccess(u.ID) {
		return nil, domain.Forbidden("not allowed to modify this user")
	}

	fields := map[string]any{}
	if email := normalizeEmail(in.Email); email != "" && email != u.Email {
		fields["email"] = email
	}
	if in.Role != "" {
		role, err := domain.ParseRole(in.Role)
		if err != nil {
			return nil, err
		}
		if role != u.Role {
			if !p.IsAdmin() {
				return nil, domain.Forbidden("only an admin can change roles")
			}
			fields["role"] = role
		}
	}
	if len(fields) == 0 {
		return u, nil
	}

	ok, err := s.users.Update(ctx, id, fields)
	if errors.Is(err, domain.ErrDuplicateKey) {
		return nil, domain.Conflict("email already in use")
	}
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NotFound("user not found")
	}
	if v, ok := fields["email"]; ok {
		u.Email = v.(string)
	}
	if v, ok := fields["role"]; ok {
		u.Role = v.(domain.Role)
	}
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, p domain.Principal, id uint) error {
	u, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if !p.CanAccess(u.ID) {
		return domain.Forbidden("not allowed to delete this user")
	}
	ok, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound("user not found")
	}
	return nil
}

// Search lists users for the admin console.
func (s *UserService) Search(ctx context.Context, p domain.Principal, q string, page domain.Page) ([]domain.User, int64, error) {
	if !p.IsAdmin() {
		return nil, 0, domain.Forbidden("admin role required")
	}
	return s.users.Search(ctx, q, page)
}

func (s *UserService) find(ctx context.Context, id uint) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NotFound("user not found")
	}
	return u, nil
}
