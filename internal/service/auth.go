package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"restaurant-api/internal/domain"
	"restaurant-api/pkg/utils"
)

var authAttempts = prometheus.NewCounterVec(
	prometheus.CounterOpts{Name: "auth_attempts_total", Help: "Registration and login attempts by outcome"},
	[]string{"op", "result"},
)

func init() { prometheus.MustRegister(authAttempts) }

type AuthService struct {
	users            domain.UserRepository
	tokens           TokenIssuer
	allowAdminSignup bool
}

func NewAuthService(users domain.UserRepository, tokens TokenIssuer, allowAdminSignup bool) *AuthService {
	return &AuthService{users: users, tokens: tokens, allowAdminSignup: allowAdminSignup}
}

type RegisterInput struct {
	Email    string
	Password string
	Role     string
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (u *domain.User, err error) {
	defer func() { authAttempts.WithLabelValues("register", outcome(err)).Inc() }()

	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}
	if role == domain.RoleAdmin && !s.allowAdminSignup {
		return nil, domain.Forbidden("admin accounts cannot be self-registered")
	}
	email := normalizeEmail(in.Email)
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflict("user already exists")
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u = &domain.User{Email: email, PasswordHash: hash, Role: role}
	if err := s.users.Create(ctx, u); err != nil {
		// lost a race with a concurrent registration of the same email
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.Conflict("user already exists")
		}
		return nil, err
	}
	return u, nil
}

// Login checks the credentials and returns a signed access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (tok string, err error) {
	defer func() { authAttempts.WithLabelValues("login", outcome(err)).Inc() }()

	u, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", domain.NotFound("user not found")
	}
	if !utils.CheckPassword(password, u.PasswordHash) {
		return "", domain.Unauthorized("wrong password")
	}
	tok, err = s.tokens.Issue(u.ID, string(u.Role))
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return tok, nil
}

func normalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func outcome(err error) string {
	switch domain.KindOf(err) {
	case 0:
		if err != nil {
			return "error"
		}
		return "ok"
	case domain.KindConflict:
		return "conflict"
	case domain.KindNotFound:
		return "not_found"
	case domain.KindUnauthorized:
		return "unauthorized"
	default:
		return "rejected"
	}
}
