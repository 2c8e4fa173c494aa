// Package service holds the business rules between handlers and repos.
package service

import (
	"context"
	"strings"

	"store-ratings/internal/apperr"
	"store-ratings/internal/core/auth"
	"store-ratings/internal/domain"
	"store-ratings/internal/repo"
	"store-ratings/pkg/utils"
)

type AuthService struct {
	users *repo.UserRepo
	jwter *auth.JWTer
}

func NewAuthService(users *repo.UserRepo, jwter *auth.JWTer) *AuthService {
	return &AuthService{users: users, jwter: jwter}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Address  *string
}

// Register creates a normal_user account and issues its first token.
// Self-registration can never pick a role.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, string, error) {
	var addrCheck *apperr.FieldError
	if in.Address != nil {
		addrCheck = domain.CheckAddress(*in.Address)
	}
	if err := domain.Collect(
		domain.CheckName(in.Name),
		domain.CheckEmail(in.Email),
		domain.CheckPassword(in.Password),
		addrCheck,
	); err != nil {
		return nil, "", err
	}

	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, "", apperr.Internal("Server error during registration", err)
	}
	if existing != nil {
		return nil, "", apperr.Conflict("Email already in use")
	}

	u := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: utils.HashPassword(in.Password),
		Address:      in.Address,
		Role:         domain.RoleNormalUser,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if isDupKey(err) {
			return nil, "", apperr.Conflict("Email already in use")
		}
		return nil, "", apperr.Internal("Server error during registration", err)
	}

	tok, err := s.jwter.Issue(u)
	if err != nil {
		return nil, "", apperr.Internal("Server error during registration", err)
	}
	return u, tok, nil
}

// Login verifies credentials. Unknown email and wrong password produce the
// same message so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", apperr.Internal("Server error during login", err)
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return nil, "", apperr.Unauthorized("Invalid credentials")
	}
	tok, err := s.jwter.Issue(u)
	if err != nil {
		return nil, "", apperr.Internal("Server error during login", err)
	}
	return u, tok, nil
}

func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
