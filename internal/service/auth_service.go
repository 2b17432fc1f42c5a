package service

import (
	"context"

	"github.com/Csprier/marvel-server/internal/repository"
)

// AuthService handles credential checks and the token lifecycle.
type AuthService struct {
	users  repository.Users
	tokens *TokenService
}

func NewAuthService(users repository.Users, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login validates credentials and returns a signed token. An unknown
// username and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if u == nil || !verifyPassword(u.PasswordDigest, password) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(*u)
}

// Refresh verifies the presented token and issues a fresh one. The
// user is re-read from the directory by the id in the claims; the
// projection embedded at issuance time is never trusted for this.
func (s *AuthService) Refresh(ctx context.Context, token string) (string, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return "", err
	}

	u, err := s.users.FindByID(ctx, claims.User.ID)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}
	return s.tokens.Issue(*u)
}

// ParseToken verifies a bearer token for the request middleware.
func (s *AuthService) ParseToken(token string) (*Claims, error) {
	return s.tokens.Verify(token)
}
