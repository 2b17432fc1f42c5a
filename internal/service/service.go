package service

import (
	"context"
	"errors"

	"github.com/Csprier/marvel-server/internal/models"
	"github.com/Csprier/marvel-server/internal/repository"
)

// Domain errors for account and auth flows.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrHashing            = errors.New("failed to hash password")
	ErrSigningKeyMissing  = errors.New("token signing key is not configured")
)

// Users exposes account mutations and reads. Payloads arrive as raw
// JSON objects so the validation rules can inspect presence and types
// before anything touches storage.
type Users interface {
	Create(ctx context.Context, payload map[string]any) (models.PublicUser, error)
	Update(ctx context.Context, id string, payload map[string]any) (models.PublicUser, error)
	GetByID(ctx context.Context, id string) (models.PublicUser, error)
	List(ctx context.Context) ([]models.PublicUser, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Authorization exposes credential checks and the token lifecycle.
type Authorization interface {
	Login(ctx context.Context, username, password string) (string, error)
	Refresh(ctx context.Context, token string) (string, error)
	ParseToken(token string) (*Claims, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Users
	Authorization
}

// NewService wires the repository layer and the token service into
// concrete services.
func NewService(repos *repository.Repository, tokens *TokenService) *Service {
	return &Service{
		Users:         NewUserService(repos.Users),
		Authorization: NewAuthService(repos.Users, tokens),
	}
}
