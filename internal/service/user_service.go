package service

import (
	"context"

	"github.com/Csprier/marvel-server/internal/models"
	"github.com/Csprier/marvel-server/internal/repository"
	"github.com/Csprier/marvel-server/internal/validation"
)

// UserService handles account creation, mutation and reads.
type UserService struct {
	users repository.Users
}

func NewUserService(users repository.Users) *UserService {
	return &UserService{users: users}
}

// Create validates the payload, hashes the password and persists the
// record. The duplicate pre-check is only an optimization; the unique
// index is the source of truth, and both paths return the same error.
func (s *UserService) Create(ctx context.Context, payload map[string]any) (models.PublicUser, error) {
	in, err := validation.ValidateCreate(payload)
	if err != nil {
		return models.PublicUser{}, err
	}

	existing, err := s.users.FindByUsername(ctx, in.Username)
	if err != nil {
		return models.PublicUser{}, err
	}
	if existing != nil {
		return models.PublicUser{}, repository.ErrDuplicateUsername
	}

	digest, err := hashPassword(in.Password)
	if err != nil {
		return models.PublicUser{}, err
	}

	created, err := s.users.Insert(ctx, models.User{
		Username:       in.Username,
		Email:          in.Email,
		PasswordDigest: digest,
	})
	if err != nil {
		return models.PublicUser{}, err
	}
	return created.Public(), nil
}

// Update applies a validated partial mutation. A present password is
// re-hashed; absent fields are left untouched.
func (s *UserService) Update(ctx context.Context, id string, payload map[string]any) (models.PublicUser, error) {
	in, err := validation.ValidateUpdate(payload)
	if err != nil {
		return models.PublicUser{}, err
	}

	upd := repository.UserUpdate{
		Username: in.Username,
		Email:    in.Email,
	}
	if in.Password != nil {
		digest, err := hashPassword(*in.Password)
		if err != nil {
			return models.PublicUser{}, err
		}
		upd.PasswordDigest = &digest
	}

	updated, err := s.users.UpdateByID(ctx, id, upd)
	if err != nil {
		return models.PublicUser{}, err
	}
	if updated == nil {
		return models.PublicUser{}, ErrUserNotFound
	}
	return updated.Public(), nil
}

// GetByID returns the public projection of one user.
func (s *UserService) GetByID(ctx context.Context, id string) (models.PublicUser, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return models.PublicUser{}, err
	}
	if u == nil {
		return models.PublicUser{}, ErrUserNotFound
	}
	return u.Public(), nil
}

// List returns the public projections of all users.
func (s *UserService) List(ctx context.Context) ([]models.PublicUser, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out, nil
}

// Delete removes a user. True means a record was actually removed.
func (s *UserService) Delete(ctx context.Context, id string) (bool, error) {
	return s.users.DeleteByID(ctx, id)
}
