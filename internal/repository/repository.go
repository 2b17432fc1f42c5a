package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Csprier/marvel-server/internal/models"
)

// ErrDuplicateUsername is returned when an insert or update collides
// with the unique username index. The pre-emptive lookup and the
// constraint violation both surface as this error.
var ErrDuplicateUsername = errors.New("the username already exists")

// Users is the user directory contract consumed by the service layer.
// Lookup methods return (nil, nil) when no record matches.
type Users interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Insert(ctx context.Context, u models.User) (*models.User, error)
	UpdateByID(ctx context.Context, id string, upd UserUpdate) (*models.User, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

// UserUpdate is a partial user mutation. Nil fields are left untouched.
type UserUpdate struct {
	Username       *string
	Email          *string
	PasswordDigest *string
}

type Repository struct {
	Users Users
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserSQLite(db),
	}
}
