package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Csprier/marvel-server/internal/models"
)

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserSQLite)(nil)

const (
	insertUserSQL = `INSERT INTO users (id, username, email, password_digest, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`
	selectUserByUsernameSQL = `SELECT id, username, email, password_digest, created_at, updated_at FROM users WHERE username = ?`
	selectUserByIDSQL       = `SELECT id, username, email, password_digest, created_at, updated_at FROM users WHERE id = ?`
	selectAllUsersSQL       = `SELECT id, username, email, password_digest, created_at, updated_at FROM users ORDER BY created_at ASC`
	deleteUserByIDSQL       = `DELETE FROM users WHERE id = ?`
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// isUniqueViolation reports whether err is SQLite's unique-constraint
// failure on the username index. database/sql exposes no typed error
// for it, so the driver message is the only signal.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Insert persists a new user with a freshly generated id and returns
// the stored record. A username collision maps to ErrDuplicateUsername.
func (r *UserSQLite) Insert(ctx context.Context, u models.User) (*models.User, error) {
	u.ID = uuid.NewString()
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, insertUserSQL,
		u.ID,
		u.Username,
		u.Email,
		u.PasswordDigest,
		u.CreatedAt.Format(sqliteTimeLayout),
		u.UpdatedAt.Format(sqliteTimeLayout),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	return &u, nil
}

// FindByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserSQLite) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := r.scanOne(r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username))
	if err != nil {
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return u, nil
}

// FindByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserSQLite) FindByID(ctx context.Context, id string) (*models.User, error) {
	u, err := r.scanOne(r.db.QueryRowContext(ctx, selectUserByIDSQL, id))
	if err != nil {
		return nil, fmt.Errorf("select user by id %q: %w", id, err)
	}
	return u, nil
}

// List returns all users ordered by creation time.
func (r *UserSQLite) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, selectAllUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var users []models.User
	for rows.Next() {
		var (
			u                  models.User
			createdS, updatedS string
		)
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordDigest, &createdS, &updatedS); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		u.CreatedAt, _ = time.Parse(sqliteTimeLayout, createdS)
		u.UpdatedAt, _ = time.Parse(sqliteTimeLayout, updatedS)
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}
	return users, nil
}

// UpdateByID applies a partial update and returns the fresh record.
// Returns (nil, nil) when id matches nothing; a conflicting username
// maps to ErrDuplicateUsername.
func (r *UserSQLite) UpdateByID(ctx context.Context, id string, upd UserUpdate) (*models.User, error) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if upd.Username != nil {
		sets = append(sets, "username = ?")
		args = append(args, *upd.Username)
	}
	if upd.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *upd.Email)
	}
	if upd.PasswordDigest != nil {
		sets = append(sets, "password_digest = ?")
		args = append(args, *upd.PasswordDigest)
	}

	if len(sets) > 0 {
		sets = append(sets, "updated_at = ?")
		args = append(args, time.Now().UTC().Format(sqliteTimeLayout))
		args = append(args, id)

		q := "UPDATE users SET " + strings.Join(sets, ", ") + " WHERE id = ?"
		res, err := r.db.ExecContext(ctx, q, args...)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, ErrDuplicateUsername
			}
			return nil, fmt.Errorf("update user %q: %w", id, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return nil, nil
		}
	}

	return r.FindByID(ctx, id)
}

// DeleteByID removes a user. True means a record was actually deleted.
func (r *UserSQLite) DeleteByID(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteUserByIDSQL, id)
	if err != nil {
		return false, fmt.Errorf("delete user %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for delete %q: %w", id, err)
	}
	return n > 0, nil
}

// scanOne scans a single user row, translating ErrNoRows into (nil, nil).
func (r *UserSQLite) scanOne(row *sql.Row) (*models.User, error) {
	var (
		u                  models.User
		createdS, updatedS string
	)
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordDigest, &createdS, &updatedS)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	u.CreatedAt, _ = time.Parse(sqliteTimeLayout, createdS)
	u.UpdatedAt, _ = time.Parse(sqliteTimeLayout, updatedS)
	return &u, nil
}
