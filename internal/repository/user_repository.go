package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/flushfinder/flushfinder/internal/model"
)

// ErrUserNotFound is returned when no users row exists for an identifier.
var ErrUserNotFound = errors.New("user not found")

// UserRepo encapsulates queries against the `users` table.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo constructs a UserRepo with the provided DB handle.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Upsert registers a reviewer identity. The insert is a no-op when the id
// already exists: the stored display name is kept (first writer wins) and
// no error is raised, so two concurrent submissions under the same derived
// identifier both succeed.
func (r *UserRepo) Upsert(ctx context.Context, id, username string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username) VALUES (?, ?) ON DUPLICATE KEY UPDATE id = id`,
		id, username)
	return err
}

// GetByID fetches a user by identifier.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username FROM users WHERE id = ? LIMIT 1`, id).
		Scan(&u.ID, &u.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
