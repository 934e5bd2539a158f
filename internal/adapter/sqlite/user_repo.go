package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"inkwell/internal/domain"

	"github.com/mattn/go-sqlite3"
)

var _ domain.UserRepository = (*Store)(nil)

// FindByUsername retrieves a user by username. Returns nil when absent.
func (s *Store) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := s.sql.QueryRowContext(ctx,
		"SELECT id, username, password_hash, created_at FROM users WHERE username = ?",
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Insert creates a new user. A UNIQUE constraint violation on the username
// column is mapped to domain.ErrUsernameTaken so registration races surface
// as a validation problem.
func (s *Store) Insert(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	now := time.Now().UTC()
	res, err := s.sql.ExecContext(ctx,
		"INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?)",
		username, passwordHash, now,
	)
	if err != nil {
		var serr sqlite3.Error
		if errors.As(err, &serr) && serr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, domain.ErrUsernameTaken
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &domain.User{ID: id, Username: username, PasswordHash: passwordHash, CreatedAt: now}, nil
}
