// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// User represents a registered author. Users are immutable after
// registration; there is no edit or delete path.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Identity is the per-request resolved identity of a caller. It carries
// only the claims needed for authorization decisions, never the full user
// record.
type Identity struct {
	UserID   int64
	Username string
}

// UserRepository defines the port for user persistence operations. Reads
// are by username only: token claims carry the identity, so nothing ever
// needs to rehydrate a user record from an ID.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
	Insert(ctx context.Context, username, passwordHash string) (*User, error)
}
