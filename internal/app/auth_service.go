// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"strings"

	"inkwell/internal/domain"
	"inkwell/internal/token"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials indicates that the provided username or password
	// was incorrect. Deliberately field-agnostic: callers must not reveal
	// which of the two was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrPostNotFound indicates that the referenced post does not exist.
	ErrPostNotFound = errors.New("post not found")
	// ErrNotOwner indicates that the acting user does not own the post.
	ErrNotOwner = errors.New("not the post author")
)

// AuthService handles registration, login, and token minting.
type AuthService struct {
	users      domain.UserRepository
	codec      *token.Codec
	bcryptCost int
}

// NewAuthService creates a new authentication service. cost is the bcrypt
// cost factor; values below bcrypt.MinCost fall back to the default.
func NewAuthService(users domain.UserRepository, codec *token.Codec, cost int) *AuthService {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{users: users, codec: codec, bcryptCost: cost}
}

// Register validates the submission, creates the user, and mints a session
// token. Violations are user-correctable problems, accumulated across all
// rules so the caller can display every problem at once; err is reserved
// for store or signing failures.
func (s *AuthService) Register(ctx context.Context, username, password string) (user *domain.User, tok string, violations []string, err error) {
	username = strings.TrimSpace(username)

	violations = fieldViolations(registerInput{Username: username, Password: password})
	if username != "" {
		existing, lookupErr := s.users.FindByUsername(ctx, username)
		if lookupErr != nil {
			return nil, "", nil, lookupErr
		}
		if existing != nil {
			violations = append(violations, "username is already taken")
		}
	}
	if len(violations) > 0 {
		return nil, "", violations, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, "", nil, err
	}

	user, err = s.users.Insert(ctx, username, string(hash))
	if errors.Is(err, domain.ErrUsernameTaken) {
		// Lost the race against a concurrent registration; the store's
		// uniqueness constraint is the backstop behind the lookup above.
		return nil, "", []string{"username is already taken"}, nil
	}
	if err != nil {
		return nil, "", nil, err
	}

	tok, err = s.codec.Issue(user.ID, user.Username)
	if err != nil {
		return nil, "", nil, err
	}
	return user, tok, nil, nil
}

// Login authenticates a user and mints a session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil || user == nil {
		return "", ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	return s.codec.Issue(user.ID, user.Username)
}
