package domain

import (
	"context"
	"errors"
	"time"
)

// ErrUsernameTaken is returned by UserRepository.Insert when the username
// already exists. The sqlite adapter maps the store's UNIQUE constraint
// violation to this value so a lost registration race surfaces as a
// validation problem instead of a crash.
var ErrUsernameTaken = errors.New("username already taken")

// Post is a user-authored article. Title and body are stored after a
// write-time plain-text sanitization pass; body holds markdown source that
// is rendered through the allow-list sanitizer at display time.
type Post struct {
	ID        int64
	Title     string
	Body      string
	AuthorID  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PostWithAuthor is the join read used on public post pages.
type PostWithAuthor struct {
	Post
	AuthorName string
}

// PostRepository defines the port for post persistence operations.
type PostRepository interface {
	FindByID(ctx context.Context, id int64) (*Post, error)
	FindWithAuthor(ctx context.Context, id int64) (*PostWithAuthor, error)
	Insert(ctx context.Context, authorID int64, title, body string) (*Post, error)
	Update(ctx context.Context, id int64, title, body string) error
	Delete(ctx context.Context, id int64) error
	ListByAuthor(ctx context.Context, authorID int64) ([]Post, error)
}
