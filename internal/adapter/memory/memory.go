// Package memory implements in-memory repositories for development and
// testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"inkwell/internal/domain"
)

// Store implements the domain repositories in process memory.
type Store struct {
	mu    sync.Mutex
	users []*domain.User
	posts []*domain.Post

	userIDCounter int64
	postIDCounter int64
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*Store)(nil)
var _ domain.PostRepository = (*PostRepo)(nil)

// --- UserRepository ---

// FindByUsername retrieves a user by username.
func (s *Store) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// Insert creates a new user, enforcing username uniqueness.
func (s *Store) Insert(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return nil, domain.ErrUsernameTaken
		}
	}

	s.userIDCounter++
	u := &domain.User{
		ID:           s.userIDCounter,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	s.users = append(s.users, u)
	cp := *u
	return &cp, nil
}

// --- PostRepository ---

// PostRepo implements post repository operations on Store.
type PostRepo struct {
	s *Store
}

// Posts returns the post repository view of the store.
func (s *Store) Posts() *PostRepo {
	return &PostRepo{s: s}
}

func (s *Store) findPostLocked(id int64) *domain.Post {
	for _, p := range s.posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindByID retrieves a post by ID.
func (r *PostRepo) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if p := r.s.findPostLocked(id); p != nil {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

// FindWithAuthor retrieves a post joined with its author's username.
func (r *PostRepo) FindWithAuthor(ctx context.Context, id int64) (*domain.PostWithAuthor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p := r.s.findPostLocked(id)
	if p == nil {
		return nil, nil
	}
	out := &domain.PostWithAuthor{Post: *p}
	for _, u := range r.s.users {
		if u.ID == p.AuthorID {
			out.AuthorName = u.Username
			break
		}
	}
	return out, nil
}

// Insert creates a new post.
func (r *PostRepo) Insert(ctx context.Context, authorID int64, title, body string) (*domain.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.postIDCounter++
	now := time.Now().UTC()
	p := &domain.Post{
		ID:        r.s.postIDCounter,
		Title:     title,
		Body:      body,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.s.posts = append(r.s.posts, p)
	cp := *p
	return &cp, nil
}

// Update replaces a post's title and body.
func (r *PostRepo) Update(ctx context.Context, id int64, title, body string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if p := r.s.findPostLocked(id); p != nil {
		p.Title = title
		p.Body = body
		p.UpdatedAt = time.Now().UTC()
	}
	return nil
}

// Delete removes a post by ID.
func (r *PostRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, p := range r.s.posts {
		if p.ID == id {
			r.s.posts = append(r.s.posts[:i], r.s.posts[i+1:]...)
			return nil
		}
	}
	return nil
}

// ListByAuthor returns all posts by the given author, newest first.
func (r *PostRepo) ListByAuthor(ctx context.Context, authorID int64) ([]domain.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []domain.Post
	for _, p := range r.s.posts {
		if p.AuthorID == authorID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
