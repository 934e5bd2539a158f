package app

import (
	"context"

	"inkwell/internal/domain"
	"inkwell/internal/markup"
)

// PostService handles post creation, editing, and deletion. Every mutation
// is authorized against the acting identity: only the author of a post may
// change or delete it.
type PostService struct {
	posts domain.PostRepository
}

// NewPostService creates a new post service.
func NewPostService(posts domain.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// sanitizeSubmission applies the write-time sanitization pass. Titles and
// bodies are stripped of all HTML before the emptiness check, so a
// submission consisting only of disallowed markup counts as empty.
func sanitizeSubmission(title, body string) (string, string, []string) {
	title = markup.PlainText(title)
	body = markup.PlainText(body)
	return title, body, fieldViolations(postInput{Title: title, Body: body})
}

// Create validates and stores a new post for the given author.
func (s *PostService) Create(ctx context.Context, authorID int64, title, body string) (*domain.Post, []string, error) {
	title, body, violations := sanitizeSubmission(title, body)
	if len(violations) > 0 {
		return nil, violations, nil
	}
	post, err := s.posts.Insert(ctx, authorID, title, body)
	if err != nil {
		return nil, nil, err
	}
	return post, nil, nil
}

// Update validates and stores new content for an existing post. The actor
// must be the post's author; ErrPostNotFound and ErrNotOwner are both
// soft-failed by the HTTP layer so outsiders cannot distinguish them.
func (s *PostService) Update(ctx context.Context, actorID, postID int64, title, body string) ([]string, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.AuthorID != actorID {
		return nil, ErrNotOwner
	}

	title, body, violations := sanitizeSubmission(title, body)
	if len(violations) > 0 {
		return violations, nil
	}
	return nil, s.posts.Update(ctx, postID, title, body)
}

// Delete removes a post. Same ownership rule as Update.
func (s *PostService) Delete(ctx context.Context, actorID, postID int64) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.AuthorID != actorID {
		return ErrNotOwner
	}
	return s.posts.Delete(ctx, postID)
}

// Get returns a post together with its author's name for display.
func (s *PostService) Get(ctx context.Context, id int64) (*domain.PostWithAuthor, error) {
	post, err := s.posts.FindWithAuthor(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// GetForEdit returns a post only if the actor is its author.
func (s *PostService) GetForEdit(ctx context.Context, actorID, postID int64) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.AuthorID != actorID {
		return nil, ErrNotOwner
	}
	return post, nil
}

// ListByAuthor returns all posts written by the given user, newest first.
func (s *PostService) ListByAuthor(ctx context.Context, authorID int64) ([]domain.Post, error) {
	return s.posts.ListByAuthor(ctx, authorID)
}
