package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"inkwell/internal/domain"
)

// PostRepo implements post repository operations on Store.
type PostRepo struct {
	s *Store
}

// Posts returns the post repository view of the store.
func (s *Store) Posts() *PostRepo {
	return &PostRepo{s: s}
}

var _ domain.PostRepository = (*PostRepo)(nil)

// FindByID retrieves a post by ID. Returns nil when absent.
func (r *PostRepo) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	var p domain.Post
	err := r.s.sql.QueryRowContext(ctx,
		"SELECT id, title, body, author_id, created_at, updated_at FROM posts WHERE id = ?",
		id,
	).Scan(&p.ID, &p.Title, &p.Body, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindWithAuthor retrieves a post joined with its author's username.
func (r *PostRepo) FindWithAuthor(ctx context.Context, id int64) (*domain.PostWithAuthor, error) {
	var p domain.PostWithAuthor
	err := r.s.sql.QueryRowContext(ctx,
		`SELECT p.id, p.title, p.body, p.author_id, p.created_at, p.updated_at, u.username
		 FROM posts p
		 INNER JOIN users u ON u.id = p.author_id
		 WHERE p.id = ?`,
		id,
	).Scan(&p.ID, &p.Title, &p.Body, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt, &p.AuthorName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Insert creates a new post.
func (r *PostRepo) Insert(ctx context.Context, authorID int64, title, body string) (*domain.Post, error) {
	now := time.Now().UTC()
	res, err := r.s.sql.ExecContext(ctx,
		"INSERT INTO posts (title, body, author_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		title, body, authorID, now, now,
	)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &domain.Post{ID: id, Title: title, Body: body, AuthorID: authorID, CreatedAt: now, UpdatedAt: now}, nil
}

// Update replaces a post's title and body.
func (r *PostRepo) Update(ctx context.Context, id int64, title, body string) error {
	_, err := r.s.sql.ExecContext(ctx,
		"UPDATE posts SET title = ?, body = ?, updated_at = ? WHERE id = ?",
		title, body, time.Now().UTC(), id,
	)
	return err
}

// Delete removes a post by ID.
func (r *PostRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.s.sql.ExecContext(ctx, "DELETE FROM posts WHERE id = ?", id)
	return err
}

// ListByAuthor returns all posts by the given author, newest first.
func (r *PostRepo) ListByAuthor(ctx context.Context, authorID int64) ([]domain.Post, error) {
	rows, err := r.s.sql.QueryContext(ctx,
		"SELECT id, title, body, author_id, created_at, updated_at FROM posts WHERE author_id = ? ORDER BY created_at DESC, id DESC",
		authorID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Body, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
