package memory

import (
	"context"
	"errors"
	"testing"

	"inkwell/internal/domain"
)

func TestUserRepo_InsertAndFind(t *testing.T) {
	ctx := context.Background()
	store := New()

	u, err := store.Insert(ctx, "alice", "hash1")
	if err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if u.ID != 1 {
		t.Errorf("expected ID 1, got %d", u.ID)
	}

	got, err := store.FindByUsername(ctx, "alice")
	if err != nil || got == nil {
		t.Fatalf("FindByUsername: %v / %v", got, err)
	}
	if got.PasswordHash != "hash1" {
		t.Errorf("PasswordHash = %q, want %q", got.PasswordHash, "hash1")
	}

	if got, _ := store.FindByUsername(ctx, "nobody"); got != nil {
		t.Errorf("expected nil for unknown username, got %+v", got)
	}
}

func TestUserRepo_UniqueUsername(t *testing.T) {
	ctx := context.Background()
	store := New()

	if _, err := store.Insert(ctx, "alice", "h1"); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	_, err := store.Insert(ctx, "alice", "h2")
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestPostRepo_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := New()
	posts := store.Posts()

	author, _ := store.Insert(ctx, "alice", "h")

	p, err := posts.Insert(ctx, author.ID, "First", "body one")
	if err != nil {
		t.Fatalf("Insert error: %v", err)
	}

	if err := posts.Update(ctx, p.ID, "First!", "body two"); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	got, _ := posts.FindByID(ctx, p.ID)
	if got == nil || got.Title != "First!" || got.Body != "body two" {
		t.Errorf("post after update: %+v", got)
	}

	joined, err := posts.FindWithAuthor(ctx, p.ID)
	if err != nil {
		t.Fatalf("FindWithAuthor error: %v", err)
	}
	if joined.AuthorName != "alice" {
		t.Errorf("AuthorName = %q, want %q", joined.AuthorName, "alice")
	}

	if err := posts.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if got, _ := posts.FindByID(ctx, p.ID); got != nil {
		t.Errorf("expected nil after delete, got %+v", got)
	}
}

func TestPostRepo_ListByAuthor(t *testing.T) {
	ctx := context.Background()
	store := New()
	posts := store.Posts()

	alice, _ := store.Insert(ctx, "alice", "h")
	bob, _ := store.Insert(ctx, "bob", "h")

	_, _ = posts.Insert(ctx, alice.ID, "a1", "b")
	_, _ = posts.Insert(ctx, bob.ID, "b1", "b")
	_, _ = posts.Insert(ctx, alice.ID, "a2", "b")

	got, err := posts.ListByAuthor(ctx, alice.ID)
	if err != nil {
		t.Fatalf("ListByAuthor error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(got))
	}
	// Newest first; equal timestamps fall back to descending ID.
	if got[0].Title != "a2" || got[1].Title != "a1" {
		t.Errorf("unexpected order: %q, %q", got[0].Title, got[1].Title)
	}
}

func TestPostRepo_FindMissing(t *testing.T) {
	ctx := context.Background()
	posts := New().Posts()

	if p, err := posts.FindByID(ctx, 42); err != nil || p != nil {
		t.Errorf("expected nil, nil for missing post, got %v / %v", p, err)
	}
	if p, err := posts.FindWithAuthor(ctx, 42); err != nil || p != nil {
		t.Errorf("expected nil, nil for missing join, got %v / %v", p, err)
	}
}
