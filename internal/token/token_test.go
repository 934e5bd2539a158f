package token

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	c := New([]byte("super-secret"), time.Hour)

	tok, err := c.Issue(42, "alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := c.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Errorf("Username = %q, want %q", claims.Username, "alice")
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		t.Error("expected expiry in the future")
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	c := New([]byte("secret"), -time.Second)

	tok, err := c.Issue(1, "bob")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = c.Verify(tok)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for expired token, got %v", err)
	}
}

func TestVerify_Absent(t *testing.T) {
	t.Parallel()

	c := New([]byte("secret"), time.Hour)
	_, err := c.Verify("")
	if !errors.Is(err, ErrAbsent) {
		t.Fatalf("expected ErrAbsent for empty token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := New([]byte("right-secret"), time.Hour).Issue(1, "carol")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = New([]byte("wrong-secret"), time.Hour).Verify(tok)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for wrong secret, got %v", err)
	}
}

func TestVerify_TamperedToken(t *testing.T) {
	t.Parallel()

	c := New([]byte("secret"), time.Hour)
	tok, err := c.Issue(7, "dave")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Flip one byte at every position; no altered token may verify.
	for i := 0; i < len(tok); i++ {
		altered := []byte(tok)
		if altered[i] == 'A' {
			altered[i] = 'B'
		} else {
			altered[i] = 'A'
		}
		if _, err := c.Verify(string(altered)); err == nil {
			t.Fatalf("tampered token at byte %d verified", i)
		}
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	c := New([]byte("secret"), time.Hour)
	for _, tok := range []string{"not.a.jwt", "garbage", strings.Repeat("x", 500)} {
		if _, err := c.Verify(tok); !errors.Is(err, ErrInvalid) {
			t.Errorf("Verify(%q) = %v, want ErrInvalid", tok, err)
		}
	}
}
