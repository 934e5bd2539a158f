// Package sqlite implements the domain repositories using SQLite. A single
// database file backs the whole application; WAL journaling gives the
// single-writer guarantee the services rely on, so no locking is
// re-implemented here.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store wraps the SQLite connection pool.
type Store struct {
	sql *sql.DB
}

// Open opens (creating if necessary) the database at path and runs table
// initialization. The connection string enables WAL mode and foreign key
// enforcement.
func Open(path string) (*Store, error) {
	connstr := fmt.Sprintf("file:%s?_journal=wal&_fk=true&mode=rwc", path)
	s, err := sql.Open("sqlite3", connstr)
	if err != nil {
		return nil, fmt.Errorf("open %v: %w", path, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("ping %v: %w", path, err)
	}

	st := &Store{sql: s}
	if err := st.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return st, nil
}

// Close closes the underlying pool.
func (s *Store) Close() error {
	return s.sql.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS posts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			body TEXT NOT NULL,
			author_id INTEGER NOT NULL REFERENCES users(id),
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_posts_author_id ON posts(author_id);`,
	}

	for _, stmt := range stmts {
		if _, err := s.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
