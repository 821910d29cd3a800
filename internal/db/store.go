package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store wraps a SQLite database used for local data storage: rendered
// email content and search history.
type Store struct {
	db *sql.DB
}

// Open opens (and creates/migrates) the database at the given path
func Open(ctx context.Context, dbPath string) (*Store, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("empty database path")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, fmt.Errorf("create database dir: %w", err)
	}
	// Ensure file exists with strict perms
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		f, err := os.OpenFile(dbPath, os.O_CREATE|os.O_RDWR, 0o600)
		if err != nil {
			return nil, fmt.Errorf("create database file: %w", err)
		}
		f.Close()
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Pragmas
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL: %w", err)
	}
	_, _ = db.ExecContext(ctx, "PRAGMA foreign_keys=ON;")
	_, _ = db.ExecContext(ctx, "PRAGMA busy_timeout=5000;")
	_, _ = db.ExecContext(ctx, "PRAGMA synchronous=NORMAL;")

	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	// user_version based migrations
	var ver int
	_ = s.db.QueryRowContext(ctx, "PRAGMA user_version;").Scan(&ver)

	// v1: email_content cache
	if ver == 0 {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS email_content (
  email_id    INTEGER PRIMARY KEY,
  content     TEXT NOT NULL,
  updated_at  INTEGER NOT NULL
);
`)
		if err == nil {
			_, err = tx.ExecContext(ctx, "PRAGMA user_version=1;")
		}
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migrate v1: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
		ver = 1
	}

	// v2: search history
	if ver == 1 {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS search_history (
  query      TEXT PRIMARY KEY,
  last_used  INTEGER NOT NULL
);
`)
		if err == nil {
			_, err = tx.ExecContext(ctx, "PRAGMA user_version=2;")
		}
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migrate v2: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}

	return nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// GetContent returns the cached rendered body for an email, if present.
func (s *Store) GetContent(ctx context.Context, emailID int) (string, bool, error) {
	if s == nil || s.db == nil {
		return "", false, fmt.Errorf("store not open")
	}
	var content string
	err := s.db.QueryRowContext(ctx,
		"SELECT content FROM email_content WHERE email_id = ?;", emailID,
	).Scan(&content)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get content: %w", err)
	}
	return content, true, nil
}

// SaveContent stores the rendered body for an email, replacing any
// previous value.
func (s *Store) SaveContent(ctx context.Context, emailID int, content string) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("store not open")
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO email_content(email_id, content, updated_at) VALUES(?, ?, ?)
ON CONFLICT(email_id) DO UPDATE SET content=excluded.content, updated_at=excluded.updated_at;
`, emailID, content, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("save content: %w", err)
	}
	return nil
}

// InvalidateContent drops the cached body for an email, e.g. a row that
// failed to read back.
func (s *Store) InvalidateContent(ctx context.Context, emailID int) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("store not open")
	}
	_, err := s.db.ExecContext(ctx, "DELETE FROM email_content WHERE email_id = ?;", emailID)
	if err != nil {
		return fmt.Errorf("invalidate content: %w", err)
	}
	return nil
}

// SaveSearch records a search query, bumping its recency.
func (s *Store) SaveSearch(ctx context.Context, query string) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("store not open")
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO search_history(query, last_used) VALUES(?, ?)
ON CONFLICT(query) DO UPDATE SET last_used=excluded.last_used;
`, query, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("save search: %w", err)
	}
	return nil
}

// RecentSearches returns up to limit queries, most recent first.
func (s *Store) RecentSearches(ctx context.Context, limit int) ([]string, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("store not open")
	}
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT query FROM search_history ORDER BY last_used DESC, query ASC LIMIT ?;", limit)
	if err != nil {
		return nil, fmt.Errorf("recent searches: %w", err)
	}
	defer rows.Close()

	var queries []string
	for rows.Next() {
		var q string
		if err := rows.Scan(&q); err != nil {
			return nil, fmt.Errorf("scan search: %w", err)
		}
		queries = append(queries, q)
	}
	return queries, rows.Err()
}
