package remote

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore backs the document store with a local sqlite file, for
// self-hosted single-machine setups and tests.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if missing) the store database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." && path != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite store: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// EnsureSchema creates the founder_data table and seeds the single row.
func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS founder_data (
			id TEXT PRIMARY KEY,
			data TEXT NOT NULL DEFAULT '{}',
			updated_at TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("create founder_data: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO founder_data (id, data, updated_at) VALUES (?, '{}', ?)
		ON CONFLICT(id) DO NOTHING
	`, DocumentKey, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("seed founder_data: %w", err)
	}
	return nil
}

// Load returns the stored document, or nil when the row is absent.
func (s *SQLiteStore) Load(ctx context.Context) ([]byte, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM founder_data WHERE id = ?`, DocumentKey).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	return []byte(data), nil
}

// Save upserts the document under the fixed key.
func (s *SQLiteStore) Save(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO founder_data (id, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, DocumentKey, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() {
	_ = s.db.Close()
}
