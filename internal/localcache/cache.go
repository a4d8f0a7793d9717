// Package localcache is the synchronous local copy of the founder document:
// a tiny sqlite key-value table written on every state change and read once
// at startup. It is the durability floor: remote writes may lag or fail,
// the cache may not.
package localcache

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

const (
	// KeyV3 is the current schema key.
	KeyV3 = "founderOS-v3"
	// KeyV2 is the legacy schema key, read once as a migration source and
	// never written again.
	KeyV2 = "founderOS-v2"
)

// Cache is a sqlite-backed document cache.
type Cache struct {
	db *sql.DB
}

// DefaultPath returns the default cache location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get config dir: %w", err)
	}
	return filepath.Join(dir, "founderos", "cache.db"), nil
}

// Open opens (creating if missing) the cache database at path.
func Open(path string) (*Cache, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)
	`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Read returns the cached document. When the current key is absent the
// legacy v2 key is consulted as a fallback source; legacy reports which key
// supplied the data so the loader can apply the schema migration. A cache
// holding neither key returns (nil, false, nil).
func (c *Cache) Read(ctx context.Context) (value []byte, legacy bool, err error) {
	value, err = c.get(ctx, KeyV3)
	if err != nil {
		return nil, false, err
	}
	if value != nil {
		return value, false, nil
	}
	value, err = c.get(ctx, KeyV2)
	if err != nil {
		return nil, false, err
	}
	return value, value != nil, nil
}

func (c *Cache) get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := c.db.QueryRowContext(ctx, `SELECT value FROM documents WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cache key %q: %w", key, err)
	}
	return []byte(value), nil
}

// Write stores the document under the current schema key.
func (c *Cache) Write(ctx context.Context, value []byte) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO documents (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, KeyV3, string(value), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	return nil
}

// Clear removes the current and legacy keys.
func (c *Cache) Clear(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM documents WHERE key IN (?, ?)`, KeyV3, KeyV2)
	if err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

// WriteLegacy stores under the v2 key. Only the migration tests use this.
func (c *Cache) WriteLegacy(ctx context.Context, value []byte) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO documents (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, KeyV2, string(value), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("write legacy cache: %w", err)
	}
	return nil
}
