package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteBackend implements Backend on a local SQLite database, storing one
// row per collection blob.
type SQLiteBackend struct {
	db *sqlx.DB
}

// NewSQLiteBackend opens (or creates) a SQLite database at dbPath,
// enables WAL mode, and runs any pending schema migrations.
func NewSQLiteBackend(dbPath string) (*SQLiteBackend, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	b := &SQLiteBackend{db: db}
	if err := b.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return b, nil
}

// Close closes the underlying database connection.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (b *SQLiteBackend) runMigrations() error {
	currentVersion := 0

	// Check if schema_version table exists.
	var tableCount int
	err := b.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = b.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := b.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// ReadBlob returns the blob stored for the named collection, or (nil, nil)
// when the collection has never been written.
func (b *SQLiteBackend) ReadBlob(name string) ([]byte, error) {
	var data []byte
	err := b.db.Get(&data, "SELECT data FROM collections WHERE name = ?", name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading collection %s: %w", name, err)
	}
	return data, nil
}

// WriteBlob replaces the blob stored for the named collection.
func (b *SQLiteBackend) WriteBlob(name string, data []byte) error {
	_, err := b.db.Exec(`
		INSERT INTO collections (name, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		name, data, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("writing collection %s: %w", name, err)
	}
	return nil
}

// DeleteBlob removes the blob stored for the named collection.
func (b *SQLiteBackend) DeleteBlob(name string) error {
	_, err := b.db.Exec("DELETE FROM collections WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("deleting collection %s: %w", name, err)
	}
	return nil
}
