// Package storage provides the durable key-value collaborator backing
// the goal, widget and theme stores. Values are JSON blobs under stable
// string keys, matching the persistence schema of the mobile app this
// core serves.
package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: kv table is created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// GetValue reads the JSON blob stored under key. A missing key returns
// ok == false rather than an error; callers treat it as "no data yet".
// PRE: key is non-empty
// POST: returns the stored value and true, or "" and false when absent
func GetValue(ctx context.Context, db SQLDB, key string) (string, bool, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

// SetValue writes the JSON blob under key, replacing any previous value.
// PRE: key is non-empty
// POST: value is persisted under key
func SetValue(ctx context.Context, db SQLDB, key, value string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// DeleteValue removes key and its value. Deleting an absent key is a no-op.
// PRE: key is non-empty
// POST: key is absent from storage
func DeleteValue(ctx context.Context, db SQLDB, key string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}
