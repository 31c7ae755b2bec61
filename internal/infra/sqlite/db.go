// Package sqlite provides SQLite-based persistent storage for SugarShield.
// Uses WAL mode for crash-safe writes. One logical user, one device —
// the connection pool is pinned to a single writer.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// DB wraps a SQLite connection with WAL mode and migrations.
type DB struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at dir/state.db.
// Enables WAL mode, foreign keys, and 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "state.db")
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// SQLite is single-writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping() error {
	return d.db.Ping()
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		// Key-value store for profile, streak, XP, and subscription state
		`CREATE TABLE IF NOT EXISTS state (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Append-only intake log. id is the event's unix-millisecond
		// creation timestamp (bumped on collision to stay monotonic).
		`CREATE TABLE IF NOT EXISTS intake_logs (
			id          INTEGER PRIMARY KEY,
			uuid        TEXT NOT NULL,
			category    TEXT NOT NULL,
			xp          INTEGER NOT NULL DEFAULT 0,
			occurred_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_logs_occurred ON intake_logs(occurred_at)`,

		// Per-calendar-day activity metrics, keyed by local "YYYY-MM-DD"
		`CREATE TABLE IF NOT EXISTS daily_metrics (
			day         TEXT PRIMARY KEY,
			steps       INTEGER NOT NULL DEFAULT 0,
			sleep_hours REAL NOT NULL DEFAULT 7
		)`,
	}

	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// ─── State Key-Value ────────────────────────────────────────────────────────

// SetState stores a key-value pair in the state table.
func (d *DB) SetState(key, value string) error {
	_, err := d.db.Exec(
		`INSERT INTO state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		key, value,
	)
	return err
}

// GetState retrieves a state value by key.
// Returns "" if key not found — absent values are defaults, not errors.
func (d *DB) GetState(key string) (string, error) {
	var value string
	err := d.db.QueryRow(`SELECT value FROM state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}
