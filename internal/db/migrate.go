package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id           TEXT PRIMARY KEY,
		started_at   TEXT NOT NULL,
		ended_at     TEXT NOT NULL,
		app          TEXT NOT NULL,
		category     TEXT NOT NULL DEFAULT 'Other',
		notes        TEXT NOT NULL DEFAULT '',
		duration_min REAL NOT NULL CHECK(duration_min >= 0),
		created_at   TEXT NOT NULL,
		start_day    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_start_day ON sessions(start_day)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at)`,

	`CREATE TABLE IF NOT EXISTS settings (
		id              TEXT PRIMARY KEY DEFAULT 'default',
		daily_limit_min INTEGER NOT NULL DEFAULT 240
		                CHECK(daily_limit_min >= 30 AND daily_limit_min <= 1440)
	)`,

	// Seed default settings row
	`INSERT OR IGNORE INTO settings (id) VALUES ('default')`,
}
