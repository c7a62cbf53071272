package repository

import (
	"context"
	"database/sql"
	"fmt"

	"chrona/internal/db"
)

// SQLiteSettingsRepo stores the single mutable settings row.
// With the default in-memory DSN the daily limit lives only for the
// process lifetime, matching the original behavior.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(dbtx db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: dbtx}
}

func (r *SQLiteSettingsRepo) DailyLimit(ctx context.Context) (int, error) {
	var minutes int
	err := r.db.QueryRowContext(ctx,
		`SELECT daily_limit_min FROM settings WHERE id = 'default'`).Scan(&minutes)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, fmt.Errorf("settings: %w", ErrNotFound)
		}
		return 0, fmt.Errorf("reading daily limit: %w", err)
	}
	return minutes, nil
}

func (r *SQLiteSettingsRepo) SetDailyLimit(ctx context.Context, minutes int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE settings SET daily_limit_min = ? WHERE id = 'default'`, minutes)
	if err != nil {
		return fmt.Errorf("updating daily limit: %w", err)
	}
	return nil
}
