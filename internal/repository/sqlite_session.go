package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"chrona/internal/db"
	"chrona/internal/domain"
)

const sessionColumns = `id, started_at, ended_at, app, category, notes, duration_min, created_at`

// dayLayout is the format of the start_day column, the session's local
// calendar day. Comparing on it keeps day queries in local-day terms;
// SQLite's date() would normalize offset-bearing timestamps to UTC and
// shift the day boundary.
const dayLayout = "2006-01-02"

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
// It accepts a db.DBTX so the same code runs against *sql.DB or a
// transaction (see the bulk import path).
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(dbtx db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: dbtx}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (` + sessionColumns + `, start_day)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.StartedAt.Format(time.RFC3339),
		s.EndedAt.Format(time.RFC3339),
		s.App,
		string(s.Category),
		s.Notes,
		s.DurationMin,
		s.CreatedAt.Format(time.RFC3339),
		s.StartDate().Format(dayLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) List(ctx context.Context) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions ORDER BY created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListStartedOn(ctx context.Context, day time.Time) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions
		WHERE start_day = ?
		ORDER BY started_at, created_at`
	rows, err := r.db.QueryContext(ctx, query, day.Format(dayLayout))
	if err != nil {
		return nil, fmt.Errorf("listing sessions for day: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading delete result: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteSessionRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting sessions: %w", err)
	}
	return n, nil
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.Session, error) {
	var s domain.Session
	var startedAtStr, endedAtStr, createdAtStr, categoryStr string

	err := row.Scan(
		&s.ID, &startedAtStr, &endedAtStr, &s.App, &categoryStr, &s.Notes, &s.DurationMin, &createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	return r.populateSession(&s, startedAtStr, endedAtStr, categoryStr, createdAtStr)
}

// scanSessions scans multiple sessions from *sql.Rows.
func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.Session, error) {
	var sessions []*domain.Session
	for rows.Next() {
		var s domain.Session
		var startedAtStr, endedAtStr, createdAtStr, categoryStr string

		err := rows.Scan(
			&s.ID, &startedAtStr, &endedAtStr, &s.App, &categoryStr, &s.Notes, &s.DurationMin, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}

		session, parseErr := r.populateSession(&s, startedAtStr, endedAtStr, categoryStr, createdAtStr)
		if parseErr != nil {
			return nil, parseErr
		}

		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

// populateSession fills in parsed fields on a Session after scanning raw strings.
func (r *SQLiteSessionRepo) populateSession(s *domain.Session, startedAtStr, endedAtStr, categoryStr, createdAtStr string) (*domain.Session, error) {
	var parseErr error
	s.StartedAt, parseErr = time.Parse(time.RFC3339, startedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing started_at: %w", parseErr)
	}
	s.EndedAt, parseErr = time.Parse(time.RFC3339, endedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing ended_at: %w", parseErr)
	}
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	s.Category = domain.Category(categoryStr)

	return s, nil
}
