package service

import (
	"context"
	"io"
	"time"

	"chrona/internal/domain"
	"chrona/internal/limit"
)

type SessionService interface {
	// Add validates and appends a new session. The record is assigned a
	// fresh ID and its duration is computed from the timestamps.
	Add(ctx context.Context, s *domain.Session) error
	// Delete removes a session by ID, reporting whether anything was
	// removed. Unknown IDs are a no-op, not an error.
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context) ([]*domain.Session, error)
	ListToday(ctx context.Context, now time.Time) ([]*domain.Session, error)
}

type LimitService interface {
	DailyLimit(ctx context.Context) (int, error)
	// SetDailyLimit stores the limit, clamped to the accepted range, and
	// returns the value actually stored.
	SetDailyLimit(ctx context.Context, minutes int) (int, error)
	TodayUsage(ctx context.Context, now time.Time) (limit.Usage, error)
}

type ExchangeService interface {
	// Export writes the full ledger as CSV and returns the record count.
	Export(ctx context.Context, w io.Writer) (int, error)
	// Import appends all rows from a CSV stream in one transaction.
	// Any malformed row aborts the whole batch, leaving the ledger
	// untouched.
	Import(ctx context.Context, r io.Reader) (int, error)
}
