package repository

import (
	"context"
	"errors"
	"time"

	"chrona/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	// List returns the full ledger in insertion order.
	List(ctx context.Context) ([]*domain.Session, error)
	// ListStartedOn returns sessions whose start falls on the given calendar day.
	ListStartedOn(ctx context.Context, day time.Time) ([]*domain.Session, error)
	// Delete removes a session and reports whether a row was removed.
	// Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

type SettingsRepo interface {
	DailyLimit(ctx context.Context) (int, error)
	SetDailyLimit(ctx context.Context, minutes int) error
}
