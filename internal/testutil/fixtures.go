package testutil

import (
	"time"

	"chrona/internal/domain"

	"github.com/google/uuid"
)

// Session options
type SessionOption func(*domain.Session)

func WithCategory(c domain.Category) SessionOption {
	return func(s *domain.Session) {
		s.Category = c
	}
}

func WithNotes(n string) SessionOption {
	return func(s *domain.Session) {
		s.Notes = n
	}
}

func WithStart(t time.Time) SessionOption {
	return func(s *domain.Session) {
		d := s.EndedAt.Sub(s.StartedAt)
		s.StartedAt = t
		s.EndedAt = t.Add(d)
		s.DurationMin = domain.DurationMinutes(s.StartedAt, s.EndedAt)
	}
}

func WithInterval(start, end time.Time) SessionOption {
	return func(s *domain.Session) {
		s.StartedAt = start
		s.EndedAt = end
		s.DurationMin = domain.DurationMinutes(start, end)
	}
}

func WithCreatedAt(t time.Time) SessionOption {
	return func(s *domain.Session) {
		s.CreatedAt = t
	}
}

// NewTestSession builds a valid session of the given length ending now.
func NewTestSession(app string, minutes int, opts ...SessionOption) *domain.Session {
	now := time.Now().UTC().Truncate(time.Second)
	start := now.Add(-time.Duration(minutes) * time.Minute)
	s := &domain.Session{
		ID:          uuid.New().String(),
		StartedAt:   start,
		EndedAt:     now,
		App:         app,
		Category:    domain.CategoryOther,
		DurationMin: domain.DurationMinutes(start, now),
		CreatedAt:   now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
