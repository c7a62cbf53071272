package domain

import (
	"errors"
	"math"
	"time"
)

// ErrEndNotAfterStart is returned when a session's end timestamp is not
// strictly after its start timestamp.
var ErrEndNotAfterStart = errors.New("end time must be after start time")

// Session is one logged interval of activity. Records are immutable once
// appended: there is no edit path, only append and delete.
type Session struct {
	ID          string
	StartedAt   time.Time
	EndedAt     time.Time
	App         string
	Category    Category
	Notes       string
	DurationMin float64
	CreatedAt   time.Time
}

// Validate checks the entry-time invariant for a new session.
func (s *Session) Validate() error {
	if !s.EndedAt.After(s.StartedAt) {
		return ErrEndNotAfterStart
	}
	return nil
}

// DurationMinutes computes the span between start and end in minutes,
// rounded to two decimals. Computed once at append time and stored;
// imported rows keep whatever duration the source supplied.
func DurationMinutes(start, end time.Time) float64 {
	return math.Round(end.Sub(start).Minutes()*100) / 100
}

// StartDate returns the calendar day the session started on, in the
// session's own location. Used for per-day aggregation and the daily
// limit monitor.
func (s *Session) StartDate() time.Time {
	y, m, d := s.StartedAt.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.StartedAt.Location())
}

// EndDate returns the calendar day the session ended on.
func (s *Session) EndDate() time.Time {
	y, m, d := s.EndedAt.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.EndedAt.Location())
}
