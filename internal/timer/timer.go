// Package timer holds the two interactive timer state machines. Both
// are transient: state is reset when the timer stops and lost on
// process exit. Neither spawns a goroutine — the surface polls them
// on each interaction.
package timer

import (
	"errors"
	"time"

	"chrona/internal/domain"
)

// ErrNotRunning is returned when stopping an idle timer.
var ErrNotRunning = errors.New("timer is not running")

// ErrAlreadyRunning is returned when starting a running timer.
var ErrAlreadyRunning = errors.New("timer is already running")

const (
	// Focus duration bounds in minutes; out-of-range requests clamp.
	FocusMinMinutes     = 5
	FocusMaxMinutes     = 180
	FocusDefaultMinutes = 25
)

// LiveTimer is a manually started/stopped stopwatch. Stopping yields
// the elapsed interval from which the caller appends a session record.
type LiveTimer struct {
	running   bool
	startedAt time.Time
	App       string
	Category  domain.Category
}

// State reports idle or running.
func (t *LiveTimer) State() domain.TimerState {
	if t.running {
		return domain.TimerRunning
	}
	return domain.TimerIdle
}

// Start captures the current time and the activity being tracked.
func (t *LiveTimer) Start(now time.Time, app string, category domain.Category) error {
	if t.running {
		return ErrAlreadyRunning
	}
	t.running = true
	t.startedAt = now
	t.App = app
	t.Category = category
	return nil
}

// Stop returns to idle and reports the tracked interval.
func (t *LiveTimer) Stop(now time.Time) (start, end time.Time, err error) {
	if !t.running {
		return time.Time{}, time.Time{}, ErrNotRunning
	}
	start = t.startedAt
	t.running = false
	t.startedAt = time.Time{}
	return start, now, nil
}

// ElapsedMinutes reports how long the stopwatch has been running.
// Zero when idle.
func (t *LiveTimer) ElapsedMinutes(now time.Time) float64 {
	if !t.running {
		return 0
	}
	return now.Sub(t.startedAt).Minutes()
}

// FocusTimer is a countdown toward a target duration, independent of
// the ledger.
type FocusTimer struct {
	running bool
	endsAt  time.Time
}

// State reports idle or running.
func (t *FocusTimer) State() domain.TimerState {
	if t.running {
		return domain.TimerRunning
	}
	return domain.TimerIdle
}

// Start sets the target end time to now plus the requested duration,
// clamped to the focus bounds.
func (t *FocusTimer) Start(now time.Time, minutes int) error {
	if t.running {
		return ErrAlreadyRunning
	}
	if minutes < FocusMinMinutes {
		minutes = FocusMinMinutes
	}
	if minutes > FocusMaxMinutes {
		minutes = FocusMaxMinutes
	}
	t.running = true
	t.endsAt = now.Add(time.Duration(minutes) * time.Minute)
	return nil
}

// Observe polls the countdown. Once the target has passed the timer
// auto-transitions to idle and reports completion exactly once.
func (t *FocusTimer) Observe(now time.Time) (completed bool) {
	if !t.running {
		return false
	}
	if !now.Before(t.endsAt) {
		t.running = false
		t.endsAt = time.Time{}
		return true
	}
	return false
}

// Stop cancels the countdown without signaling completion.
func (t *FocusTimer) Stop() error {
	if !t.running {
		return ErrNotRunning
	}
	t.running = false
	t.endsAt = time.Time{}
	return nil
}

// Remaining reports the time left on a running countdown, zero otherwise.
func (t *FocusTimer) Remaining(now time.Time) time.Duration {
	if !t.running {
		return 0
	}
	d := t.endsAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
