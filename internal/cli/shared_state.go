package cli

import "chrona/internal/timer"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Timers live here so they survive view transitions. Both reset
	// on process exit.
	Live  timer.LiveTimer
	Focus timer.FocusTimer

	// Last focus duration entered, reused as the next default.
	LastFocusMinutes int

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
