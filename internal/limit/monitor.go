// Package limit classifies today's logged minutes against the
// configured daily ceiling. The limit is used only for alerting; it
// never blocks logging.
package limit

import "chrona/internal/domain"

const (
	// DefaultDailyMinutes is the limit applied until the user overrides it.
	DefaultDailyMinutes = 240

	// MinDailyMinutes and MaxDailyMinutes bound user overrides; values
	// outside the range clamp.
	MinDailyMinutes = 30
	MaxDailyMinutes = 1440

	nearThreshold = 0.8
)

// Usage is a snapshot of today's total against the configured limit.
type Usage struct {
	TotalMin float64
	LimitMin int
}

// Ratio reports usage as a fraction of the limit. Zero limit reads as
// fully over.
func (u Usage) Ratio() float64 {
	if u.LimitMin <= 0 {
		return 1
	}
	return u.TotalMin / float64(u.LimitMin)
}

// Classify maps the usage ratio onto the alert states:
// under (< 80%), near (>= 80%), over (>= 100%).
func (u Usage) Classify() domain.LimitState {
	switch {
	case u.TotalMin >= float64(u.LimitMin):
		return domain.LimitOver
	case u.TotalMin >= nearThreshold*float64(u.LimitMin):
		return domain.LimitNear
	default:
		return domain.LimitUnder
	}
}

// ClampMinutes forces a requested limit into the accepted range.
func ClampMinutes(minutes int) int {
	if minutes < MinDailyMinutes {
		return MinDailyMinutes
	}
	if minutes > MaxDailyMinutes {
		return MaxDailyMinutes
	}
	return minutes
}
