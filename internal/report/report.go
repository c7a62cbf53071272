// Package report derives the dashboard analytics from the session
// ledger. Every function is pure and stateless: views are recomputed
// from the full record set on each query, never cached.
package report

import (
	"sort"
	"time"

	"chrona/internal/domain"
)

// AppUsage is the summed duration for one activity name.
type AppUsage struct {
	App     string
	Minutes float64
}

// CategoryUsage is the summed duration for one category.
type CategoryUsage struct {
	Category domain.Category
	Minutes  float64
}

// DayUsage is the summed duration for one calendar day.
type DayUsage struct {
	Day     time.Time
	Minutes float64
}

// TotalMinutes sums the stored durations of all sessions.
func TotalMinutes(sessions []*domain.Session) float64 {
	var total float64
	for _, s := range sessions {
		total += s.DurationMin
	}
	return total
}

// FilterRange keeps sessions whose start date falls on or after from
// and whose end date falls on or before to, comparing calendar days.
// A zero from or to leaves that bound open.
func FilterRange(sessions []*domain.Session, from, to time.Time) []*domain.Session {
	var out []*domain.Session
	for _, s := range sessions {
		if !from.IsZero() && s.StartDate().Before(dateOf(from)) {
			continue
		}
		if !to.IsZero() && s.EndDate().After(dateOf(to)) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// TopApps sums duration per activity name and returns the top n,
// descending. Equal sums rank by first-seen order in the input (the
// ledger's insertion order), then by name; the ordering is
// deterministic, not an incidental sort-stability artifact.
func TopApps(sessions []*domain.Session, n int) []AppUsage {
	sums := make(map[string]float64)
	firstSeen := make(map[string]int)
	for i, s := range sessions {
		if _, ok := sums[s.App]; !ok {
			firstSeen[s.App] = i
		}
		sums[s.App] += s.DurationMin
	}

	out := make([]AppUsage, 0, len(sums))
	for app, minutes := range sums {
		out = append(out, AppUsage{App: app, Minutes: minutes})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Minutes != out[j].Minutes {
			return out[i].Minutes > out[j].Minutes
		}
		if firstSeen[out[i].App] != firstSeen[out[j].App] {
			return firstSeen[out[i].App] < firstSeen[out[j].App]
		}
		return out[i].App < out[j].App
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// ByCategory sums duration per category, descending, with the same
// first-seen tie-break as TopApps.
func ByCategory(sessions []*domain.Session) []CategoryUsage {
	sums := make(map[domain.Category]float64)
	firstSeen := make(map[domain.Category]int)
	for i, s := range sessions {
		if _, ok := sums[s.Category]; !ok {
			firstSeen[s.Category] = i
		}
		sums[s.Category] += s.DurationMin
	}

	out := make([]CategoryUsage, 0, len(sums))
	for cat, minutes := range sums {
		out = append(out, CategoryUsage{Category: cat, Minutes: minutes})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Minutes != out[j].Minutes {
			return out[i].Minutes > out[j].Minutes
		}
		if firstSeen[out[i].Category] != firstSeen[out[j].Category] {
			return firstSeen[out[i].Category] < firstSeen[out[j].Category]
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// ByDay sums duration per calendar start-date, ascending by date.
func ByDay(sessions []*domain.Session) []DayUsage {
	sums := make(map[time.Time]float64)
	for _, s := range sessions {
		sums[s.StartDate()] += s.DurationMin
	}

	out := make([]DayUsage, 0, len(sums))
	for day, minutes := range sums {
		out = append(out, DayUsage{Day: day, Minutes: minutes})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Day.Before(out[j].Day)
	})
	return out
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
