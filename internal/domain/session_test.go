package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_Validate(t *testing.T) {
	base := time.Date(2025, 3, 1, 14, 0, 0, 0, time.Local)

	t.Run("end after start is valid", func(t *testing.T) {
		s := &Session{StartedAt: base, EndedAt: base.Add(25 * time.Minute)}
		assert.NoError(t, s.Validate())
	})

	t.Run("end equal to start is rejected", func(t *testing.T) {
		s := &Session{StartedAt: base, EndedAt: base}
		assert.ErrorIs(t, s.Validate(), ErrEndNotAfterStart)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		s := &Session{StartedAt: base, EndedAt: base.Add(-time.Minute)}
		assert.ErrorIs(t, s.Validate(), ErrEndNotAfterStart)
	})
}

func TestDurationMinutes(t *testing.T) {
	base := time.Date(2025, 3, 1, 14, 0, 0, 0, time.Local)

	assert.Equal(t, 25.0, DurationMinutes(base, base.Add(25*time.Minute)))
	assert.Equal(t, 1.5, DurationMinutes(base, base.Add(90*time.Second)))
	// 100 seconds is 1.666... minutes, rounded to two decimals.
	assert.Equal(t, 1.67, DurationMinutes(base, base.Add(100*time.Second)))
	assert.Equal(t, 0.02, DurationMinutes(base, base.Add(1*time.Second)))
}

func TestSession_StartDate(t *testing.T) {
	s := &Session{
		StartedAt: time.Date(2025, 3, 1, 23, 50, 0, 0, time.Local),
		EndedAt:   time.Date(2025, 3, 2, 0, 20, 0, 0, time.Local),
	}

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local), s.StartDate())
	// A session crossing midnight ends on the next calendar day.
	assert.Equal(t, time.Date(2025, 3, 2, 0, 0, 0, 0, time.Local), s.EndDate())
}
