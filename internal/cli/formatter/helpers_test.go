package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "0m", FormatMinutes(-5))
	assert.Equal(t, "0.5m", FormatMinutes(0.5))
	assert.Equal(t, "45.0m", FormatMinutes(45))
	assert.Equal(t, "59.9m", FormatMinutes(59.9))
	assert.Equal(t, "1h", FormatMinutes(60))
	assert.Equal(t, "1h 30m", FormatMinutes(90))
	assert.Equal(t, "4h 5m", FormatMinutes(245))
}

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "24 min 59 sec", FormatCountdown(24*time.Minute+59*time.Second))
	assert.Equal(t, "0 min 5 sec", FormatCountdown(5*time.Second))
	assert.Equal(t, "0 min 0 sec", FormatCountdown(0))
	assert.Equal(t, "0 min 0 sec", FormatCountdown(-time.Second))
}

func TestTruncID(t *testing.T) {
	out := TruncID("0123456789abcdef")
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "89abcdef")
}

func TestHumanDate(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "Today", HumanDate(now))
	assert.Equal(t, "Yesterday", HumanDate(now.AddDate(0, 0, -1)))

	old := time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local)
	assert.Equal(t, "Jan 15, 2024", HumanDate(old))
}
