package exchange

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"chrona/internal/domain"
	"chrona/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteParse_RoundTrip(t *testing.T) {
	start := time.Date(2025, 3, 1, 14, 0, 0, 0, time.Local)
	sessions := []*domain.Session{
		testutil.NewTestSession("Instagram", 30,
			testutil.WithCategory(domain.CategorySocial),
			testutil.WithNotes("scrolling, again"),
			testutil.WithInterval(start, start.Add(30*time.Minute))),
		testutil.NewTestSession("VSCode", 90,
			testutil.WithCategory(domain.CategoryProductivity),
			testutil.WithInterval(start.Add(time.Hour), start.Add(time.Hour+90*time.Minute))),
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sessions))

	got, err := Parse(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, sessions[0].ID, got[0].ID)
	assert.True(t, got[0].StartedAt.Equal(sessions[0].StartedAt))
	assert.True(t, got[0].EndedAt.Equal(sessions[0].EndedAt))
	assert.Equal(t, "Instagram", got[0].App)
	assert.Equal(t, domain.CategorySocial, got[0].Category)
	assert.Equal(t, "scrolling, again", got[0].Notes)
	assert.Equal(t, 30.0, got[0].DurationMin)
	assert.Equal(t, "VSCode", got[1].App)
}

func TestParse_RejectsBadHeader(t *testing.T) {
	in := "id,begin,end,app,category,notes,duration_min\n"
	_, err := Parse(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected csv header")
}

func TestParse_EmptyFile(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing csv header")
}

func TestParse_AccumulatesRowErrors(t *testing.T) {
	in := strings.Join([]string{
		"id,start,end,app,category,notes,duration_min",
		"a1,2025-03-01 14:00:00,2025-03-01 14:30:00,Instagram,Social,,30.00",
		"a2,not-a-time,2025-03-01 15:00:00,Chrome,Other,,15.00",
		"a3,2025-03-01 16:00:00,2025-03-01 16:20:00,VSCode,Productivity,,oops",
	}, "\n")

	_, err := Parse(strings.NewReader(in))
	require.Error(t, err)
	// Both bad rows are reported with their line numbers.
	assert.Contains(t, err.Error(), "row 3")
	assert.Contains(t, err.Error(), "invalid start")
	assert.Contains(t, err.Error(), "row 4")
	assert.Contains(t, err.Error(), "invalid duration_min")
}

func TestParse_RejectsNegativeDuration(t *testing.T) {
	in := strings.Join([]string{
		"id,start,end,app,category,notes,duration_min",
		"a1,2025-03-01 14:00:00,2025-03-01 14:30:00,Instagram,Social,,-5",
	}, "\n")

	_, err := Parse(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative duration_min")
}

func TestParse_TrustsStoredDuration(t *testing.T) {
	// The duration column is taken as-is even when it disagrees with
	// the timestamps.
	in := strings.Join([]string{
		"id,start,end,app,category,notes,duration_min",
		"a1,2025-03-01 14:00:00,2025-03-01 14:30:00,Instagram,Social,,12.34",
	}, "\n")

	got, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 12.34, got[0].DurationMin)
}

func TestParse_KeepsUnknownCategories(t *testing.T) {
	in := strings.Join([]string{
		"id,start,end,app,category,notes,duration_min",
		"a1,2025-03-01 14:00:00,2025-03-01 14:30:00,Duolingo,Language,,30.00",
	}, "\n")

	got, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.Category("Language"), got[0].Category)
}
