package service

import (
	"context"
	"testing"
	"time"

	"chrona/internal/domain"
	"chrona/internal/limit"
	"chrona/internal/repository"
	"chrona/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitServiceUnderTest(t *testing.T) (LimitService, repository.SessionRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	sessions := repository.NewSQLiteSessionRepo(database)
	settings := repository.NewSQLiteSettingsRepo(database)
	return NewLimitService(sessions, settings), sessions
}

func TestLimitService_DefaultLimit(t *testing.T) {
	svc, _ := newLimitServiceUnderTest(t)

	minutes, err := svc.DailyLimit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, limit.DefaultDailyMinutes, minutes)
}

func TestLimitService_SetDailyLimit_Clamps(t *testing.T) {
	svc, _ := newLimitServiceUnderTest(t)
	ctx := context.Background()

	stored, err := svc.SetDailyLimit(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, limit.MinDailyMinutes, stored)

	stored, err = svc.SetDailyLimit(ctx, 5000)
	require.NoError(t, err)
	assert.Equal(t, limit.MaxDailyMinutes, stored)

	stored, err = svc.SetDailyLimit(ctx, 300)
	require.NoError(t, err)
	assert.Equal(t, 300, stored)

	minutes, err := svc.DailyLimit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 300, minutes)
}

func TestLimitService_TodayUsage_Progression(t *testing.T) {
	svc, sessions := newLimitServiceUnderTest(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	addToday := func(app string, minutes int) {
		t.Helper()
		end := now.Add(-time.Minute)
		start := end.Add(-time.Duration(minutes) * time.Minute)
		require.NoError(t, sessions.Create(ctx, testutil.NewTestSession(app,
			minutes, testutil.WithInterval(start, end))))
	}

	// One 25-minute session against the default 240-minute limit.
	addToday("Instagram", 25)
	usage, err := svc.TodayUsage(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 25.0, usage.TotalMin)
	assert.Equal(t, domain.LimitUnder, usage.Classify())

	// Three more hours: 205 total, past the 80% threshold.
	addToday("VSCode", 60)
	addToday("VSCode", 60)
	addToday("Chrome", 60)
	usage, err = svc.TodayUsage(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 205.0, usage.TotalMin)
	assert.Equal(t, domain.LimitNear, usage.Classify())

	// Forty more: 245 total, over the limit.
	addToday("YouTube", 40)
	usage, err = svc.TodayUsage(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 245.0, usage.TotalMin)
	assert.Equal(t, domain.LimitOver, usage.Classify())
}

func TestLimitService_TodayUsage_IgnoresOtherDays(t *testing.T) {
	svc, sessions := newLimitServiceUnderTest(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	old := testutil.NewTestSession("OldNews", 500,
		testutil.WithInterval(now.AddDate(0, 0, -3), now.AddDate(0, 0, -3).Add(500*time.Minute)))
	require.NoError(t, sessions.Create(ctx, old))

	usage, err := svc.TodayUsage(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 0.0, usage.TotalMin)
	assert.Equal(t, domain.LimitUnder, usage.Classify())
}
