package service

import (
	"context"
	"testing"
	"time"

	"chrona/internal/domain"
	"chrona/internal/repository"
	"chrona/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionServiceUnderTest(t *testing.T) (SessionService, repository.SessionRepo) {
	t.Helper()
	repo := repository.NewSQLiteSessionRepo(testutil.NewTestDB(t))
	return NewSessionService(repo), repo
}

func TestSessionService_Add(t *testing.T) {
	svc, _ := newSessionServiceUnderTest(t)
	ctx := context.Background()

	start := time.Date(2025, 3, 1, 14, 0, 0, 0, time.Local)
	s := &domain.Session{
		StartedAt: start,
		EndedAt:   start.Add(25 * time.Minute),
		App:       "Instagram",
		Category:  domain.CategorySocial,
	}
	require.NoError(t, svc.Add(ctx, s))

	// ID, duration, and created-at are filled in by the service.
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 25.0, s.DurationMin)
	assert.False(t, s.CreatedAt.IsZero())

	fetched, err := svc.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Instagram", fetched.App)
}

func TestSessionService_Add_DefaultsCategory(t *testing.T) {
	svc, _ := newSessionServiceUnderTest(t)
	ctx := context.Background()

	start := time.Date(2025, 3, 1, 14, 0, 0, 0, time.Local)
	s := &domain.Session{
		StartedAt: start,
		EndedAt:   start.Add(10 * time.Minute),
		App:       "Terminal",
	}
	require.NoError(t, svc.Add(ctx, s))
	assert.Equal(t, domain.CategoryOther, s.Category)
}

func TestSessionService_Add_RejectsInvalidInterval(t *testing.T) {
	svc, repo := newSessionServiceUnderTest(t)
	ctx := context.Background()

	start := time.Date(2025, 3, 1, 14, 0, 0, 0, time.Local)
	s := &domain.Session{
		StartedAt: start,
		EndedAt:   start,
		App:       "Instagram",
	}
	err := svc.Add(ctx, s)
	assert.ErrorIs(t, err, domain.ErrEndNotAfterStart)

	// The rejected record never reaches the ledger.
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSessionService_Delete_UnknownIsNoOp(t *testing.T) {
	svc, _ := newSessionServiceUnderTest(t)
	ctx := context.Background()

	removed, err := svc.Delete(ctx, "nonexistent")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestSessionService_ListToday(t *testing.T) {
	svc, repo := newSessionServiceUnderTest(t)
	ctx := context.Background()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	today := testutil.NewTestSession("Today", 30,
		testutil.WithInterval(now.Add(-time.Hour), now.Add(-30*time.Minute)))
	yesterday := testutil.NewTestSession("Yesterday", 30,
		testutil.WithInterval(now.AddDate(0, 0, -1), now.AddDate(0, 0, -1).Add(30*time.Minute)))
	require.NoError(t, repo.Create(ctx, today))
	require.NoError(t, repo.Create(ctx, yesterday))

	list, err := svc.ListToday(ctx, now)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Today", list[0].App)
}
