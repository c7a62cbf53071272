package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"chrona/internal/db"
	"chrona/internal/domain"
	"chrona/internal/repository"
	"chrona/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExchangeServiceUnderTest(t *testing.T) (ExchangeService, repository.SessionRepo, db.UnitOfWork) {
	t.Helper()
	database := testutil.NewTestDB(t)
	sessions := repository.NewSQLiteSessionRepo(database)
	uow := testutil.NewTestUoW(database)
	return NewExchangeService(sessions, uow), sessions, uow
}

func TestExchangeService_Export_EmptyLedger(t *testing.T) {
	svc, _, _ := newExchangeServiceUnderTest(t)

	var buf bytes.Buffer
	n, err := svc.Export(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	// No header either: an empty ledger writes nothing.
	assert.Zero(t, buf.Len())
}

func TestExchangeService_ExportImport_RoundTrip(t *testing.T) {
	svc, sessions, _ := newExchangeServiceUnderTest(t)
	ctx := context.Background()

	start := time.Date(2025, 3, 1, 14, 0, 0, 0, time.Local)
	s1 := testutil.NewTestSession("Instagram", 30,
		testutil.WithCategory(domain.CategorySocial),
		testutil.WithInterval(start, start.Add(30*time.Minute)))
	s2 := testutil.NewTestSession("VSCode", 90,
		testutil.WithCategory(domain.CategoryProductivity),
		testutil.WithInterval(start.Add(time.Hour), start.Add(time.Hour+90*time.Minute)))
	require.NoError(t, sessions.Create(ctx, s1))
	require.NoError(t, sessions.Create(ctx, s2))

	var buf bytes.Buffer
	n, err := svc.Export(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Import into a fresh ledger.
	svc2, sessions2, _ := newExchangeServiceUnderTest(t)
	n, err = svc2.Import(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	list, err := sessions2.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, s1.ID, list[0].ID)
	assert.Equal(t, "Instagram", list[0].App)
	assert.Equal(t, 30.0, list[0].DurationMin)
	assert.Equal(t, "VSCode", list[1].App)
}

func TestExchangeService_Import_MalformedFileLeavesLedgerUntouched(t *testing.T) {
	svc, sessions, _ := newExchangeServiceUnderTest(t)
	ctx := context.Background()

	in := strings.Join([]string{
		"id,start,end,app,category,notes,duration_min",
		"a1,2025-03-01 14:00:00,2025-03-01 14:30:00,Instagram,Social,,30.00",
		"a2,garbage,2025-03-01 15:00:00,Chrome,Other,,15.00",
	}, "\n")

	n, err := svc.Import(ctx, strings.NewReader(in))
	require.Error(t, err)
	assert.Equal(t, 0, n)

	count, err := sessions.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestExchangeService_Import_AssignsMissingIDs(t *testing.T) {
	svc, sessions, _ := newExchangeServiceUnderTest(t)
	ctx := context.Background()

	in := strings.Join([]string{
		"id,start,end,app,category,notes,duration_min",
		",2025-03-01 14:00:00,2025-03-01 14:30:00,Instagram,Social,,30.00",
	}, "\n")

	n, err := svc.Import(ctx, strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	list, err := sessions.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.NotEmpty(t, list[0].ID)
}

func TestExchangeService_Import_RollsBackOnMidBatchFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	sessions := repository.NewSQLiteSessionRepo(database)

	// Fail the second insert inside the transaction: the first row must
	// not survive.
	failing := &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 2,
		Err:    errors.New("disk full"),
	}
	svc := NewExchangeService(sessions, failing)

	in := strings.Join([]string{
		"id,start,end,app,category,notes,duration_min",
		"a1,2025-03-01 14:00:00,2025-03-01 14:30:00,Instagram,Social,,30.00",
		"a2,2025-03-01 15:00:00,2025-03-01 15:30:00,Chrome,Other,,30.00",
	}, "\n")

	ctx := context.Background()
	_, err := svc.Import(ctx, strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	count, err := sessions.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
