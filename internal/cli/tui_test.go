package cli

import (
	"context"
	"testing"
	"time"

	"chrona/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedSession logs one session ending a minute ago via the service layer.
func seedSession(t *testing.T, app *App, name string, minutes int) {
	t.Helper()
	end := time.Now().Add(-time.Minute)
	s := &domain.Session{
		StartedAt: end.Add(-time.Duration(minutes) * time.Minute),
		EndedAt:   end,
		App:       name,
		Category:  domain.CategorySocial,
	}
	require.NoError(t, app.Sessions.Add(context.Background(), s))
}

func TestTUI_DashboardLoadsOnStartup(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())

	view := d.View()
	assert.NotEmpty(t, view)
	assert.NotContains(t, view, "Loading...")
	assert.Contains(t, view, "UNDER LIMIT")
	assert.Contains(t, view, "Nothing logged yet")
}

func TestTUI_DashboardShowsTodaySessions(t *testing.T) {
	app := testApp(t)
	seedSession(t, app, "Instagram", 30)

	d := NewTestDriver(t, app)

	view := d.View()
	assert.Contains(t, view, "Instagram")
	assert.Contains(t, view, "30.0m")
}

func TestTUI_QuitWithQ(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('q')
	assert.True(t, d.IsQuitting())
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressCtrlC()
	assert.True(t, d.IsQuitting())
}

func TestTUI_NavigateToSessionsAndBack(t *testing.T) {
	app := testApp(t)
	seedSession(t, app, "Instagram", 30)
	d := NewTestDriver(t, app)

	d.PressKey('s')
	assert.Equal(t, ViewSessions, d.ActiveViewID())
	assert.Contains(t, d.View(), "Instagram")

	d.PressEsc()
	assert.Equal(t, ViewDashboard, d.ActiveViewID())
}

func TestTUI_NavigateToReport(t *testing.T) {
	app := testApp(t)
	seedSession(t, app, "Instagram", 30)
	seedSession(t, app, "VSCode", 90)
	d := NewTestDriver(t, app)

	d.PressKey('r')
	assert.Equal(t, ViewReport, d.ActiveViewID())

	view := d.View()
	assert.Contains(t, view, "USAGE ANALYTICS")
	assert.Contains(t, view, "VSCode")

	// Today preset keeps both seeded sessions in range.
	d.PressKey('t')
	assert.Contains(t, d.View(), "today")
	assert.Contains(t, d.View(), "Instagram")
}

func TestTUI_LogFormOpensAndCancels(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('l')
	assert.Equal(t, ViewForm, d.ActiveViewID())
	assert.Equal(t, 2, d.ViewStackLen())

	// Esc cancels the wizard and pops back to the dashboard.
	d.PressEsc()
	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Contains(t, d.LastOutput(), "Cancelled")
}

func TestTUI_FocusTimerStartViaForm(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('t')
	require.Equal(t, ViewTimer, d.ActiveViewID())
	assert.Contains(t, d.View(), "FOCUS TIMER")

	// The minutes field is prefilled with the default; Enter submits.
	d.PressKey('f')
	require.Equal(t, ViewForm, d.ActiveViewID())
	d.PressEnter()

	assert.Equal(t, ViewTimer, d.ActiveViewID())
	assert.Equal(t, domain.TimerRunning, d.State().Focus.State())
	assert.Equal(t, 25, d.State().LastFocusMinutes)
}

func TestTUI_LiveTimerStartStopLogsSession(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('t')
	d.PressKey('s')
	require.Equal(t, ViewForm, d.ActiveViewID())

	// App name, then Enter to the category select, then Enter to submit.
	d.Type("YouTube")
	d.PressEnter()
	d.PressEnter()

	require.Equal(t, ViewTimer, d.ActiveViewID())
	require.Equal(t, domain.TimerRunning, d.State().Live.State())
	assert.Equal(t, "YouTube", d.State().Live.App)

	// Stopping appends the tracked interval to the ledger.
	d.PressKey('s')
	assert.Equal(t, domain.TimerIdle, d.State().Live.State())

	sessions, err := app.Sessions.List(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "YouTube", sessions[0].App)
	assert.Equal(t, "Live session", sessions[0].Notes)
}
