package cli

import (
	"testing"

	"chrona/internal/repository"
	"chrona/internal/service"
	"chrona/internal/teatest"
	"chrona/internal/testutil"

	tea "github.com/charmbracelet/bubbletea"
)

// testApp wires a full App over an in-memory database.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	uow := testutil.NewTestUoW(database)

	return &App{
		Sessions: service.NewSessionService(sessionRepo),
		Limits:   service.NewLimitService(sessionRepo, settingsRepo),
		Exchange: service.NewExchangeService(sessionRepo, uow),
	}
}

// TestDriver wraps teatest.Driver with appModel inspection methods
// (view stack, shared state) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App.
// It constructs the appModel, sets terminal size, and drains Init()
// (which loads dashboard data synchronously via in-memory SQLite).
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// LastOutput returns the last transient output displayed in the content area.
func (d *TestDriver) LastOutput() string {
	return d.appModel().lastOutput
}

// PressCtrlC sends Ctrl+C.
func (d *TestDriver) PressCtrlC() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
}
