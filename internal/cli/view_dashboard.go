package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"chrona/internal/cli/formatter"
	"chrona/internal/domain"
	"chrona/internal/limit"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ── data types ───────────────────────────────────────────────────────────────

// dashboardData holds the loaded data for the dashboard view.
type dashboardData struct {
	usage limit.Usage
	today []*domain.Session
}

// dashboardLoadedMsg signals that dashboard data has been loaded.
type dashboardLoadedMsg struct {
	data dashboardData
	err  error
}

// ── view ─────────────────────────────────────────────────────────────────────

// dashboardView is the home screen of the TUI. It shows today's usage
// against the daily limit, the timer status, and the sessions logged
// today.
type dashboardView struct {
	state   *SharedState
	data    *dashboardData
	loading bool
	err     error
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{
		state:   state,
		loading: true,
	}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "log")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sessions")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "report")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "timer")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return tea.Batch(v.loadData(), v.maybeTick())
}

// ── data loading ─────────────────────────────────────────────────────────────

func (v *dashboardView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()
		now := time.Now()

		usage, err := app.Limits.TodayUsage(ctx, now)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		today, err := app.Sessions.ListToday(ctx, now)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		return dashboardLoadedMsg{
			data: dashboardData{
				usage: usage,
				today: today,
			},
		}
	}
}

// maybeTick schedules a redraw while a timer is running so the header
// stopwatch and countdown stay current.
func (v *dashboardView) maybeTick() tea.Cmd {
	if v.state.Live.State() != domain.TimerRunning && v.state.Focus.State() != domain.TimerRunning {
		return nil
	}
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.data = &msg.data
		return v, nil

	case refreshViewMsg:
		v.loading = true
		v.err = nil
		return v, tea.Batch(v.loadData(), v.maybeTick())

	case tickMsg:
		if v.state.Focus.Observe(time.Time(msg)) {
			return v, tea.Batch(outputCmd(focusCompleteBanner()), v.maybeTick())
		}
		return v, v.maybeTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "l":
			return v, pushView(newLogSessionView(v.state))
		case "s":
			return v, pushView(newSessionsView(v.state))
		case "r":
			return v, pushView(newReportView(v.state))
		case "t":
			return v, pushView(newTimerView(v.state))
		}
	}

	return v, nil
}

// ── view rendering ───────────────────────────────────────────────────────────

func (v *dashboardView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if v.data == nil {
		return ""
	}

	var b strings.Builder
	now := time.Now()
	usage := v.data.usage

	// Daily limit gauge
	b.WriteString("\n  " + formatter.StyleHeader.Render("TODAY") + "\n\n")
	b.WriteString(fmt.Sprintf("  %s %s / %dm  %s\n\n",
		formatter.RenderLimitBar(usage.Ratio(), usage.Classify(), 24),
		formatter.Bold(formatter.FormatMinutes(usage.TotalMin)),
		usage.LimitMin,
		formatter.LimitIndicator(usage.Classify()),
	))

	// Timer status
	b.WriteString("  " + formatter.StyleHeader.Render("TIMERS") + "\n\n")
	if v.state.Live.State() == domain.TimerRunning {
		b.WriteString(fmt.Sprintf("  %s %s on %s (%s)\n",
			formatter.StyleGreen.Render("●"),
			formatter.Bold(formatter.FormatMinutes(v.state.Live.ElapsedMinutes(now))),
			v.state.Live.App,
			formatter.CategoryBadge(v.state.Live.Category),
		))
	} else {
		b.WriteString("  " + formatter.Dim("Live timer idle.") + "\n")
	}
	if v.state.Focus.State() == domain.TimerRunning {
		b.WriteString(fmt.Sprintf("  %s Focus: %s left\n",
			formatter.StylePurple.Render("◆"),
			formatter.Bold(formatter.FormatCountdown(v.state.Focus.Remaining(now))),
		))
	} else {
		b.WriteString("  " + formatter.Dim("Focus timer idle.") + "\n")
	}
	b.WriteString("\n")

	// Today's sessions
	b.WriteString("  " + formatter.StyleHeader.Render("SESSIONS TODAY") + "\n\n")
	if len(v.data.today) == 0 {
		b.WriteString("  " + formatter.Dim("Nothing logged yet. Press 'l' to log a session.") + "\n")
		return b.String()
	}

	rows := v.data.today
	const maxRows = 8
	if len(rows) > maxRows {
		rows = rows[len(rows)-maxRows:]
	}
	for _, s := range rows {
		b.WriteString(fmt.Sprintf("  %s  %-18s %s %s\n",
			s.StartedAt.Format("15:04"),
			truncate(s.App, 18),
			formatter.CategoryBadge(s.Category),
			formatter.Dim(formatter.FormatMinutes(s.DurationMin)),
		))
	}
	if len(v.data.today) > maxRows {
		b.WriteString("  " + formatter.Dim(fmt.Sprintf("… and %d more", len(v.data.today)-maxRows)) + "\n")
	}

	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}

func focusCompleteBanner() string {
	return "\n  " + formatter.StyleGreen.Render("✔ Focus session complete!") + "\n  " +
		formatter.Dim("Press 't' to start another.")
}
