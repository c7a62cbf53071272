package cli

import (
	"context"
	"fmt"
	"time"

	"chrona/internal/cli/formatter"
	"chrona/internal/domain"
	"chrona/internal/report"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// reportLoadedMsg signals that the session list for the report has loaded.
type reportLoadedMsg struct {
	sessions []*domain.Session
	err      error
}

// reportRangeMsg applies a new date range to the report view.
type reportRangeMsg struct {
	from, to time.Time
	label    string
}

// reportView renders the aggregate analytics over a selectable date range.
type reportView struct {
	state    *SharedState
	sessions []*domain.Session
	from, to time.Time
	label    string
	loading  bool
	err      error
}

func newReportView(state *SharedState) *reportView {
	return &reportView{
		state:   state,
		label:   "all time",
		loading: true,
	}
}

func (v *reportView) ID() ViewID    { return ViewReport }
func (v *reportView) Title() string { return "Report" }

func (v *reportView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all time")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "last 7 days")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "custom range")),
	}
}

func (v *reportView) Init() tea.Cmd {
	return v.loadData()
}

func (v *reportView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		sessions, err := app.Sessions.List(context.Background())
		return reportLoadedMsg{sessions: sessions, err: err}
	}
}

func (v *reportView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.sessions = msg.sessions
		return v, nil

	case reportRangeMsg:
		v.from = msg.from
		v.to = msg.to
		v.label = msg.label
		return v, nil

	case refreshViewMsg:
		v.loading = true
		v.err = nil
		return v, v.loadData()

	case tea.KeyMsg:
		now := time.Now()
		switch msg.String() {
		case "a":
			v.from, v.to = time.Time{}, time.Time{}
			v.label = "all time"
		case "t":
			v.from, v.to = now, now
			v.label = "today"
		case "w":
			v.from, v.to = now.AddDate(0, 0, -6), now
			v.label = "last 7 days"
		case "c":
			return v, pushView(newReportRangeView(v.state))
		}
	}

	return v, nil
}

func (v *reportView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if len(v.sessions) == 0 {
		return "\n  " + formatter.Dim("No sessions recorded yet. Log one to see analytics.")
	}

	view := report.FilterRange(v.sessions, v.from, v.to)
	out := "\n  " + formatter.Dim("Range: "+v.label) + "\n\n"
	if len(view) == 0 {
		return out + "  " + formatter.Dim("No sessions in this range.")
	}
	return out + renderReport(view)
}

// newReportRangeView creates a wizard form for entering a custom date range.
// Either bound may be left blank to keep it open.
func newReportRangeView(state *SharedState) View {
	var from, to string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("From (YYYY-MM-DD, blank for open)").
				Value(&from).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("To (YYYY-MM-DD, blank for open)").
				Value(&to).
				Validate(validateOptionalDate),
		),
	).WithTheme(chronaHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg {
			var fromT, toT time.Time
			if from != "" {
				fromT, _ = time.ParseInLocation("2006-01-02", from, time.Local)
			}
			if to != "" {
				toT, _ = time.ParseInLocation("2006-01-02", to, time.Local)
			}
			label := fmt.Sprintf("%s to %s", orOpen(from), orOpen(to))
			return reportRangeMsg{from: fromT, to: toT, label: label}
		}
	}

	return newWizardView(state, "Custom Range", form, done)
}

func orOpen(s string) string {
	if s == "" {
		return "open"
	}
	return s
}
