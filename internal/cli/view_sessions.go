package cli

import (
	"context"
	"fmt"
	"strings"

	"chrona/internal/cli/formatter"
	"chrona/internal/domain"
	"chrona/internal/report"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// sessionsLoadedMsg signals that the session list has been loaded.
type sessionsLoadedMsg struct {
	sessions []*domain.Session
	err      error
}

// sessionsView lists all logged sessions with a movable cursor.
// The selected session can be deleted after confirmation.
type sessionsView struct {
	state   *SharedState
	rows    []*domain.Session
	cursor  int
	loading bool
	err     error
}

func newSessionsView(state *SharedState) *sessionsView {
	return &sessionsView{
		state:   state,
		loading: true,
	}
}

func (v *sessionsView) ID() ViewID    { return ViewSessions }
func (v *sessionsView) Title() string { return "Sessions" }

func (v *sessionsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "move")),
		key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "log")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete by ID")),
	}
}

func (v *sessionsView) Init() tea.Cmd {
	return v.loadData()
}

func (v *sessionsView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		sessions, err := app.Sessions.List(context.Background())
		return sessionsLoadedMsg{sessions: sessions, err: err}
	}
}

func (v *sessionsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionsLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.rows = msg.sessions
		if v.cursor >= len(v.rows) {
			v.cursor = max(0, len(v.rows)-1)
		}
		return v, nil

	case refreshViewMsg:
		v.loading = true
		v.err = nil
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.rows)-1 {
				v.cursor++
			}
		case "l":
			return v, pushView(newLogSessionView(v.state))
		case "d":
			if v.cursor < len(v.rows) {
				s := v.rows[v.cursor]
				app := v.state.App
				prompt := fmt.Sprintf("Delete %s session for %s?",
					formatter.FormatMinutes(s.DurationMin), s.App)
				return v, execConfirmDelete(v.state, prompt, s.App, func() error {
					removed, err := app.Sessions.Delete(context.Background(), s.ID)
					if err != nil {
						return err
					}
					if !removed {
						return fmt.Errorf("session %s no longer exists", s.ID)
					}
					return nil
				})
			}
		case "D":
			return v, pushView(newDeleteByIDView(v.state))
		}
	}

	return v, nil
}

// newDeleteByIDView creates a wizard form that deletes a session by its
// full ID. An unknown ID degrades to a warning, not an error.
func newDeleteByIDView(state *SharedState) View {
	var id string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Session ID").
				Value(&id).
				Validate(validateRequired("id")),
		),
	).WithTheme(chronaHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg {
			removed, err := state.App.Sessions.Delete(context.Background(), id)
			if err != nil {
				return wizardCompleteError(err)
			}
			if !removed {
				return wizardCompleteOutput("\n  " + formatter.Dim(
					fmt.Sprintf("No session with ID %s; nothing deleted.", id)))
			}
			return wizardCompleteOutput("\n  " + formatter.StyleGreen.Render("✔") +
				" Deleted session " + formatter.Bold(id))
		}
	}

	return newWizardView(state, "Delete by ID", form, done)
}

func (v *sessionsView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if len(v.rows) == 0 {
		return "\n  " + formatter.Dim("No sessions recorded yet. Press 'l' to log one.")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Window the rows around the cursor so long ledgers fit the screen.
	visible := v.state.ContentHeight() - 2
	if visible < 3 {
		visible = 3
	}
	start := 0
	if v.cursor >= visible {
		start = v.cursor - visible + 1
	}
	end := min(start+visible, len(v.rows))

	if start > 0 {
		b.WriteString("  " + formatter.Dim(fmt.Sprintf("↑ %d more", start)) + "\n")
	}
	for i := start; i < end; i++ {
		s := v.rows[i]
		cursor := "  "
		appStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			appStyle = formatter.StyleBold
		}
		b.WriteString(fmt.Sprintf("%s%s  %s  %-18s %s %8s  %s\n",
			cursor,
			formatter.TruncID(s.ID),
			s.StartedAt.Format("2006-01-02 15:04"),
			appStyle.Render(truncate(s.App, 18)),
			formatter.CategoryBadge(s.Category),
			formatter.FormatMinutes(s.DurationMin),
			formatter.Dim(truncate(s.Notes, 24)),
		))
	}
	if end < len(v.rows) {
		b.WriteString("  " + formatter.Dim(fmt.Sprintf("↓ %d more", len(v.rows)-end)) + "\n")
	}

	b.WriteString("\n  " + formatter.Dim(fmt.Sprintf("%d sessions, %s total",
		len(v.rows), formatter.FormatMinutes(report.TotalMinutes(v.rows)))))

	return b.String()
}
