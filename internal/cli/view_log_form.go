package cli

import (
	"context"
	"fmt"
	"time"

	"chrona/internal/cli/formatter"
	"chrona/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// newLogSessionView creates a wizard form for logging a finished session.
// It collects the app name, category, start/end times, and optional notes,
// then persists the record via SessionService.
func newLogSessionView(state *SharedState) View {
	now := time.Now()

	var appName string
	category := string(domain.CategoryOther)
	start := now.Add(-5 * time.Minute).Format("2006-01-02 15:04")
	end := now.Format("2006-01-02 15:04")
	var notes string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("App").
				Placeholder("Instagram").
				Value(&appName).
				Validate(validateRequired("app")),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions()...).
				Value(&category),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Start (YYYY-MM-DD HH:MM)").
				Value(&start).
				Validate(validateEntryTime),
			huh.NewInput().
				Title("End (YYYY-MM-DD HH:MM)").
				Value(&end).
				Validate(func(s string) error {
					endAt, err := parseEntryTime(s)
					if err != nil {
						return fmt.Errorf("use YYYY-MM-DD HH:MM format")
					}
					if startAt, err := parseEntryTime(start); err == nil && !endAt.After(startAt) {
						return fmt.Errorf("end must be after start")
					}
					return nil
				}),
			huh.NewInput().
				Title("Notes (optional)").
				Value(&notes),
		),
	).WithTheme(chronaHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg {
			startAt, err := parseEntryTime(start)
			if err != nil {
				return wizardCompleteError(err)
			}
			endAt, err := parseEntryTime(end)
			if err != nil {
				return wizardCompleteError(err)
			}

			s := &domain.Session{
				StartedAt: startAt,
				EndedAt:   endAt,
				App:       appName,
				Category:  domain.Category(category),
				Notes:     notes,
			}
			if err := state.App.Sessions.Add(context.Background(), s); err != nil {
				return wizardCompleteError(err)
			}

			return wizardCompleteOutput(fmt.Sprintf("\n  %s Logged %s for %s",
				formatter.StyleGreen.Render("✔"),
				formatter.Bold(formatter.FormatMinutes(s.DurationMin)),
				formatter.Bold(appName)))
		}
	}

	return newWizardView(state, "Log Session", form, done)
}
