package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"chrona/internal/cli/formatter"
	"chrona/internal/domain"
	"chrona/internal/timer"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// tickMsg drives once-per-second redraws while a timer is running.
type tickMsg time.Time

// timerView controls the live stopwatch and the focus countdown.
type timerView struct {
	state *SharedState
}

func newTimerView(state *SharedState) *timerView {
	return &timerView{state: state}
}

func (v *timerView) ID() ViewID    { return ViewTimer }
func (v *timerView) Title() string { return "Timer" }

func (v *timerView) ShortHelp() []key.Binding {
	live := "start live"
	if v.state.Live.State() == domain.TimerRunning {
		live = "stop live"
	}
	focus := "start focus"
	if v.state.Focus.State() == domain.TimerRunning {
		focus = "cancel focus"
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", live)),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", focus)),
	}
}

func (v *timerView) Init() tea.Cmd {
	return v.maybeTick()
}

// maybeTick schedules the next redraw while either timer runs.
func (v *timerView) maybeTick() tea.Cmd {
	if v.state.Live.State() != domain.TimerRunning && v.state.Focus.State() != domain.TimerRunning {
		return nil
	}
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (v *timerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if v.state.Focus.Observe(time.Time(msg)) {
			return v, tea.Batch(outputCmd(focusCompleteBanner()), v.maybeTick())
		}
		return v, v.maybeTick()

	case refreshViewMsg:
		// Timers mutate in wizard callbacks; restart the tick loop in
		// case one just started.
		return v, v.maybeTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			if v.state.Live.State() == domain.TimerRunning {
				return v, v.stopLive()
			}
			return v, pushView(newLiveStartView(v.state))
		case "f":
			if v.state.Focus.State() == domain.TimerRunning {
				if err := v.state.Focus.Stop(); err != nil {
					return v, outputCmd("\n  " + formatter.StyleRed.Render("Error: "+err.Error()))
				}
				return v, outputCmd("\n  " + formatter.Dim("Focus timer cancelled."))
			}
			return v, pushView(newFocusStartView(v.state))
		}
	}

	return v, nil
}

// stopLive ends the stopwatch and appends the tracked interval to the ledger.
func (v *timerView) stopLive() tea.Cmd {
	state := v.state
	appName := state.Live.App
	category := state.Live.Category

	return func() tea.Msg {
		start, end, err := state.Live.Stop(time.Now())
		if err != nil {
			return cmdOutputMsg{output: "\n  " + formatter.StyleRed.Render("Error: " + err.Error())}
		}

		s := &domain.Session{
			StartedAt: start,
			EndedAt:   end,
			App:       appName,
			Category:  category,
			Notes:     "Live session",
		}
		if err := state.App.Sessions.Add(context.Background(), s); err != nil {
			return cmdOutputMsg{output: "\n  " + formatter.StyleRed.Render("Error: " + err.Error())}
		}

		return cmdOutputMsg{output: fmt.Sprintf("\n  %s Logged %s for %s",
			formatter.StyleGreen.Render("✔"),
			formatter.Bold(formatter.FormatMinutes(s.DurationMin)),
			formatter.Bold(appName))}
	}
}

func (v *timerView) View() string {
	var b strings.Builder
	now := time.Now()

	b.WriteString("\n  " + formatter.StyleHeader.Render("LIVE TIMER") + "\n\n")
	if v.state.Live.State() == domain.TimerRunning {
		b.WriteString(fmt.Sprintf("  %s Tracking %s (%s)\n",
			formatter.StyleGreen.Render("●"),
			formatter.Bold(v.state.Live.App),
			formatter.CategoryBadge(v.state.Live.Category),
		))
		b.WriteString(fmt.Sprintf("  Elapsed: %s\n",
			formatter.Bold(formatter.FormatMinutes(v.state.Live.ElapsedMinutes(now)))))
		b.WriteString("  " + formatter.Dim("Press 's' to stop and log the session.") + "\n")
	} else {
		b.WriteString("  " + formatter.Dim("Idle. Press 's' to start tracking an app.") + "\n")
	}
	b.WriteString("\n")

	b.WriteString("  " + formatter.StyleHeader.Render("FOCUS TIMER") + "\n\n")
	if v.state.Focus.State() == domain.TimerRunning {
		b.WriteString(fmt.Sprintf("  %s %s remaining\n",
			formatter.StylePurple.Render("◆"),
			formatter.Bold(formatter.FormatCountdown(v.state.Focus.Remaining(now)))))
		b.WriteString("  " + formatter.Dim("Press 'f' to cancel.") + "\n")
	} else {
		b.WriteString(fmt.Sprintf("  %s\n",
			formatter.Dim(fmt.Sprintf("Idle. Press 'f' to start a countdown (%d-%d minutes).",
				timer.FocusMinMinutes, timer.FocusMaxMinutes))))
	}

	return b.String()
}

// newLiveStartView creates a wizard form that starts the live stopwatch.
func newLiveStartView(state *SharedState) View {
	var appName string
	category := string(domain.CategoryOther)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("App").
				Placeholder("YouTube").
				Value(&appName).
				Validate(validateRequired("app")),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions()...).
				Value(&category),
		),
	).WithTheme(chronaHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg {
			if err := state.Live.Start(time.Now(), appName, domain.Category(category)); err != nil {
				return wizardCompleteError(err)
			}
			return wizardCompleteOutput(fmt.Sprintf("\n  %s Tracking %s",
				formatter.StyleGreen.Render("●"), formatter.Bold(appName)))
		}
	}

	return newWizardView(state, "Start Live Timer", form, done)
}

// newFocusStartView creates a wizard form that starts the focus countdown.
func newFocusStartView(state *SharedState) View {
	defaultMin := timer.FocusDefaultMinutes
	if state.LastFocusMinutes > 0 {
		defaultMin = state.LastFocusMinutes
	}
	minutes := strconv.Itoa(defaultMin)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Minutes (%d-%d)", timer.FocusMinMinutes, timer.FocusMaxMinutes)).
				Placeholder(strconv.Itoa(defaultMin)).
				Value(&minutes).
				Validate(validatePositiveInt),
		),
	).WithTheme(chronaHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg {
			m := parsePositiveInt(minutes, defaultMin)
			if err := state.Focus.Start(time.Now(), m); err != nil {
				return wizardCompleteError(err)
			}
			state.LastFocusMinutes = m
			return wizardCompleteOutput(fmt.Sprintf("\n  %s Focus started: %s",
				formatter.StylePurple.Render("◆"),
				formatter.Bold(formatter.FormatCountdown(state.Focus.Remaining(time.Now())))))
		}
	}

	return newWizardView(state, "Start Focus Timer", form, done)
}
