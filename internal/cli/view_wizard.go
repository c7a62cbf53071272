package cli

import (
	"chrona/internal/cli/formatter"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// wizardView wraps a huh.Form as a View on the navigation stack.
// When the form completes, it sends a wizardCompleteMsg with the
// done callback's result, allowing chained multi-step wizards.
type wizardView struct {
	state    *SharedState
	form     *huh.Form
	titleStr string
	done     func() tea.Cmd
}

func newWizardView(state *SharedState, title string, form *huh.Form, done func() tea.Cmd) *wizardView {
	return &wizardView{
		state:    state,
		form:     form,
		titleStr: title,
		done:     done,
	}
}

func (v *wizardView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *wizardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape cancels the wizard.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, func() tea.Msg { return wizardCompleteOutput(formatter.Dim("Cancelled.")) }
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		var doneCmd tea.Cmd
		if v.done != nil {
			doneCmd = v.done()
		}
		return v, func() tea.Msg {
			return wizardCompleteMsg{nextCmd: tea.Batch(cmd, doneCmd)}
		}
	}

	return v, cmd
}

func (v *wizardView) View() string {
	return v.form.View()
}

func (v *wizardView) ID() ViewID     { return ViewForm }
func (v *wizardView) Title() string  { return v.titleStr }
func (v *wizardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// wizardCompleteError returns a wizardCompleteMsg that displays an error.
func wizardCompleteError(err error) tea.Msg {
	return wizardCompleteMsg{nextCmd: outputCmd("\n  " + formatter.StyleRed.Render("Error: "+err.Error()))}
}

// wizardCompleteOutput returns a wizardCompleteMsg that displays a message string.
func wizardCompleteOutput(msg string) tea.Msg {
	return wizardCompleteMsg{nextCmd: outputCmd(msg)}
}

// execConfirmDelete pushes a confirmation wizard and runs deleteFn if confirmed.
func execConfirmDelete(state *SharedState, prompt, label string, deleteFn func() error) tea.Cmd {
	var confirmed bool
	form := wizardConfirm(prompt, &confirmed)
	return pushView(newWizardView(state, "Confirm Delete", form, func() tea.Cmd {
		if !confirmed {
			return func() tea.Msg { return wizardCompleteOutput(formatter.Dim("Cancelled.")) }
		}
		return func() tea.Msg {
			if err := deleteFn(); err != nil {
				return wizardCompleteError(err)
			}
			return wizardCompleteOutput("\n  " + formatter.StyleGreen.Render("✔") + " Deleted: " + formatter.Bold(label))
		}
	}))
}
