package cli

import tea "github.com/charmbracelet/bubbletea"

// runTUI starts the interactive dashboard and blocks until the user quits.
func runTUI(app *App) error {
	program := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
