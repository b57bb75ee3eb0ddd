// ABOUTME: TUI program launcher
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"calldeck/api"
	"calldeck/config"
)

// Run starts the full-screen console and blocks until the user quits.
func Run(client *api.Client, cfg *config.Config) error {
	p := tea.NewProgram(NewModel(client, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
