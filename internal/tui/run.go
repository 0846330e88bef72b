package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tada/internal/tasklist"
)

// Run starts the interactive view on the alternate screen and blocks until
// the user quits. Tasks stay in ctrl; nothing is written anywhere.
func Run(ctrl *tasklist.Controller, opt Options) error {
	p := tea.NewProgram(New(ctrl, opt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
