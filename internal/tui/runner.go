package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// RunInteractive runs the full-screen shell until the user exits.
func RunInteractive(sh Shell, opts Options) error {
	p := tea.NewProgram(NewModel(sh, opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive shell failed: %w", err)
	}
	return nil
}
