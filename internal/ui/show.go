package ui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"gofi/internal/menu"
)

// Show runs one menu invocation and blocks until the user confirms or
// cancels. The interface renders on stderr so dmenu mode can write its
// result to stdout.
func Show(provider *menu.LockedProvider, opts Options) (menu.Selection, error) {
	model := NewModel(provider, opts)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
	final, err := program.Run()
	if err != nil {
		return menu.Selection{}, &menu.GraphicsError{Detail: err.Error()}
	}
	result, ok := final.(*Model)
	if !ok {
		return menu.Selection{}, menu.ErrNoSelection
	}
	return result.Selection()
}
