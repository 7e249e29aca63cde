// Package tui implements the interactive profile picker opened by
// `infomilo switch` when no profile is named on a terminal.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// PickProfile shows names and returns the one selected. current is marked
// as the active profile. ErrUserQuit is returned when the user leaves
// without choosing.
func PickProfile(names []string, current string, opts ...tea.ProgramOption) (string, error) {
	if len(names) == 0 {
		return "", ErrNoProfiles
	}

	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}

	finalModel, err := tea.NewProgram(NewPickerModel(names, current), opts...).Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(*PickerModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quit || result.chosen == "" {
		return "", ErrUserQuit
	}

	return result.chosen, nil
}
