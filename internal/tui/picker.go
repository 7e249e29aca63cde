package tui

import (
	"strings"

	"github.com/MKhiriev/infomilo/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// PickerModel lists the available profiles and lets the user choose one.
type PickerModel struct {
	names   []string
	current string
	idx     int

	chosen string
	quit   bool
}

// NewPickerModel starts with the cursor on current when it is listed.
func NewPickerModel(names []string, current string) *PickerModel {
	m := &PickerModel{names: names, current: current}
	for i, name := range names {
		if name == current {
			m.idx = i
			break
		}
	}
	return m
}

func (m *PickerModel) Init() tea.Cmd {
	return nil
}

func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.names)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if len(m.names) > 0 {
			m.chosen = m.names[m.idx]
		}
		return m, tea.Quit
	case key.Matches(keyMsg, keys.quit):
		m.quit = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *PickerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Cambiar configuración"))
	b.WriteString("\n\n")

	if len(m.names) == 0 {
		b.WriteString(ErrNoProfiles.Error())
		b.WriteString("\n")
	}

	for i, name := range m.names {
		line := (&models.Profile{Environment: name}).Icon() + " " + name
		if name == m.current {
			line += currentStyle.Render(" (activa)")
		}

		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ mover • enter seleccionar • q salir"))

	return appStyle.Render(b.String())
}

// Chosen returns the selected profile, or "" if none was selected.
func (m *PickerModel) Chosen() string {
	return m.chosen
}
