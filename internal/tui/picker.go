package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the bubbletea model for the preset picker.
type Model struct {
	list      list.Model
	choice    string
	done      bool
	cancelled bool
	ready     bool
}

// NewPicker creates a picker Model over the given list items.
func NewPicker(items []list.Item) Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select a preset"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	return Model{list: l}
}

// Init returns the initial command. The list handles its own init internally.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.list.SetSize(wsm.Width, wsm.Height-2)
		m.ready = true

		return m, nil
	}

	if m.done {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			m.cancelled = true
			m.done = true

			return m, tea.Quit

		case "esc":
			// Only quit on esc when not actively filtering.
			if m.list.FilterState() != list.Filtering {
				m.cancelled = true
				m.done = true

				return m, tea.Quit
			}

		case "enter":
			// When actively filtering, enter confirms the filter instead.
			if m.list.FilterState() != list.Filtering {
				if item, ok := m.list.SelectedItem().(PresetItem); ok {
					m.choice = item.Name()
					m.done = true

					return m, tea.Quit
				}

				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

// View renders the picker.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	return m.list.View()
}

// Choice returns the selected preset name, or "" if nothing was chosen.
func (m Model) Choice() string { return m.choice }

// Cancelled returns true if the user cancelled the picker.
func (m Model) Cancelled() bool { return m.cancelled }
