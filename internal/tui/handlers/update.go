package handlers

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/lanes/internal/tui"
	"github.com/thenoetrevino/lanes/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func Update(m *tui.Model, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)

	case tea.KeyPressMsg:
		if m.UiState.Mode() == state.AddCardMode {
			cmd = HandleAddCardMode(m, msg)
		} else {
			cmd = HandleNormalMode(m, msg)
		}

	case tea.MouseClickMsg:
		cmd = HandleMouseClick(m, msg.Mouse())

	case tea.MouseMotionMsg:
		HandleMouseMotion(m, msg.Mouse())

	case tea.MouseReleaseMsg:
		HandleMouseRelease(m, msg.Mouse())

	case tea.MouseWheelMsg:
		HandleMouseWheel(m, msg.Mouse())

	default:
		// Cursor blink and other textinput internals
		if m.Form != nil {
			cmd = m.Form.Update(msg)
		}
	}

	m.Relayout()
	return cmd
}
