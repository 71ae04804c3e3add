package handlers

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/tui"
	"github.com/thenoetrevino/lanes/internal/tui/forms"
	"github.com/thenoetrevino/lanes/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// HandleNormalMode dispatches key events in NormalMode to specific handlers.
func HandleNormalMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return tea.Quit
	case km.AddCard:
		return OpenAddCardForm(m, m.UiState.FocusedLane())
	case km.PrevLane, "left":
		m.UiState.FocusPrev()
	case km.NextLane, "right":
		m.UiState.FocusNext()
	case km.ScrollLaneUp, "up":
		m.UiState.ScrollLaneUp(m.UiState.FocusedLane())
	case km.ScrollLaneDown, "down":
		lane := m.UiState.FocusedLane()
		m.UiState.ScrollLaneDown(lane, m.Layout().MaxScroll(lane))
	case km.ScrollViewportLeft:
		m.UiState.ScrollViewportLeft()
	case km.ScrollViewportRight:
		m.UiState.ScrollViewportRight()
	case "esc":
		if m.Session != nil {
			cancelDrag(m)
		}
	}
	return nil
}

// OpenAddCardForm opens the add-card form in lane, replacing any open form
func OpenAddCardForm(m *tui.Model, lane models.LaneID) tea.Cmd {
	form, cmd := forms.NewAddCardForm(lane)
	m.Form = form
	m.UiState.FocusLane(lane)
	m.UiState.SetMode(state.AddCardMode)
	slog.Debug("add card form opened", "lane", lane)
	return cmd
}
