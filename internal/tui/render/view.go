package render

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/tui"
	"github.com/thenoetrevino/lanes/internal/tui/components"
	"github.com/thenoetrevino/lanes/internal/tui/state"
	"github.com/thenoetrevino/lanes/internal/tui/theme"
)

// View is the main view dispatcher that renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func View(m *tui.Model) tea.View {
	var view tea.View
	view.AltScreen = true                                   // Use alternate screen buffer
	view.MouseMode = tea.MouseModeCellMotion                // Press, drag and release events
	view.BackgroundColor = lipgloss.Color(theme.Background) // Set root background color

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	view.Content = ViewBoard(m)
	return view
}

// ViewBoard renders the header, the lanes with the burn barrel, and the status bar
func ViewBoard(m *tui.Model) string {
	boardView, _ := m.RenderBoard()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		renderHeader(m),
		"",
		boardView,
		renderStatusBar(m),
	)
}

func renderHeader(m *tui.Model) string {
	title := components.AppTitleStyle.Render("lanes")
	hint := "drag cards with the mouse · drop on the barrel to burn"
	if m.Session != nil {
		hint = "release over a lane to move · over the barrel to burn · esc to cancel"
	}
	return title + "  " + components.StatusBarStyle.Render(hint)
}

func renderStatusBar(m *tui.Model) string {
	props := components.StatusBarProps{
		Width: m.UiState.Width(),
		Left:  fmt.Sprintf("%s · %d cards", m.Location, len(m.Board.Cards())),
		Right: keyHints(m),
	}
	if err := m.Board.LastSaveError(); err != nil {
		props.Error = "save failed: " + err.Error()
	}
	return components.RenderStatusBar(props)
}

func keyHints(m *tui.Model) string {
	km := m.Config.KeyMappings
	if m.UiState.Mode() == state.AddCardMode {
		return fmt.Sprintf("%s add · %s close", km.SubmitForm, km.CloseForm)
	}
	hints := fmt.Sprintf("%s add card · %s/%s lane · %s quit", km.AddCard, km.PrevLane, km.NextLane, km.Quit)
	if m.UiState.ViewportSize() < len(models.Lanes()) {
		hints = fmt.Sprintf("%s/%s scroll · %s", km.ScrollViewportLeft, km.ScrollViewportRight, hints)
	}
	return hints
}
