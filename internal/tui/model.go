// Package tui holds the board surface's model: the state every handler and
// renderer works on, and the geometry of the last render.
package tui

import (
	"github.com/thenoetrevino/lanes/internal/board"
	"github.com/thenoetrevino/lanes/internal/config"
	"github.com/thenoetrevino/lanes/internal/dragdrop"
	"github.com/thenoetrevino/lanes/internal/tui/components"
	"github.com/thenoetrevino/lanes/internal/tui/forms"
	"github.com/thenoetrevino/lanes/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	Board   *board.Board
	Config  *config.Config
	Drag    *dragdrop.Controller
	UiState *state.UIState

	// Session is the drag in flight, nil when the pointer is idle
	Session *state.DragSession

	// Form is the open add-card form, nil when closed
	Form *forms.AddCardForm

	// Location describes where the board is stored, for the status bar
	Location string

	layout Layout
}

// InitialModel creates the TUI model around an already booted board
func InitialModel(b *board.Board, cfg *config.Config, location string) Model {
	components.InitStyles(cfg.ColorScheme)

	m := Model{
		Board:    b,
		Config:   cfg,
		Drag:     dragdrop.NewController(cfg.Drag.DistanceOffset),
		UiState:  state.NewUIState(),
		Location: location,
	}
	m.Relayout()
	return m
}

// Layout returns the geometry of the last render
func (m *Model) Layout() Layout {
	return m.layout
}

// Relayout recomputes the geometry the next pointer event is resolved against.
// Call it after every state change that can move a card, a slot or the form.
// It also fits the viewport to the terminal width and clamps lane scroll
// offsets to what the render could show.
func (m *Model) Relayout() {
	fit := m.fit()
	m.UiState.SetViewportSize(fit.visible)
	if m.Form != nil {
		m.Form.SetWidth(formInputWidth(fit.laneWidth))
	}

	_, m.layout = m.RenderBoard()
	for _, area := range m.layout.lanes {
		m.UiState.SetLaneScrollOffset(area.lane, area.offset)
	}
}

// CloseForm drops the add-card form and returns to normal mode
func (m *Model) CloseForm() {
	m.Form = nil
	m.UiState.SetMode(state.NormalMode)
}
