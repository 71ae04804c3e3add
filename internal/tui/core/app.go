package core

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/lanes/internal/board"
	"github.com/thenoetrevino/lanes/internal/config"
	"github.com/thenoetrevino/lanes/internal/tui"
	"github.com/thenoetrevino/lanes/internal/tui/handlers"
	"github.com/thenoetrevino/lanes/internal/tui/render"
)

// App wraps the TUI Model and implements the tea.Model interface.
// This is the single entry point for the Bubble Tea application.
// It delegates all operations to the underlying Model and subpackages.
type App struct {
	model *tui.Model
}

// New creates a new App with an initialized Model.
// The board must already be booted.
func New(b *board.Board, cfg *config.Config, location string) *App {
	model := tui.InitialModel(b, cfg, location)
	return &App{model: &model}
}

// Init initializes the Bubble Tea application.
// Implements tea.Model interface.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles all messages and updates the model.
// Implements tea.Model interface.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := handlers.Update(a.model, msg)
	return a, cmd
}

// View renders the current state of the application.
// Implements tea.Model interface.
func (a *App) View() tea.View {
	return render.View(a.model)
}

// GetModel returns the underlying Model.
// This is primarily useful for testing purposes.
func (a *App) GetModel() *tui.Model {
	return a.model
}
