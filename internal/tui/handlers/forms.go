package handlers

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/lanes/internal/board"
	"github.com/thenoetrevino/lanes/internal/tui"
)

// HandleAddCardMode routes keys to the open add-card form
func HandleAddCardMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	if m.Form == nil {
		m.CloseForm()
		return nil
	}

	km := m.Config.KeyMappings
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case km.CloseForm:
		m.CloseForm()
		return nil
	case km.SubmitForm:
		submitAddCardForm(m)
		return nil
	}

	return m.Form.Update(msg)
}

// submitAddCardForm appends the card; blank input keeps the form open and changes nothing
func submitAddCardForm(m *tui.Model) {
	title, ok := m.Form.Title()
	if !ok {
		return
	}

	card, err := m.Board.Add(m.Form.Lane(), title)
	if err != nil {
		slog.Error("failed to add card", "error", err)
		return
	}
	slog.Info("card added", "id", card.ID, "lane", card.Lane)
	m.CloseForm()

	// Show the new card at the bottom; Relayout clamps the offset
	m.UiState.SetLaneScrollOffset(card.Lane, len(board.CardsInLane(m.Board.Cards(), card.Lane)))
}
