package handlers

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/lanes/internal/board"
	"github.com/thenoetrevino/lanes/internal/dragdrop"
	"github.com/thenoetrevino/lanes/internal/tui"
	"github.com/thenoetrevino/lanes/internal/tui/state"
)

// ============================================================================
// MOUSE HANDLERS
// ============================================================================
//
// A drag is press on a card, any number of motions, then release. The
// session carries the payload; the controller only sees over, leave and drop.
// Dragging over a ◀ ▶ marker or a lane's ▲ ▼ row scrolls toward it, so every
// lane and card is reachable on a small terminal.

// HandleMouseClick starts a drag when the press lands on a card, or opens the
// add-card form when it lands on a lane's "+ Add card" row.
func HandleMouseClick(m *tui.Model, mouse tea.Mouse) tea.Cmd {
	if mouse.Button != tea.MouseLeft {
		return nil
	}
	if m.Session != nil {
		// Release was lost; drop the stale session first
		cancelDrag(m)
	}

	layout := m.Layout()
	if id, ok := layout.CardAt(mouse.X, mouse.Y); ok {
		cards := m.Board.Cards()
		idx := board.Find(cards, id)
		if idx < 0 {
			return nil
		}
		card := cards[idx]
		m.Session = state.NewDragSession(m.Drag.Start(card))
		m.UiState.FocusLane(card.Lane)
		trackPointer(m, mouse.X, mouse.Y, false)
		slog.Debug("drag started", "id", card.ID, "lane", card.Lane)
		return nil
	}

	if lane, ok := layout.AddRowAt(mouse.X, mouse.Y); ok {
		return OpenAddCardForm(m, lane)
	}
	scrollAt(m, layout, mouse.X, mouse.Y)
	return nil
}

// HandleMouseMotion fires over and leave as the pointer crosses targets
func HandleMouseMotion(m *tui.Model, mouse tea.Mouse) {
	if m.Session == nil {
		return
	}
	trackPointer(m, mouse.X, mouse.Y, true)
}

// HandleMouseWheel scrolls the lane under the pointer, or the viewport for a sideways wheel
func HandleMouseWheel(m *tui.Model, mouse tea.Mouse) {
	layout := m.Layout()

	switch mouse.Button {
	case tea.MouseWheelLeft:
		m.UiState.ScrollViewportLeft()
	case tea.MouseWheelRight:
		m.UiState.ScrollViewportRight()
	case tea.MouseWheelUp, tea.MouseWheelDown:
		lane, ok := layout.LaneAt(mouse.X, mouse.Y)
		if !ok {
			return
		}
		if mouse.Button == tea.MouseWheelUp {
			m.UiState.ScrollLaneUp(lane)
		} else {
			m.UiState.ScrollLaneDown(lane, layout.MaxScroll(lane))
		}
	default:
		return
	}

	if m.Session != nil {
		// Slots moved under a pointer that did not
		m.Relayout()
		trackPointer(m, mouse.X, mouse.Y, false)
	}
}

// HandleMouseRelease commits the drag to whatever target is under the pointer
func HandleMouseRelease(m *tui.Model, mouse tea.Mouse) {
	if m.Session == nil {
		return
	}
	trackPointer(m, mouse.X, mouse.Y, false)

	s := m.Session
	m.Session = nil

	switch {
	case s.OverBarrel:
		if m.Drag.DropOnDelete(s.Payload, m.Board) {
			slog.Info("card burned", "id", s.CardID())
		}
		m.Drag.Cancel()

	case s.OverLane != "":
		result := m.Drag.Drop(s.Payload, s.OverLane, mouse.Y, m.Layout().Slots(), m.Board)
		if result == dragdrop.DropAborted {
			slog.Warn("drop ignored, card no longer on the board", "id", s.CardID())
		} else {
			slog.Debug("card dropped", "id", s.CardID(), "lane", s.OverLane, "result", result)
		}
		m.Drag.Cancel()

	default:
		m.Drag.Cancel()
	}
}

// trackPointer moves the session to the target under (x, y), leaving the old one.
// With scroll set, a pointer over a scroll marker or row scrolls first.
func trackPointer(m *tui.Model, x, y int, scroll bool) {
	s := m.Session
	if scroll && scrollAt(m, m.Layout(), x, y) {
		m.Relayout()
	}
	layout := m.Layout()

	lane, inLane := layout.LaneAt(x, y)
	overBarrel := layout.BarrelAt(x, y)

	if s.OverLane != "" && (!inLane || lane != s.OverLane) {
		m.Drag.Leave(s.OverLane)
		s.OverLane = ""
	}
	if s.OverBarrel && !overBarrel {
		m.Drag.LeaveDelete()
		s.OverBarrel = false
	}

	if inLane {
		m.Drag.Over(lane, y, layout.Slots())
		s.OverLane = lane
	}
	if overBarrel {
		m.Drag.OverDelete()
		s.OverBarrel = true
	}
}

// scrollAt scrolls the viewport or a lane when (x, y) is on one of their
// scroll hints. Returns whether anything scrolled.
func scrollAt(m *tui.Model, layout tui.Layout, x, y int) bool {
	switch layout.MarkerAt(x, y) {
	case -1:
		return m.UiState.ScrollViewportLeft()
	case 1:
		return m.UiState.ScrollViewportRight()
	}

	lane, dir, ok := layout.LaneScrollAt(x, y)
	if !ok {
		return false
	}
	if dir < 0 {
		return m.UiState.ScrollLaneUp(lane)
	}
	return m.UiState.ScrollLaneDown(lane, layout.MaxScroll(lane))
}

// cancelDrag abandons the session without touching the board
func cancelDrag(m *tui.Model) {
	m.Drag.Cancel()
	m.Session = nil
	slog.Debug("drag cancelled")
}
