package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/lanes/internal/board"
	"github.com/thenoetrevino/lanes/internal/dragdrop"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/tui/components"
	"github.com/thenoetrevino/lanes/internal/tui/forms"
)

// boardTop is the first screen row of the lanes, below the header and a blank line
const boardTop = 2

// narrowestLane keeps a lone lane drawable on very small terminals
const narrowestLane = 8

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type laneArea struct {
	lane   models.LaneID
	x      int
	cards  []components.CardBox // absolute rows
	addRow int                  // absolute row, -1 while the form is open

	// Vertical scroll of the lane, rows absolute and -1 when the lane fits
	offset    int
	maxOffset int
	upRow     int
	downRow   int
}

// Layout is the screen geometry of the last render. Slots are recorded here
// while rendering so the locator never has to inspect the screen.
type Layout struct {
	laneWidth int
	bottom    int // first row below the lanes, 0 while the height is unknown

	lanes  []laneArea      // lanes in the viewport only
	slots  []dragdrop.Slot // absolute rows, every visible lane
	barrel rect

	// ◀ and ▶ columns, zero sized when there is nothing to scroll to
	left  rect
	right rect
}

// Slots returns every rendered insertion slot with absolute rows
func (l Layout) Slots() []dragdrop.Slot {
	return l.slots
}

// LaneWidth returns the width every lane was rendered at
func (l Layout) LaneWidth() int {
	return l.laneWidth
}

// LaneX returns the left column of lane, or -1 when it is scrolled out of view
func (l Layout) LaneX(lane models.LaneID) int {
	if area, ok := l.area(lane); ok {
		return area.x
	}
	return -1
}

// CardTop returns the first row of the card with id, or -1
func (l Layout) CardTop(id string) int {
	for _, area := range l.lanes {
		for _, box := range area.cards {
			if box.ID == id {
				return box.Top
			}
		}
	}
	return -1
}

// AddRow returns the row of lane's "+ Add card", or -1
func (l Layout) AddRow(lane models.LaneID) int {
	if area, ok := l.area(lane); ok {
		return area.addRow
	}
	return -1
}

// ScrollRows returns the rows of lane's ▲ and ▼ hints, -1 when the lane fits
func (l Layout) ScrollRows(lane models.LaneID) (up, down int) {
	if area, ok := l.area(lane); ok {
		return area.upRow, area.downRow
	}
	return -1, -1
}

// MaxScroll returns the largest card offset lane can scroll to
func (l Layout) MaxScroll(lane models.LaneID) int {
	if area, ok := l.area(lane); ok {
		return area.maxOffset
	}
	return 0
}

// Barrel returns the burn barrel's top-left corner
func (l Layout) Barrel() (x, y int) {
	return l.barrel.x, l.barrel.y
}

// Markers returns the columns of the ◀ and ▶ markers, -1 for a hidden marker
func (l Layout) Markers() (left, right int) {
	left, right = -1, -1
	if l.left.w > 0 {
		left = l.left.x
	}
	if l.right.w > 0 {
		right = l.right.x
	}
	return left, right
}

// LaneAt returns the lane whose column contains x. Lanes run from below the
// header down to the row above the status bar.
func (l Layout) LaneAt(x, y int) (models.LaneID, bool) {
	if y < boardTop || (l.bottom > 0 && y >= l.bottom) {
		return "", false
	}
	for _, area := range l.lanes {
		if x >= area.x && x < area.x+l.laneWidth {
			return area.lane, true
		}
	}
	return "", false
}

// CardAt returns the id of the card under the pointer
func (l Layout) CardAt(x, y int) (string, bool) {
	lane, ok := l.LaneAt(x, y)
	if !ok {
		return "", false
	}
	area, _ := l.area(lane)
	for _, box := range area.cards {
		if y >= box.Top && y < box.Bottom {
			return box.ID, true
		}
	}
	return "", false
}

// AddRowAt returns the lane whose "+ Add card" row is under the pointer
func (l Layout) AddRowAt(x, y int) (models.LaneID, bool) {
	lane, ok := l.LaneAt(x, y)
	if !ok {
		return "", false
	}
	if area, _ := l.area(lane); area.addRow >= 0 && area.addRow == y {
		return lane, true
	}
	return "", false
}

// LaneScrollAt returns the lane whose ▲ or ▼ row is under the pointer and
// the direction to scroll: -1 for up, +1 for down.
func (l Layout) LaneScrollAt(x, y int) (models.LaneID, int, bool) {
	lane, ok := l.LaneAt(x, y)
	if !ok {
		return "", 0, false
	}
	area, _ := l.area(lane)
	switch {
	case area.upRow >= 0 && y == area.upRow:
		return lane, -1, true
	case area.downRow >= 0 && y == area.downRow:
		return lane, 1, true
	}
	return "", 0, false
}

// MarkerAt returns -1 over the ◀ marker, +1 over the ▶ marker and 0 elsewhere
func (l Layout) MarkerAt(x, y int) int {
	switch {
	case l.left.contains(x, y):
		return -1
	case l.right.contains(x, y):
		return 1
	}
	return 0
}

// BarrelAt reports whether the pointer is over the burn barrel
func (l Layout) BarrelAt(x, y int) bool {
	return l.barrel.contains(x, y)
}

func (l Layout) area(lane models.LaneID) (laneArea, bool) {
	for _, area := range l.lanes {
		if area.lane == lane {
			return area, true
		}
	}
	return laneArea{}, false
}

// boardFit is how the lanes share the terminal width with the barrel
type boardFit struct {
	laneWidth int
	visible   int // lanes in the viewport
}

func (f boardFit) scrolled() bool {
	return f.visible < len(models.Lanes())
}

// fitLanes sizes the lanes for a terminal width. Every lane is shown while
// they can all be at least MinLaneWidth wide beside the barrel; below that
// the viewport shrinks and the ◀ ▶ markers take a column each.
func fitLanes(width, barrelWidth int) boardFit {
	n := len(models.Lanes())
	if width <= 0 {
		return boardFit{laneWidth: components.MaxLaneWidth, visible: n}
	}

	room := width - barrelWidth
	if w := room/n - components.LaneGap; w >= components.MinLaneWidth {
		return boardFit{laneWidth: min(w, components.MaxLaneWidth), visible: n}
	}

	room -= 2 * components.MarkerWidth
	visible := max(1, room/(components.MinLaneWidth+components.LaneGap))
	w := min(max(room/visible-components.LaneGap, narrowestLane), components.MaxLaneWidth)
	return boardFit{laneWidth: w, visible: visible}
}

func (m *Model) fit() boardFit {
	barrelWidth := lipgloss.Width(components.RenderBurnBarrel(false))
	return fitLanes(m.UiState.Width(), barrelWidth)
}

// RenderBoard draws the lanes in the viewport and the burn barrel, and records their geometry.
// The barrel is always drawn right after the last visible lane.
func (m *Model) RenderBoard() (string, Layout) {
	fit := m.fit()
	lanes := models.Lanes()
	cards := m.Board.Cards()
	gap := strings.Repeat(" ", components.LaneGap)

	laneHeight := max(m.UiState.Height()-boardTop-1, 0)
	geo := Layout{laneWidth: fit.laneWidth}
	if m.UiState.Height() > 0 {
		geo.bottom = boardTop + laneHeight
	}

	first := min(max(m.UiState.ViewportOffset(), 0), len(lanes)-fit.visible)

	draggedID := ""
	if m.Session != nil {
		draggedID = m.Session.CardID()
	}

	var blocks []string
	x := 0
	if fit.scrolled() {
		shown := first > 0
		blocks = append(blocks, components.RenderScrollMarker("◀", laneHeight, shown))
		if shown {
			geo.left = rect{x: x, y: boardTop, w: components.MarkerWidth, h: laneHeight}
		}
		x += components.MarkerWidth
	}

	for _, lane := range lanes[first : first+fit.visible] {
		props := components.LaneProps{
			Lane:      lane,
			Cards:     board.CardsInLane(cards, lane),
			Active:    m.Drag.Active(lane),
			DraggedID: draggedID,
			Focused:   lane == m.UiState.FocusedLane(),
			Width:     fit.laneWidth,
			Height:    laneHeight,
			Offset:    m.UiState.LaneScrollOffset(lane),
		}
		if slot, ok := m.Drag.Highlighted(lane); ok {
			props.Highlight = &slot
		}
		if m.Form != nil && m.Form.Lane() == lane {
			props.Form = renderForm(m.Form, fit.laneWidth)
		}

		rendered, laneGeo := components.RenderLane(props)

		area := laneArea{
			lane:      lane,
			x:         x,
			addRow:    shiftRow(laneGeo.AddRow),
			offset:    laneGeo.Offset,
			maxOffset: laneGeo.MaxOffset,
			upRow:     shiftRow(laneGeo.UpRow),
			downRow:   shiftRow(laneGeo.DownRow),
		}
		for _, slot := range laneGeo.Slots {
			slot.MidY += boardTop
			geo.slots = append(geo.slots, slot)
		}
		for _, box := range laneGeo.Cards {
			box.Top += boardTop
			box.Bottom += boardTop
			area.cards = append(area.cards, box)
		}
		geo.lanes = append(geo.lanes, area)

		blocks = append(blocks, rendered, gap)
		x += fit.laneWidth + components.LaneGap
	}

	if fit.scrolled() {
		shown := first+fit.visible < len(lanes)
		blocks = append(blocks, components.RenderScrollMarker("▶", laneHeight, shown))
		if shown {
			geo.right = rect{x: x, y: boardTop, w: components.MarkerWidth, h: laneHeight}
		}
		x += components.MarkerWidth
	}

	barrel := components.RenderBurnBarrel(m.Drag.DeleteActive())
	geo.barrel = rect{
		x: x,
		y: boardTop + components.BarrelTopOffset,
		w: lipgloss.Width(barrel),
		h: lipgloss.Height(barrel),
	}
	blocks = append(blocks, strings.Repeat("\n", components.BarrelTopOffset)+barrel)

	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...), geo
}

// shiftRow moves a lane-relative row to the screen, keeping -1 as is
func shiftRow(row int) int {
	if row < 0 {
		return row
	}
	return row + boardTop
}

func renderForm(form *forms.AddCardForm, laneWidth int) string {
	return components.FormBoxStyle.Width(components.CardWidth(laneWidth)).Render(form.View()) + "\n" +
		components.AddCardStyle.Render("enter add · esc close")
}

// formInputWidth is the text input width that fits the form box of a lane
func formInputWidth(laneWidth int) int {
	// Box border and the cursor cell
	return max(components.CardWidth(laneWidth)-3, 1)
}
