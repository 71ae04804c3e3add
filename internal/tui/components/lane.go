package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/lanes/internal/dragdrop"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/tui/theme"
)

// LaneProps is everything RenderLane needs to draw one lane
type LaneProps struct {
	Lane  models.LaneID
	Cards []models.Card // Cards of this lane only, in display order

	Active    bool           // A card is being dragged over the lane
	Highlight *dragdrop.Slot // Slot whose indicator is lit, nil for none
	DraggedID string         // Card currently picked up, "" when idle
	Focused   bool           // Lane receives the add-card key

	// Form is the rendered add-card form, "" when closed
	Form string

	// Width is the lane width; 0 means MaxLaneWidth
	Width int

	// Height is the total lane height; 0 sizes to content and never scrolls
	Height int

	// Offset is the index of the first card shown when the lane overflows
	Offset int
}

// CardBox is the vertical extent of a rendered card, Bottom exclusive
type CardBox struct {
	ID     string
	Top    int
	Bottom int
}

// LaneGeometry records where RenderLane put things, in rows relative to the lane top
type LaneGeometry struct {
	Slots  []dragdrop.Slot
	Cards  []CardBox
	AddRow int // Row of "+ Add card", -1 while the form is open

	// Offset is the first card shown after clamping, MaxOffset the largest
	// offset that still fills the lane
	Offset    int
	MaxOffset int

	// UpRow and DownRow hold the ▲ and ▼ rows, -1 when the lane fits
	UpRow   int
	DownRow int
}

// RenderLane renders a lane and reports the geometry of its slots and cards
//
// Layout:
//
//	{Lane Title} {count}
//	▲ {n} more            (blank unless scrolled)
//	─────────────── (slot before card 1)
//	{Card 1}
//	─────────────── (slot before card 2)
//	{Card 2}
//	▼ {n} more            (only while the lane overflows)
//	─────────────── (append slot)
//	+ Add card
//
// The append slot and the add row or form stay visible however many cards
// the lane holds.
func RenderLane(p LaneProps) (string, LaneGeometry) {
	width := p.Width
	if width <= 0 {
		width = MaxLaneWidth
	}

	geo := LaneGeometry{AddRow: -1, UpRow: -1, DownRow: -1}
	shown, overflow := visibleCards(p, width, &geo)

	lines := []string{renderLaneHeader(p.Lane, len(p.Cards), p.Focused)}
	if overflow {
		geo.UpRow = len(lines)
		lines = append(lines, renderMore("▲", geo.Offset))
	} else {
		lines = append(lines, "")
	}

	addSlot := func(beforeID string) {
		slot := dragdrop.Slot{BeforeID: beforeID, Lane: p.Lane, MidY: len(lines)}
		geo.Slots = append(geo.Slots, slot)
		lines = append(lines, renderIndicator(p.Highlight != nil && p.Highlight.BeforeID == beforeID, width))
	}

	for _, card := range shown {
		addSlot(card.ID)
		rendered := strings.Split(RenderCard(card, card.ID == p.DraggedID, width), "\n")
		geo.Cards = append(geo.Cards, CardBox{
			ID:     card.ID,
			Top:    len(lines),
			Bottom: len(lines) + len(rendered),
		})
		lines = append(lines, rendered...)
	}
	if overflow {
		geo.DownRow = len(lines)
		lines = append(lines, renderMore("▼", len(p.Cards)-geo.Offset-len(shown)))
	}
	addSlot(models.AppendSentinel)

	if p.Form != "" {
		lines = append(lines, strings.Split(p.Form, "\n")...)
	} else {
		geo.AddRow = len(lines)
		lines = append(lines, AddCardStyle.Render("+ Add card"))
	}

	style := lipgloss.NewStyle().Width(width)
	if p.Height > len(lines) {
		style = style.Height(p.Height)
	}
	if p.Active {
		style = style.Background(lipgloss.Color(theme.LaneActiveBg))
	}

	return style.Render(strings.Join(lines, "\n")), geo
}

// visibleCards picks the window of cards that fits in p.Height and records the
// clamped offset in geo. overflow is false when every card fits.
func visibleCards(p LaneProps, width int, geo *LaneGeometry) (shown []models.Card, overflow bool) {
	if p.Height <= 0 || len(p.Cards) == 0 {
		return p.Cards, false
	}

	// Header, ▲ row, append slot
	fixed := 3
	if p.Form != "" {
		fixed += lipgloss.Height(p.Form)
	} else {
		fixed++
	}
	perCard := 1 + lipgloss.Height(RenderCard(p.Cards[0], false, width))

	room := p.Height - fixed
	if len(p.Cards)*perCard <= room {
		return p.Cards, false
	}

	// ▼ row
	fits := max(1, (room-1)/perCard)
	geo.MaxOffset = len(p.Cards) - fits
	geo.Offset = min(max(p.Offset, 0), geo.MaxOffset)
	return p.Cards[geo.Offset : geo.Offset+fits], true
}

func renderLaneHeader(lane models.LaneID, count int, focused bool) string {
	color := lipgloss.Color(theme.LaneHeader(lane))
	title := HeaderStyle.Foreground(color).Render(lane.Title())
	if focused {
		title = HeaderStyle.Foreground(color).Underline(true).Render(lane.Title())
	}
	chip := CountStyle.Background(color).Render(fmt.Sprintf(" %d ", count))
	return title + " " + chip
}

func renderMore(arrow string, hidden int) string {
	if hidden <= 0 {
		return ""
	}
	return ScrollMarkerStyle.Render(fmt.Sprintf("%s %d more", arrow, hidden))
}

func renderIndicator(lit bool, width int) string {
	if !lit {
		return ""
	}
	return IndicatorStyle.Render(strings.Repeat("─", width))
}

// RenderScrollMarker renders the column beside the lanes that hints at lanes
// scrolled out of view. shown false leaves the column blank.
func RenderScrollMarker(arrow string, height int, shown bool) string {
	height = max(height, 1)
	if !shown {
		return strings.TrimSuffix(strings.Repeat(" \n", height), "\n")
	}
	rows := make([]string, height)
	for i := range rows {
		rows[i] = ScrollMarkerStyle.Render(arrow)
	}
	return strings.Join(rows, "\n")
}
