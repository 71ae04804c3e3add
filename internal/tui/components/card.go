package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/lanes/internal/models"
)

// RenderCard renders a single card as a bordered one-line box sized for a lane of laneWidth
//
//	╭──────────────────────────╮
//	│ {Card Title}             │
//	╰──────────────────────────╯
//
// dragged dims the card while it is picked up.
func RenderCard(card models.Card, dragged bool, laneWidth int) string {
	style := CardStyle
	if dragged {
		style = DraggedCardStyle
	}
	width := CardWidth(laneWidth)
	return style.Width(width).Render(" " + truncateTitle(card.Title, width-cardChrome))
}

func truncateTitle(title string, maxWidth int) string {
	// Newlines would break the fixed card height
	title = strings.Join(strings.Fields(title), " ")
	return ansi.Truncate(title, max(maxWidth, 1), "…")
}
