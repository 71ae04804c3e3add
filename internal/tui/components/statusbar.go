package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps feeds the bottom status line
type StatusBarProps struct {
	Width int
	Left  string
	Right string
	Error string // Shown in place of Left when set
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	leftRendered := StatusBarStyle.Render(props.Left)
	if props.Error != "" {
		leftRendered = ErrorStyle.Render(props.Error)
	}
	rightRendered := StatusBarStyle.Render(props.Right)

	gapWidth := props.Width - lipgloss.Width(leftRendered) - lipgloss.Width(rightRendered)
	if gapWidth < 1 {
		gapWidth = 1
	}

	return leftRendered + strings.Repeat(" ", gapWidth) + rightRendered
}
