// Package components provides the pure render functions of the board.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/lanes/internal/config"
	"github.com/thenoetrevino/lanes/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// HeaderStyle defines lane titles; the foreground is set per lane
	HeaderStyle lipgloss.Style

	// CountStyle defines the card count chip next to a lane title
	CountStyle lipgloss.Style

	// CardStyle defines the appearance of a resting card
	CardStyle lipgloss.Style

	// DraggedCardStyle defines the card currently picked up by the pointer
	DraggedCardStyle lipgloss.Style

	// IndicatorStyle defines the drop insertion line
	IndicatorStyle lipgloss.Style

	// AddCardStyle defines the "+ Add card" affordance
	AddCardStyle lipgloss.Style

	// FormBoxStyle defines the add-card form border; the width is set per lane
	FormBoxStyle lipgloss.Style

	// ScrollMarkerStyle defines the ◀ ▶ and ▲ ▼ scroll hints
	ScrollMarkerStyle lipgloss.Style

	// BarrelStyle defines the idle burn barrel
	BarrelStyle lipgloss.Style

	// BarrelActiveStyle defines the burn barrel while a card hovers over it
	BarrelActiveStyle lipgloss.Style

	// StatusBarStyle defines the bottom status line
	StatusBarStyle lipgloss.Style

	// ErrorStyle defines error text in the status bar
	ErrorStyle lipgloss.Style

	// AppTitleStyle defines the top header
	AppTitleStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors config.ColorScheme) {
	theme.Init(colors)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true)

	CountStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Background)).
		Bold(true)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.CardBorder)).
		Foreground(lipgloss.Color(colors.Normal))

	DraggedCardStyle = CardStyle.
		BorderForeground(lipgloss.Color(colors.Accent)).
		Foreground(lipgloss.Color(colors.Subtle)).
		Faint(true)

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Indicator)).
		Bold(true)

	AddCardStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Indicator))

	ScrollMarkerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	BarrelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.BarrelIdle)).
		Foreground(lipgloss.Color(colors.BarrelIdle)).
		Width(BarrelWidth).
		Height(BarrelHeight).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center)

	BarrelActiveStyle = BarrelStyle.
		BorderForeground(lipgloss.Color(colors.BarrelActive)).
		Foreground(lipgloss.Color(colors.BarrelActive)).
		Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Error)).
		Bold(true)

	AppTitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true)
}
