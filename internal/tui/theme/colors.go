// Package theme holds the active colors, set once at startup from the config
package theme

import (
	"github.com/thenoetrevino/lanes/internal/config"
	"github.com/thenoetrevino/lanes/internal/models"
)

// Colors holds the current theme colors, initialized by Init
var (
	Accent       string
	Background   string
	LaneBorder   string
	LaneActiveBg string
	CardBorder   string
	CardBg       string
	DraggedCard  string
	Indicator    string
	BarrelIdle   string
	BarrelActive string
	Subtle       string
	Normal       string
	Error        string
)

var laneHeaders = map[models.LaneID]string{}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	Background = colors.Background
	LaneBorder = colors.LaneBorder
	LaneActiveBg = colors.LaneActiveBg
	CardBorder = colors.CardBorder
	CardBg = colors.CardBackground
	DraggedCard = colors.DraggedCard
	Indicator = colors.Indicator
	BarrelIdle = colors.BarrelIdle
	BarrelActive = colors.BarrelActive
	Subtle = colors.Subtle
	Normal = colors.Normal
	Error = colors.Error

	for _, lane := range models.Lanes() {
		laneHeaders[lane] = config.LaneColor(colors, lane)
	}
}

// LaneHeader returns the accent color of lane
func LaneHeader(lane models.LaneID) string {
	if c, ok := laneHeaders[lane]; ok {
		return c
	}
	return Normal
}
