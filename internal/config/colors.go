package config

import (
	"github.com/thenoetrevino/lanes/internal/config/colors"
	"github.com/thenoetrevino/lanes/internal/models"
)

// ColorScheme is the theme section of the config
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return *colors.Monochrome()
}

// LaneColor returns the header accent configured for lane
func LaneColor(scheme ColorScheme, lane models.LaneID) string {
	switch lane {
	case models.LaneBacklog:
		return scheme.Backlog
	case models.LaneTodo:
		return scheme.Todo
	case models.LaneDoing:
		return scheme.Doing
	case models.LaneDone:
		return scheme.Done
	default:
		return scheme.Normal
	}
}
