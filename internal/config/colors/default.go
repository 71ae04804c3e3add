package colors

// Default returns the default color scheme (neutral board, violet indicator)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent:     "#A78BFA",
		Background: "#171717",

		// Lanes
		Backlog: "#737373",
		Todo:    "#EAB308",
		Doing:   "#BFDBFE",
		Done:    "#A7F3D0",

		// UI elements
		LaneBorder:     "#404040",
		LaneActiveBg:   "#262626",
		CardBorder:     "#404040",
		CardBackground: "#262626",
		DraggedCard:    "#525252",
		Indicator:      "#A78BFA",

		// Burn barrel
		BarrelIdle:   "#737373",
		BarrelActive: "#EF4444",

		// Text
		Subtle: "#737373",
		Normal: "#F5F5F5",
		Error:  "#EF4444",
	}
}
