package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent:     "#FFFFFF",
		Background: "#121212",

		Backlog: "#FFFFFF",
		Todo:    "#FFFFFF",
		Doing:   "#FFFFFF",
		Done:    "#FFFFFF",

		LaneBorder:     "#585858",
		LaneActiveBg:   "#1C1C1C",
		CardBorder:     "#585858",
		CardBackground: "#1C1C1C",
		DraggedCard:    "#3A3A3A",
		Indicator:      "#FFFFFF",

		BarrelIdle:   "#585858",
		BarrelActive: "#FFFFFF",

		Subtle: "#585858",
		Normal: "#D0D0D0",
		Error:  "#FFFFFF",
	}
}
