package colors

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent:     "#957FB8", // oniViolet
		Background: "#1F1F28", // sumiInk1

		Backlog: "#727169", // fujiGray
		Todo:    "#E6C384", // carpYellow
		Doing:   "#7E9CD8", // crystalBlue
		Done:    "#98BB6C", // springGreen

		LaneBorder:     "#54546D", // sumiInk6
		LaneActiveBg:   "#2A2A37", // sumiInk4
		CardBorder:     "#363646", // sumiInk5
		CardBackground: "#2A2A37",
		DraggedCard:    "#223249", // waveBlue1
		Indicator:      "#7AA89F", // waveAqua2

		BarrelIdle:   "#727169",
		BarrelActive: "#E46876", // waveRed

		Subtle: "#727169",
		Normal: "#DCD7BA", // fujiWhite
		Error:  "#E82424", // samuraiRed
	}
}
