package components

// Board geometry in terminal cells
const (
	// MinLaneWidth and MaxLaneWidth bound a lane column. Lanes narrower than
	// MinLaneWidth are scrolled out of view instead.
	MinLaneWidth = 20
	MaxLaneWidth = 30

	// LaneGap is the blank space between lanes
	LaneGap = 1

	// MarkerWidth is the width of the ◀ and ▶ columns shown when lanes are scrolled out of view
	MarkerWidth = 1

	// cardChrome is the border and padding around a card title
	cardChrome = 4

	// BarrelWidth and BarrelHeight size the burn barrel box
	BarrelWidth  = 18
	BarrelHeight = 7

	// BarrelTopOffset is how far below the lane headers the barrel starts
	BarrelTopOffset = 2
)

// CardWidth leaves room for the card border inside a lane of laneWidth
func CardWidth(laneWidth int) int {
	return laneWidth - 2
}
