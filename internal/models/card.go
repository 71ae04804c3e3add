package models

import "strings"

// AppendSentinel is the before-id of the insertion slot after the last card in a lane.
// It never collides with a generated card id.
const AppendSentinel = "-1"

// Card is a single item on the board
type Card struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	// Lane is stored under "column" so existing saved boards keep loading.
	Lane LaneID `json:"column"`
}

// LaneID identifies one of the four fixed lanes
type LaneID string

// The four lanes, in display order
const (
	LaneBacklog LaneID = "backlog"
	LaneTodo    LaneID = "todo"
	LaneDoing   LaneID = "doing"
	LaneDone    LaneID = "done"
)

var laneTitles = map[LaneID]string{
	LaneBacklog: "Backlog",
	LaneTodo:    "Todo",
	LaneDoing:   "In progress",
	LaneDone:    "Complete",
}

// Lanes returns every lane in display order
func Lanes() []LaneID {
	return []LaneID{LaneBacklog, LaneTodo, LaneDoing, LaneDone}
}

// Valid reports whether l is one of the four recognized lanes
func (l LaneID) Valid() bool {
	_, ok := laneTitles[l]
	return ok
}

// Title returns the display name of the lane
func (l LaneID) Title() string {
	if title, ok := laneTitles[l]; ok {
		return title
	}
	return string(l)
}

// Index returns the display position of the lane, or -1 if unknown
func (l LaneID) Index() int {
	for i, lane := range Lanes() {
		if lane == l {
			return i
		}
	}
	return -1
}

// ParseLane resolves a lane from its id or its display title, ignoring case
func ParseLane(s string) (LaneID, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, lane := range Lanes() {
		if needle == string(lane) || needle == strings.ToLower(lane.Title()) {
			return lane, nil
		}
	}
	switch needle {
	case "in-progress", "in_progress", "inprogress":
		return LaneDoing, nil
	case "completed":
		return LaneDone, nil
	}
	return "", ErrUnknownLane
}
