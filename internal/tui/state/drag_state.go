package state

import (
	"github.com/thenoetrevino/lanes/internal/dragdrop"
	"github.com/thenoetrevino/lanes/internal/models"
)

// DragSession is a pointer drag in flight: from the press on a card until the
// release. It carries the dragged card's payload the way a browser drag event
// carries its data, and remembers which target the pointer is over so that
// crossing into another target can fire the matching leave.
type DragSession struct {
	Payload dragdrop.Payload

	// OverLane is the lane under the pointer, "" when outside every lane
	OverLane models.LaneID
	// OverBarrel is set while the pointer is over the burn barrel
	OverBarrel bool
}

// NewDragSession starts a session carrying payload
func NewDragSession(payload dragdrop.Payload) *DragSession {
	return &DragSession{Payload: payload}
}

// CardID returns the id of the dragged card
func (d *DragSession) CardID() string {
	return string(d.Payload)
}
