package dragdrop

import (
	"github.com/thenoetrevino/lanes/internal/board"
	"github.com/thenoetrevino/lanes/internal/models"
)

// Payload identifies the dragged card. It travels with the drag session from
// Start to Drop, so the controller itself never remembers which card is in flight.
type Payload string

// LaneState is the drag state of a single lane
type LaneState int

const (
	StateIdle    LaneState = iota // No drag over this lane yet
	StateOver                     // A card is being dragged over the lane
	StateDropped                  // The last drag session ended with a drop here
	StateLeft                     // The last drag session left the lane
)

func (s LaneState) String() string {
	switch s {
	case StateOver:
		return "over"
	case StateDropped:
		return "dropped"
	case StateLeft:
		return "left"
	default:
		return "idle"
	}
}

// DropResult describes what a drop did to the board
type DropResult int

const (
	DropMoved     DropResult = iota // Card moved and the board committed
	DropUnchanged                   // Card dropped back onto its own slot
	DropAborted                     // Card or target slot missing; board untouched
)

func (r DropResult) String() string {
	switch r {
	case DropMoved:
		return "moved"
	case DropUnchanged:
		return "unchanged"
	default:
		return "aborted"
	}
}

// Committer is the board's single write entry point
type Committer interface {
	Cards() []models.Card
	Update(next []models.Card)
}

type laneDrag struct {
	state     LaneState
	highlight *Slot
}

// Controller runs the drag lifecycle for every lane and the burn barrel
type Controller struct {
	offset      int
	lanes       map[models.LaneID]*laneDrag
	deleteHover bool
}

// NewController creates a controller using offset as the locator's distance bias
func NewController(offset int) *Controller {
	c := &Controller{
		offset: offset,
		lanes:  make(map[models.LaneID]*laneDrag, len(models.Lanes())),
	}
	for _, lane := range models.Lanes() {
		c.lanes[lane] = &laneDrag{}
	}
	return c
}

// Start begins a drag session for card and returns the payload to carry
func (c *Controller) Start(card models.Card) Payload {
	return Payload(card.ID)
}

// Over marks lane active and highlights the slot nearest to y, clearing any
// previous highlight in that lane. It returns the highlighted slot.
func (c *Controller) Over(lane models.LaneID, y int, slots []Slot) (Slot, bool) {
	ld := c.lane(lane)
	ld.state = StateOver

	slot, ok := Nearest(slots, lane, y, c.offset)
	if !ok {
		ld.highlight = nil
		return Slot{}, false
	}
	ld.highlight = &slot
	return slot, true
}

// Leave clears the active state and highlight of lane
func (c *Controller) Leave(lane models.LaneID) {
	ld := c.lane(lane)
	if ld.state == StateOver {
		ld.state = StateLeft
	}
	ld.highlight = nil
}

// Drop resolves the target slot exactly like Over, clears lane styling and
// commits the move through target. Dropping a card onto the slot directly
// before itself, in its own lane, leaves the board as it was.
func (c *Controller) Drop(p Payload, lane models.LaneID, y int, slots []Slot, target Committer) DropResult {
	ld := c.lane(lane)
	ld.state = StateDropped
	ld.highlight = nil

	slot, ok := Nearest(slots, lane, y, c.offset)
	if !ok {
		return DropAborted
	}

	cards := target.Cards()
	idx := board.Find(cards, string(p))
	if idx < 0 {
		return DropAborted
	}
	if slot.BeforeID == string(p) && cards[idx].Lane == lane {
		return DropUnchanged
	}

	next, moved := board.Move(cards, string(p), lane, slot.BeforeID)
	if !moved {
		return DropAborted
	}
	target.Update(next)
	return DropMoved
}

// OverDelete marks the burn barrel active
func (c *Controller) OverDelete() {
	c.deleteHover = true
}

// LeaveDelete clears the burn barrel's active state
func (c *Controller) LeaveDelete() {
	c.deleteHover = false
}

// DropOnDelete removes the dragged card from the board. No confirmation.
func (c *Controller) DropOnDelete(p Payload, target Committer) bool {
	c.deleteHover = false
	next, ok := board.Delete(target.Cards(), string(p))
	if !ok {
		return false
	}
	target.Update(next)
	return true
}

// Cancel ends a drag session that was released outside every target
func (c *Controller) Cancel() {
	for lane := range c.lanes {
		c.Leave(lane)
	}
	c.deleteHover = false
}

// State returns the drag state of lane
func (c *Controller) State(lane models.LaneID) LaneState {
	return c.lane(lane).state
}

// Active reports whether a card is currently dragged over lane
func (c *Controller) Active(lane models.LaneID) bool {
	return c.lane(lane).state == StateOver
}

// Highlighted returns the highlighted slot of lane, if any
func (c *Controller) Highlighted(lane models.LaneID) (Slot, bool) {
	ld := c.lane(lane)
	if ld.highlight == nil {
		return Slot{}, false
	}
	return *ld.highlight, true
}

// DeleteActive reports whether a card is hovering over the burn barrel
func (c *Controller) DeleteActive() bool {
	return c.deleteHover
}

func (c *Controller) lane(lane models.LaneID) *laneDrag {
	ld, ok := c.lanes[lane]
	if !ok {
		ld = &laneDrag{}
		c.lanes[lane] = ld
	}
	return ld
}
