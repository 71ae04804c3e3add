// Package dragdrop resolves drop positions and runs the drag lifecycle of the board.
package dragdrop

import (
	"math"

	"github.com/thenoetrevino/lanes/internal/models"
)

// DefaultDistanceOffset biases every slot's decision boundary this many rows below
// its indicator, which lands on the middle row of a three-row card.
const DefaultDistanceOffset = 2

// Slot is a candidate insertion point: the gap before BeforeID, or the end of
// the lane when BeforeID is the append sentinel.
type Slot struct {
	BeforeID string
	Lane     models.LaneID
	// MidY is the screen row of the slot's indicator line
	MidY int
}

// IsAppend reports whether the slot is the end-of-lane sentinel
func (s Slot) IsAppend() bool {
	return s.BeforeID == models.AppendSentinel
}

// Nearest picks the slot in lane that a pointer at row y drops into.
// Among the lane's slots it maximizes y - (MidY + offset) over the negative
// values, i.e. the first slot whose biased boundary is still below the pointer.
// When the pointer is past every boundary the lane's last slot wins.
// Slots of other lanes are ignored. ok is false when lane has no slots.
func Nearest(slots []Slot, lane models.LaneID, y, offset int) (Slot, bool) {
	var (
		best     Slot
		bestDist = math.MinInt
		last     Slot
		found    bool
		seen     bool
	)
	for _, slot := range slots {
		if slot.Lane != lane {
			continue
		}
		seen = true
		last = slot

		dist := y - (slot.MidY + offset)
		if dist < 0 && dist > bestDist {
			best = slot
			bestDist = dist
			found = true
		}
	}
	if !seen {
		return Slot{}, false
	}
	if !found {
		return last, true
	}
	return best, true
}
