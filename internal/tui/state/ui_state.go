package state

import "github.com/thenoetrevino/lanes/internal/models"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active.
type Mode int

const (
	NormalMode  Mode = iota // Default mode: mouse drag and lane navigation
	AddCardMode             // Typing a new card title into a lane's form
)

func (m Mode) String() string {
	switch m {
	case AddCardMode:
		return "add-card"
	default:
		return "normal"
	}
}

// UIState manages the user interface state: terminal size, the focused lane,
// which lanes are scrolled into view and the current interaction mode.
type UIState struct {
	width       int
	height      int
	mode        Mode
	focusedLane int

	// Viewport state for horizontal scrolling
	viewportOffset int
	viewportSize   int

	// Per-lane vertical scroll, index of the first card shown
	laneScrollOffsets map[models.LaneID]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		viewportSize:      len(models.Lanes()),
		laneScrollOffsets: make(map[models.LaneID]int),
	}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// FocusedLane returns the lane that receives the add-card key.
func (s *UIState) FocusedLane() models.LaneID {
	return models.Lanes()[s.focusedLane]
}

// FocusLane focuses lane and scrolls it into view; unknown lanes are ignored.
func (s *UIState) FocusLane(lane models.LaneID) {
	if idx := lane.Index(); idx >= 0 {
		s.focusedLane = idx
		s.ensureFocusVisible()
	}
}

// FocusPrev moves focus one lane left. Returns false at the first lane.
func (s *UIState) FocusPrev() bool {
	if s.focusedLane == 0 {
		return false
	}
	s.focusedLane--
	s.ensureFocusVisible()
	return true
}

// FocusNext moves focus one lane right. Returns false at the last lane.
func (s *UIState) FocusNext() bool {
	if s.focusedLane >= len(models.Lanes())-1 {
		return false
	}
	s.focusedLane++
	s.ensureFocusVisible()
	return true
}

// ViewportOffset returns the index of the leftmost visible lane.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// ViewportSize returns the number of lanes that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// SetViewportSize updates how many lanes fit on screen, keeping the viewport
// within bounds and the focused lane visible.
func (s *UIState) SetViewportSize(size int) {
	lanes := len(models.Lanes())
	s.viewportSize = min(max(size, 1), lanes)
	if s.viewportOffset+s.viewportSize > lanes {
		s.viewportOffset = lanes - s.viewportSize
	}
	s.ensureFocusVisible()
}

// LaneVisible reports whether lane is inside the viewport.
func (s *UIState) LaneVisible(lane models.LaneID) bool {
	idx := lane.Index()
	return idx >= s.viewportOffset && idx < s.viewportOffset+s.viewportSize
}

// ScrollViewportLeft scrolls the viewport one lane to the left.
// Returns true if scrolling occurred, false if already at leftmost position.
// Focus moves along when it would leave the viewport.
func (s *UIState) ScrollViewportLeft() bool {
	if s.viewportOffset == 0 {
		return false
	}
	s.viewportOffset--
	if s.focusedLane >= s.viewportOffset+s.viewportSize {
		s.focusedLane = s.viewportOffset + s.viewportSize - 1
	}
	return true
}

// ScrollViewportRight scrolls the viewport one lane to the right.
// Returns true if scrolling occurred, false if already at rightmost position.
// Focus moves along when it would leave the viewport.
func (s *UIState) ScrollViewportRight() bool {
	if s.viewportOffset+s.viewportSize >= len(models.Lanes()) {
		return false
	}
	s.viewportOffset++
	if s.focusedLane < s.viewportOffset {
		s.focusedLane = s.viewportOffset
	}
	return true
}

func (s *UIState) ensureFocusVisible() {
	if s.focusedLane < s.viewportOffset {
		s.viewportOffset = s.focusedLane
	}
	if s.focusedLane >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = s.focusedLane - s.viewportSize + 1
	}
}

// LaneScrollOffset returns the index of the first card shown in lane.
func (s *UIState) LaneScrollOffset(lane models.LaneID) int {
	return s.laneScrollOffsets[lane]
}

// SetLaneScrollOffset updates the vertical scroll offset of lane.
func (s *UIState) SetLaneScrollOffset(lane models.LaneID, offset int) {
	s.laneScrollOffsets[lane] = max(0, offset)
}

// ScrollLaneUp moves lane's cards down one place to reveal the card above.
// Returns true if scrolling occurred, false if already at top.
func (s *UIState) ScrollLaneUp(lane models.LaneID) bool {
	offset := s.laneScrollOffsets[lane]
	if offset > 0 {
		s.laneScrollOffsets[lane] = offset - 1
		return true
	}
	return false
}

// ScrollLaneDown reveals the next card below in lane.
// Returns true if scrolling occurred, false if already at maxOffset.
func (s *UIState) ScrollLaneDown(lane models.LaneID, maxOffset int) bool {
	offset := s.laneScrollOffsets[lane]
	if offset < maxOffset {
		s.laneScrollOffsets[lane] = offset + 1
		return true
	}
	return false
}
