package handlers

import (
	"context"
	"strconv"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/thenoetrevino/lanes/internal/board"
	"github.com/thenoetrevino/lanes/internal/config"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/storage"
	"github.com/thenoetrevino/lanes/internal/tui"
	"github.com/thenoetrevino/lanes/internal/tui/state"
)

// setupTestModel boots a board over an in-memory gateway seeded with cards
// and sizes the model so every lane and the barrel are on screen.
func setupTestModel(t *testing.T, cards []models.Card) (*tui.Model, *storage.Memory) {
	t.Helper()
	return setupSizedModel(t, cards, 160, 40)
}

// setupSizedModel is setupTestModel for a terminal of width by height
func setupSizedModel(t *testing.T, cards []models.Card, width, height int) (*tui.Model, *storage.Memory) {
	t.Helper()

	gw := storage.NewMemory()
	if cards != nil {
		if err := gw.Save(context.Background(), cards); err != nil {
			t.Fatalf("seeding gateway failed: %v", err)
		}
	}
	b := board.New(gw)
	b.Boot(context.Background())

	m := tui.InitialModel(b, config.Default(), "memory")
	Update(&m, tea.WindowSizeMsg{Width: width, Height: height})
	return &m, gw
}

func twoBacklogCards() []models.Card {
	return []models.Card{
		{ID: "1", Title: "A", Lane: models.LaneBacklog},
		{ID: "2", Title: "B", Lane: models.LaneBacklog},
	}
}

func ids(cards []models.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

func press(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func motion(x, y int) tea.MouseMotionMsg {
	return tea.MouseMotionMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func release(x, y int) tea.MouseReleaseMsg {
	return tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func wheel(x, y int, button tea.MouseButton) tea.MouseWheelMsg {
	return tea.MouseWheelMsg{X: x, Y: y, Button: button}
}

func backlogOf(n int) []models.Card {
	cards := make([]models.Card, n)
	for i := range cards {
		id := strconv.Itoa(i + 1)
		cards[i] = models.Card{ID: id, Title: "Card " + id, Lane: models.LaneBacklog}
	}
	return cards
}

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg(tea.Key{Text: s, Code: r})
}

// ============================================================================
// DRAG AND DROP
// ============================================================================

func TestDrag_ReorderWithinLane(t *testing.T) {
	m, gw := setupTestModel(t, twoBacklogCards())
	x := m.Layout().LaneX(models.LaneBacklog) + 2
	fromY := m.Layout().CardTop("2") + 1
	// Top border of card 1 sits one row below its slot, inside the upper half
	toY := m.Layout().CardTop("1")

	Update(m, press(x, fromY))
	if m.Session == nil || m.Session.CardID() != "2" {
		t.Fatalf("Session = %+v after press on card 2, want a drag of 2", m.Session)
	}

	Update(m, motion(x, toY))
	slot, ok := m.Drag.Highlighted(models.LaneBacklog)
	if !ok || slot.BeforeID != "1" {
		t.Fatalf("Highlighted = %+v, %v, want slot before 1", slot, ok)
	}

	Update(m, release(x, toY))

	if m.Session != nil {
		t.Error("Session not cleared after release")
	}
	if diff := cmp.Diff([]string{"2", "1"}, ids(m.Board.Cards())); diff != "" {
		t.Errorf("card order mismatch (-want +got):\n%s", diff)
	}
	saved, err := gw.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(m.Board.Cards(), saved); diff != "" {
		t.Errorf("persisted board mismatch (-want +got):\n%s", diff)
	}
	if _, lit := m.Drag.Highlighted(models.LaneBacklog); lit {
		t.Error("indicator still lit after drop")
	}
}

func TestDrag_ToOtherLaneAppends(t *testing.T) {
	m, _ := setupTestModel(t, []models.Card{
		{ID: "1", Title: "A", Lane: models.LaneBacklog},
		{ID: "2", Title: "B", Lane: models.LaneTodo},
	})
	layout := m.Layout()
	fromX := layout.LaneX(models.LaneBacklog) + 2
	toX := layout.LaneX(models.LaneDone) + 2

	Update(m, press(fromX, layout.CardTop("1")+1))
	Update(m, motion(toX, 30))
	Update(m, release(toX, 30))

	want := []models.Card{
		{ID: "2", Title: "B", Lane: models.LaneTodo},
		{ID: "1", Title: "A", Lane: models.LaneDone},
	}
	if diff := cmp.Diff(want, m.Board.Cards()); diff != "" {
		t.Errorf("cards mismatch (-want +got):\n%s", diff)
	}
}

func TestDrag_CrossingLanesMovesHighlight(t *testing.T) {
	m, _ := setupTestModel(t, twoBacklogCards())
	layout := m.Layout()
	backlogX := layout.LaneX(models.LaneBacklog) + 2
	todoX := layout.LaneX(models.LaneTodo) + 2

	Update(m, press(backlogX, layout.CardTop("1")+1))
	Update(m, motion(backlogX, layout.CardTop("2")))
	if !m.Drag.Active(models.LaneBacklog) {
		t.Fatal("backlog not active while hovered")
	}

	Update(m, motion(todoX, 6))
	if m.Drag.Active(models.LaneBacklog) {
		t.Error("backlog still active after the pointer left it")
	}
	if _, lit := m.Drag.Highlighted(models.LaneBacklog); lit {
		t.Error("backlog indicator still lit after the pointer left it")
	}
	if !m.Drag.Active(models.LaneTodo) {
		t.Error("todo not active while hovered")
	}
	if slot, ok := m.Drag.Highlighted(models.LaneTodo); !ok || !slot.IsAppend() {
		t.Errorf("todo highlight = %+v, %v, want the append slot", slot, ok)
	}
}

func TestDrag_SelfDropIsNoOp(t *testing.T) {
	m, gw := setupTestModel(t, twoBacklogCards())
	x := m.Layout().LaneX(models.LaneBacklog) + 2
	y := m.Layout().CardTop("2")

	Update(m, press(x, y))
	Update(m, release(x, y))

	if diff := cmp.Diff(twoBacklogCards(), m.Board.Cards()); diff != "" {
		t.Errorf("cards changed by self drop (-want +got):\n%s", diff)
	}
	if gw.Saves() != 1 {
		t.Errorf("Saves() = %d, want only the seed save", gw.Saves())
	}
}

func TestDrag_BurnBarrelDeletes(t *testing.T) {
	m, gw := setupTestModel(t, twoBacklogCards())
	layout := m.Layout()
	bx, by := layout.Barrel()

	Update(m, press(layout.LaneX(models.LaneBacklog)+2, layout.CardTop("1")+1))
	Update(m, motion(bx+2, by+2))
	if !m.Drag.DeleteActive() {
		t.Fatal("barrel not active while hovered")
	}
	Update(m, release(bx+2, by+2))

	if diff := cmp.Diff([]string{"2"}, ids(m.Board.Cards())); diff != "" {
		t.Errorf("cards after burn mismatch (-want +got):\n%s", diff)
	}
	if m.Drag.DeleteActive() {
		t.Error("barrel still active after drop")
	}
	saved, _ := gw.Load(context.Background())
	if diff := cmp.Diff([]string{"2"}, ids(saved)); diff != "" {
		t.Errorf("persisted cards mismatch (-want +got):\n%s", diff)
	}
}

func TestDrag_LeavingBarrelDeactivatesIt(t *testing.T) {
	m, _ := setupTestModel(t, twoBacklogCards())
	layout := m.Layout()
	bx, by := layout.Barrel()
	x := layout.LaneX(models.LaneBacklog) + 2

	Update(m, press(x, layout.CardTop("1")+1))
	Update(m, motion(bx+2, by+2))
	Update(m, motion(x, 20))

	if m.Drag.DeleteActive() {
		t.Error("barrel still active after the pointer left it")
	}
	if !m.Drag.Active(models.LaneBacklog) {
		t.Error("backlog not active after the pointer returned")
	}
}

func TestDrag_ReleaseOutsideCancels(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"header row", 2, 0},
		{"right of the barrel", 158, 30},
		{"status bar row", 2, 39},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, gw := setupTestModel(t, twoBacklogCards())
			x := m.Layout().LaneX(models.LaneBacklog) + 2

			Update(m, press(x, m.Layout().CardTop("1")+1))
			Update(m, motion(x, 20))
			Update(m, release(tt.x, tt.y))

			if diff := cmp.Diff(twoBacklogCards(), m.Board.Cards()); diff != "" {
				t.Errorf("cards changed (-want +got):\n%s", diff)
			}
			if gw.Saves() != 1 {
				t.Errorf("Saves() = %d, want only the seed save", gw.Saves())
			}
			for _, lane := range models.Lanes() {
				if m.Drag.Active(lane) {
					t.Errorf("lane %s still active after cancel", lane)
				}
			}
		})
	}
}

func TestDrag_EscCancels(t *testing.T) {
	m, _ := setupTestModel(t, twoBacklogCards())
	x := m.Layout().LaneX(models.LaneBacklog) + 2

	Update(m, press(x, m.Layout().CardTop("1")+1))
	Update(m, motion(x, 20))
	Update(m, key("esc"))

	if m.Session != nil {
		t.Error("Session not cleared by esc")
	}
	if m.Drag.Active(models.LaneBacklog) {
		t.Error("lane still active after esc")
	}

	// A stray release after the cancel must not move anything
	Update(m, release(x, 20))
	if diff := cmp.Diff([]string{"1", "2"}, ids(m.Board.Cards())); diff != "" {
		t.Errorf("cards changed (-want +got):\n%s", diff)
	}
}

func TestMotionWithoutSessionIsIgnored(t *testing.T) {
	m, _ := setupTestModel(t, twoBacklogCards())

	Update(m, motion(m.Layout().LaneX(models.LaneBacklog)+2, 5))

	if m.Drag.Active(models.LaneBacklog) {
		t.Error("lane activated without a drag")
	}
}

func TestPressOnEmptySpaceStartsNothing(t *testing.T) {
	m, _ := setupTestModel(t, twoBacklogCards())

	Update(m, press(m.Layout().LaneX(models.LaneTodo)+2, 30))

	if m.Session != nil {
		t.Errorf("Session = %+v, want nil", m.Session)
	}
}

// ============================================================================
// SMALL TERMINALS
// ============================================================================

func TestSmallTerminal_BurnBarrelReachable(t *testing.T) {
	for _, size := range []struct{ w, h int }{{80, 24}, {120, 30}} {
		t.Run(strconv.Itoa(size.w)+"x"+strconv.Itoa(size.h), func(t *testing.T) {
			m, gw := setupSizedModel(t, twoBacklogCards(), size.w, size.h)
			layout := m.Layout()
			bx, by := layout.Barrel()
			if bx+2 >= size.w || by+2 >= size.h-1 {
				t.Fatalf("barrel at %d,%d is off a %dx%d screen", bx, by, size.w, size.h)
			}

			Update(m, press(layout.LaneX(models.LaneBacklog)+2, layout.CardTop("1")+1))
			Update(m, motion(bx+2, by+2))
			Update(m, release(bx+2, by+2))

			if diff := cmp.Diff([]string{"2"}, ids(m.Board.Cards())); diff != "" {
				t.Errorf("cards after burn mismatch (-want +got):\n%s", diff)
			}
			saved, _ := gw.Load(context.Background())
			if diff := cmp.Diff([]string{"2"}, ids(saved)); diff != "" {
				t.Errorf("persisted cards mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSmallTerminal_EveryLaneOnScreenAt120(t *testing.T) {
	m, _ := setupSizedModel(t, twoBacklogCards(), 120, 30)
	layout := m.Layout()
	bx, _ := layout.Barrel()

	for _, lane := range models.Lanes() {
		x := layout.LaneX(lane)
		if x < 0 || x+layout.LaneWidth() > bx {
			t.Errorf("lane %s at x=%d is not fully on screen left of the barrel at %d", lane, x, bx)
		}
	}

	Update(m, press(layout.LaneX(models.LaneBacklog)+2, layout.CardTop("1")+1))
	Update(m, motion(layout.LaneX(models.LaneDone)+2, 20))
	Update(m, release(layout.LaneX(models.LaneDone)+2, 20))

	if got := m.Board.Cards()[1]; got.ID != "1" || got.Lane != models.LaneDone {
		t.Errorf("last card = %+v, want 1 appended to done", got)
	}
}

func TestSmallTerminal_DragScrollsToHiddenLane(t *testing.T) {
	m, gw := setupSizedModel(t, twoBacklogCards(), 80, 24)
	layout := m.Layout()
	if layout.LaneX(models.LaneDone) != -1 {
		t.Fatal("done visible at 80 columns, expected the viewport to hide it")
	}

	Update(m, press(layout.LaneX(models.LaneBacklog)+2, layout.CardTop("1")+1))

	// Each motion over ▶ scrolls one lane
	for i := 0; i < 2; i++ {
		_, right := m.Layout().Markers()
		if right < 0 {
			t.Fatalf("▶ marker missing after %d scrolls", i)
		}
		Update(m, motion(right, 10+i))
	}
	if m.Drag.Active(models.LaneBacklog) {
		t.Error("backlog still active after it scrolled out of view")
	}

	doneX := m.Layout().LaneX(models.LaneDone)
	if doneX < 0 {
		t.Fatal("done still hidden after dragging over ▶")
	}
	Update(m, motion(doneX+2, 15))
	Update(m, release(doneX+2, 15))

	want := []models.Card{
		{ID: "2", Title: "B", Lane: models.LaneBacklog},
		{ID: "1", Title: "A", Lane: models.LaneDone},
	}
	if diff := cmp.Diff(want, m.Board.Cards()); diff != "" {
		t.Errorf("cards mismatch (-want +got):\n%s", diff)
	}
	saved, _ := gw.Load(context.Background())
	if diff := cmp.Diff(want, saved); diff != "" {
		t.Errorf("persisted cards mismatch (-want +got):\n%s", diff)
	}
}

func TestSmallTerminal_ViewportKeys(t *testing.T) {
	m, _ := setupSizedModel(t, nil, 80, 24)

	Update(m, key("]"))
	Update(m, key("]"))
	if m.Layout().LaneX(models.LaneDone) < 0 {
		t.Fatal("done hidden after scrolling right twice")
	}
	if m.Layout().LaneX(models.LaneBacklog) != -1 {
		t.Error("backlog still visible after scrolling right twice")
	}

	// Focusing a hidden lane scrolls it back into view
	for range 3 {
		Update(m, key("h"))
	}
	if m.UiState.FocusedLane() != models.LaneBacklog || m.Layout().LaneX(models.LaneBacklog) < 0 {
		t.Errorf("focus = %s at x=%d, want backlog on screen", m.UiState.FocusedLane(), m.Layout().LaneX(models.LaneBacklog))
	}
}

func TestSmallTerminal_ReleaseOnStatusBarCancels(t *testing.T) {
	m, gw := setupSizedModel(t, twoBacklogCards(), 80, 24)
	x := m.Layout().LaneX(models.LaneBacklog) + 2

	Update(m, press(x, m.Layout().CardTop("1")+1))
	Update(m, motion(x, 23))
	Update(m, release(x, 23))

	if diff := cmp.Diff(twoBacklogCards(), m.Board.Cards()); diff != "" {
		t.Errorf("cards changed (-want +got):\n%s", diff)
	}
	if gw.Saves() != 1 {
		t.Errorf("Saves() = %d, want only the seed save", gw.Saves())
	}
}

func TestFullLane_AddRowStaysVisible(t *testing.T) {
	m, _ := setupSizedModel(t, backlogOf(8), 80, 24)
	layout := m.Layout()

	row := layout.AddRow(models.LaneBacklog)
	if row < 0 || row >= 23 {
		t.Fatalf("AddRow(backlog) = %d, want a row above the status bar", row)
	}
	if layout.CardTop("8") != -1 {
		t.Error("card 8 rendered although the lane overflows")
	}

	Update(m, press(layout.LaneX(models.LaneBacklog)+2, row))
	if m.Form == nil || m.Form.Lane() != models.LaneBacklog {
		t.Fatalf("form = %v, want open in backlog", m.Form)
	}
	m.Form.SetValue("Newest")
	Update(m, key("enter"))

	cards := m.Board.Cards()
	added := cards[len(cards)-1]
	if added.Title != "Newest" {
		t.Fatalf("last card = %+v, want Newest", added)
	}
	if m.Layout().CardTop(added.ID) < 0 {
		t.Error("added card scrolled out of view")
	}
}

func TestFullLane_WheelScrolls(t *testing.T) {
	m, _ := setupSizedModel(t, backlogOf(8), 80, 24)
	x := m.Layout().LaneX(models.LaneBacklog) + 2
	maxScroll := m.Layout().MaxScroll(models.LaneBacklog)
	if maxScroll == 0 {
		t.Fatal("backlog of 8 cards fits at 80x24, expected it to overflow")
	}

	for i := 0; i < maxScroll+2; i++ {
		Update(m, wheel(x, 10, tea.MouseWheelDown))
	}
	if got := m.UiState.LaneScrollOffset(models.LaneBacklog); got != maxScroll {
		t.Errorf("offset = %d after scrolling past the end, want %d", got, maxScroll)
	}
	if m.Layout().CardTop("8") < 0 || m.Layout().CardTop("1") != -1 {
		t.Error("scrolled lane should show the last card and hide the first")
	}

	Update(m, wheel(x, 10, tea.MouseWheelUp))
	if got := m.UiState.LaneScrollOffset(models.LaneBacklog); got != maxScroll-1 {
		t.Errorf("offset = %d after scrolling up, want %d", got, maxScroll-1)
	}
}

func TestFullLane_DragOverUpRowScrolls(t *testing.T) {
	m, gw := setupSizedModel(t, backlogOf(8), 80, 24)
	x := m.Layout().LaneX(models.LaneBacklog) + 2
	maxScroll := m.Layout().MaxScroll(models.LaneBacklog)

	for range maxScroll {
		Update(m, key("j"))
	}
	top := m.Layout().CardTop("8")
	if top < 0 {
		t.Fatal("card 8 not visible after scrolling down")
	}

	Update(m, press(x, top+1))
	up, _ := m.Layout().ScrollRows(models.LaneBacklog)
	for range maxScroll {
		Update(m, motion(x, up))
	}
	if got := m.UiState.LaneScrollOffset(models.LaneBacklog); got != 0 {
		t.Fatalf("offset = %d after dragging over ▲, want 0", got)
	}

	toY := m.Layout().CardTop("1")
	Update(m, motion(x, toY))
	Update(m, release(x, toY))

	want := []string{"8", "1", "2", "3", "4", "5", "6", "7"}
	if diff := cmp.Diff(want, ids(m.Board.Cards())); diff != "" {
		t.Errorf("card order mismatch (-want +got):\n%s", diff)
	}
	saved, _ := gw.Load(context.Background())
	if diff := cmp.Diff(want, ids(saved)); diff != "" {
		t.Errorf("persisted order mismatch (-want +got):\n%s", diff)
	}
}

// ============================================================================
// ADD CARD FORM
// ============================================================================

func TestAddCard_KeyOpensFormInFocusedLane(t *testing.T) {
	m, _ := setupTestModel(t, nil)

	Update(m, key("l"))
	Update(m, key("a"))

	if m.UiState.Mode() != state.AddCardMode {
		t.Fatalf("Mode = %v, want AddCardMode", m.UiState.Mode())
	}
	if m.Form == nil || m.Form.Lane() != models.LaneTodo {
		t.Fatalf("form lane = %v, want todo", m.Form)
	}
	if row := m.Layout().AddRow(models.LaneTodo); row != -1 {
		t.Errorf("AddRow(todo) = %d while the form is open, want -1", row)
	}
}

func TestAddCard_ClickOnAddRowOpensForm(t *testing.T) {
	m, _ := setupTestModel(t, nil)
	layout := m.Layout()

	Update(m, press(layout.LaneX(models.LaneDoing)+2, layout.AddRow(models.LaneDoing)))

	if m.Form == nil || m.Form.Lane() != models.LaneDoing {
		t.Fatalf("form = %v, want open in doing", m.Form)
	}
	if m.UiState.FocusedLane() != models.LaneDoing {
		t.Errorf("FocusedLane = %v, want doing", m.UiState.FocusedLane())
	}
}

func TestAddCard_Submit(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTitle string
		wantOpen  bool
	}{
		{"trimmed title", "  Write docs  ", "Write docs", false},
		{"blank rejected", "   ", "", true},
		{"empty rejected", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, gw := setupTestModel(t, twoBacklogCards())
			Update(m, key("a"))
			m.Form.SetValue(tt.input)

			Update(m, key("enter"))

			cards := m.Board.Cards()
			if tt.wantOpen {
				if m.Form == nil {
					t.Error("form closed after rejected input")
				}
				if len(cards) != 2 {
					t.Errorf("len(cards) = %d, want 2", len(cards))
				}
				if gw.Saves() != 1 {
					t.Errorf("Saves() = %d, want only the seed save", gw.Saves())
				}
				return
			}

			if m.Form != nil || m.UiState.Mode() != state.NormalMode {
				t.Error("form still open after submit")
			}
			if len(cards) != 3 {
				t.Fatalf("len(cards) = %d, want 3", len(cards))
			}
			last := cards[2]
			if last.Title != tt.wantTitle || last.Lane != models.LaneBacklog || last.ID == "" {
				t.Errorf("added card = %+v, want %q in backlog with an id", last, tt.wantTitle)
			}
		})
	}
}

func TestAddCard_EscClosesWithoutAdding(t *testing.T) {
	m, _ := setupTestModel(t, nil)
	Update(m, key("a"))
	m.Form.SetValue("never mind")

	Update(m, key("esc"))

	if m.Form != nil || m.UiState.Mode() != state.NormalMode {
		t.Error("form still open after esc")
	}
	if len(m.Board.Cards()) != 0 {
		t.Errorf("cards = %v, want none", m.Board.Cards())
	}
}

func TestAddCard_TypingGoesToForm(t *testing.T) {
	m, _ := setupTestModel(t, nil)
	Update(m, key("a"))

	// "q" and "l" are bound in normal mode and must reach the input here
	for _, s := range []string{"q", "l"} {
		Update(m, key(s))
	}

	if m.Form == nil {
		t.Fatal("form closed while typing")
	}
	if m.Form.Value() != "ql" {
		t.Errorf("Value() = %q, want %q", m.Form.Value(), "ql")
	}
}

// ============================================================================
// NAVIGATION
// ============================================================================

func TestLaneFocusNavigation(t *testing.T) {
	m, _ := setupTestModel(t, nil)

	Update(m, key("h"))
	if got := m.UiState.FocusedLane(); got != models.LaneBacklog {
		t.Errorf("h from backlog focused %v, want backlog", got)
	}

	for range 5 {
		Update(m, key("l"))
	}
	if got := m.UiState.FocusedLane(); got != models.LaneDone {
		t.Errorf("focus after repeated l = %v, want done", got)
	}
}

func TestQuit(t *testing.T) {
	m, _ := setupTestModel(t, nil)

	cmd := Update(m, key("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}
