// Package forms wraps bubbles inputs used by the board
package forms

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/lanes/internal/models"
)

// maxTitleLength caps card titles typed into the form
const maxTitleLength = 200

// AddCardForm is the single-line form revealed by a lane's "Add card" affordance
type AddCardForm struct {
	lane  models.LaneID
	input textinput.Model
}

// NewAddCardForm creates a focused form that will add to lane
func NewAddCardForm(lane models.LaneID) (*AddCardForm, tea.Cmd) {
	ti := textinput.New()
	ti.Placeholder = "Add a new task"
	ti.Prompt = ""
	ti.CharLimit = maxTitleLength

	return &AddCardForm{lane: lane, input: ti}, ti.Focus()
}

// Update handles messages
func (f *AddCardForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// View renders the text input
func (f *AddCardForm) View() string {
	return f.input.View()
}

// SetWidth sets how many cells of the title are visible while typing
func (f *AddCardForm) SetWidth(w int) {
	f.input.SetWidth(max(w, 1))
}

// Lane returns the lane the form was opened in
func (f *AddCardForm) Lane() models.LaneID {
	return f.lane
}

// Value returns the raw text typed so far
func (f *AddCardForm) Value() string {
	return f.input.Value()
}

// SetValue replaces the text, used by tests and paste handling
func (f *AddCardForm) SetValue(s string) {
	f.input.SetValue(s)
}

// Title returns the trimmed title and whether it can be submitted
func (f *AddCardForm) Title() (string, bool) {
	title := strings.TrimSpace(f.input.Value())
	return title, title != ""
}
