package board

import (
	"strings"

	"github.com/google/uuid"
	"github.com/thenoetrevino/lanes/internal/models"
)

// NewCard builds a card for lane with a fresh id.
// The title is trimmed; an empty result is rejected.
func NewCard(title string, lane models.LaneID) (models.Card, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Card{}, models.ErrEmptyTitle
	}
	if !lane.Valid() {
		return models.Card{}, models.ErrUnknownLane
	}
	return models.Card{
		ID:    uuid.NewString(),
		Title: title,
		Lane:  lane,
	}, nil
}

// Move reassigns the card with id to lane and reinserts it immediately before
// the card beforeID, or at the end of the sequence for the append sentinel.
// If the before card is gone the card is appended instead.
// Returns false and the input unchanged when id is not on the board.
// Inserting a card before itself in its own lane leaves the input unchanged.
func Move(cards []models.Card, id string, lane models.LaneID, beforeID string) ([]models.Card, bool) {
	idx := Find(cards, id)
	if idx < 0 {
		return cards, false
	}
	if selfMove(cards[idx], lane, beforeID) {
		return cards, true
	}

	moved := cards[idx]
	moved.Lane = lane

	next := make([]models.Card, 0, len(cards))
	next = append(next, cards[:idx]...)
	next = append(next, cards[idx+1:]...)

	if beforeID == models.AppendSentinel {
		return append(next, moved), true
	}

	at := Find(next, beforeID)
	if at < 0 {
		return append(next, moved), true
	}

	next = append(next, models.Card{})
	copy(next[at+1:], next[at:])
	next[at] = moved
	return next, true
}

func selfMove(card models.Card, lane models.LaneID, beforeID string) bool {
	return beforeID == card.ID && card.Lane == lane
}

// Delete removes the card with id, keeping the order of the rest.
// Returns false and the input unchanged when id is not on the board.
func Delete(cards []models.Card, id string) ([]models.Card, bool) {
	idx := Find(cards, id)
	if idx < 0 {
		return cards, false
	}
	next := make([]models.Card, 0, len(cards)-1)
	next = append(next, cards[:idx]...)
	next = append(next, cards[idx+1:]...)
	return next, true
}
