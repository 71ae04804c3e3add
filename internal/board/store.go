// Package board holds the card sequence and every transition applied to it.
package board

import "github.com/thenoetrevino/lanes/internal/models"

// Listener is notified after every ReplaceAll with the committed sequence
type Listener func(cards []models.Card)

// Store is the flat ordered list of all cards across all lanes.
// Order within the list defines the display order inside each lane.
// ReplaceAll is the only mutator; there is no partial update.
type Store struct {
	cards     []models.Card
	listeners []Listener
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// All returns a copy of the current sequence
func (s *Store) All() []models.Card {
	return clone(s.cards)
}

// Len returns the number of cards on the board
func (s *Store) Len() int {
	return len(s.cards)
}

// ReplaceAll swaps in the next sequence wholesale and notifies listeners.
// No validation happens here; callers never produce duplicate ids or unknown lanes.
func (s *Store) ReplaceAll(next []models.Card) {
	s.cards = clone(next)
	for _, fn := range s.listeners {
		fn(s.All())
	}
}

// Subscribe registers a listener fired synchronously after every ReplaceAll
func (s *Store) Subscribe(fn Listener) {
	s.listeners = append(s.listeners, fn)
}

func clone(cards []models.Card) []models.Card {
	if cards == nil {
		return nil
	}
	out := make([]models.Card, len(cards))
	copy(out, cards)
	return out
}
