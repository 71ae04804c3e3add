// Package storage persists the board as one serialized card array under a single key
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/thenoetrevino/lanes/internal/models"
)

// StorageKey is the well-known key the card array is saved under
const StorageKey = "cards"

// Storage errors
var (
	// ErrCorruptState indicates saved data that could not be decoded
	ErrCorruptState = errors.New("saved board is malformed")

	// ErrUnknownBackend indicates a backend name Open does not recognize
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Backend names accepted by Open
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Gateway loads and saves the whole card sequence.
// Load returns nil, nil when nothing has been saved yet.
type Gateway interface {
	Load(ctx context.Context) ([]models.Card, error)
	Save(ctx context.Context, cards []models.Card) error
	Close() error
}

// Options selects and locates a backend
type Options struct {
	Backend string
	// Path is the database file for sqlite and the directory for file.
	// Empty means the default under ~/.lanes.
	Path string
}

// Open returns the gateway named by opts.Backend
func Open(ctx context.Context, opts Options) (Gateway, error) {
	switch opts.Backend {
	case BackendSQLite, "":
		return OpenSQLite(ctx, opts.Path)
	case BackendFile:
		return OpenFile(opts.Path)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}

// encode serializes cards into the persisted layout
func encode(cards []models.Card) ([]byte, error) {
	if cards == nil {
		cards = []models.Card{}
	}
	return json.Marshal(cards)
}

// decode parses the persisted layout. Empty input means no saved board.
func decode(data []byte) ([]models.Card, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var cards []models.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	for i, card := range cards {
		if card.ID == "" || !card.Lane.Valid() {
			return nil, fmt.Errorf("%w: card %d has id %q and lane %q", ErrCorruptState, i, card.ID, card.Lane)
		}
	}
	return cards, nil
}
