package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/storage"
)

// Board owns the authoritative card sequence and funnels every write through Update.
// Persistence hangs off the store listener and stays disabled until Boot has
// finished reading the saved board, so an empty startup state can never
// overwrite what is on disk.
type Board struct {
	ctx     context.Context
	store   *Store
	gateway storage.Gateway
	logger  *slog.Logger

	loaded  bool
	saveErr error
}

// Option configures a Board
type Option func(*Board)

// WithLogger sets the logger used for load and save failures
func WithLogger(logger *slog.Logger) Option {
	return func(b *Board) {
		b.logger = logger
	}
}

// New creates a board backed by gateway. Call Boot before use.
func New(gateway storage.Gateway, opts ...Option) *Board {
	b := &Board{
		ctx:     context.Background(),
		store:   NewStore(),
		gateway: gateway,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.store.Subscribe(b.persist)
	return b
}

// Boot loads the saved board, then enables save-on-change.
// Missing or unreadable state yields an empty board rather than an error.
func (b *Board) Boot(ctx context.Context) {
	b.ctx = ctx

	cards, err := b.gateway.Load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrCorruptState) {
			b.logger.Warn("saved board is unreadable, starting empty", "error", err)
		} else {
			b.logger.Error("failed to load board, starting empty", "error", err)
		}
		cards = nil
	}
	b.store.ReplaceAll(cards)

	b.loaded = true
	b.logger.Debug("board loaded", "cards", b.store.Len())
}

// Loaded reports whether Boot has completed
func (b *Board) Loaded() bool {
	return b.loaded
}

// Cards returns a copy of the current sequence
func (b *Board) Cards() []models.Card {
	return b.store.All()
}

// Update commits next as the new board state
func (b *Board) Update(next []models.Card) {
	b.store.ReplaceAll(next)
}

// Add creates a card at the end of lane
func (b *Board) Add(lane models.LaneID, title string) (models.Card, error) {
	card, err := NewCard(title, lane)
	if err != nil {
		return models.Card{}, err
	}
	b.Update(append(b.store.All(), card))
	return card, nil
}

// Move moves the card with id into lane, before beforeID or at the end for the append sentinel.
// Moving a card before itself in its own lane is a no-op and does not save.
func (b *Board) Move(id string, lane models.LaneID, beforeID string) error {
	if !lane.Valid() {
		return models.ErrUnknownLane
	}
	cards := b.store.All()
	idx := Find(cards, id)
	if idx < 0 {
		return fmt.Errorf("move %s: %w", id, models.ErrCardNotFound)
	}
	if selfMove(cards[idx], lane, beforeID) {
		b.logger.Debug("move onto itself ignored", "id", id)
		return nil
	}
	next, _ := Move(cards, id, lane, beforeID)
	b.Update(next)
	return nil
}

// Burn deletes the card with id
func (b *Board) Burn(id string) error {
	next, ok := Delete(b.store.All(), id)
	if !ok {
		return fmt.Errorf("burn %s: %w", id, models.ErrCardNotFound)
	}
	b.Update(next)
	return nil
}

// LastSaveError returns the most recent save failure, or nil after a successful save
func (b *Board) LastSaveError() error {
	return b.saveErr
}

func (b *Board) persist(cards []models.Card) {
	if !b.loaded {
		return
	}
	if err := b.gateway.Save(b.ctx, cards); err != nil {
		b.logger.Error("failed to save board", "error", err, "cards", len(cards))
		b.saveErr = err
		return
	}
	b.saveErr = nil
}
