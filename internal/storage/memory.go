package storage

import (
	"context"
	"sync"

	"github.com/thenoetrevino/lanes/internal/models"
)

// Memory keeps the encoded board in process. Used for ephemeral runs and tests.
type Memory struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

// NewMemory creates an empty in-memory gateway
func NewMemory() *Memory {
	return &Memory{}
}

// NewMemoryWithData creates an in-memory gateway preloaded with raw saved data
func NewMemoryWithData(data []byte) *Memory {
	return &Memory{data: data}
}

// Load decodes the last saved board
func (m *Memory) Load(ctx context.Context) ([]models.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return decode(m.data)
}

// Save replaces the stored board
func (m *Memory) Save(ctx context.Context, cards []models.Card) error {
	data, err := encode(cards)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
	m.saves++
	return nil
}

// Saves returns how many times Save has succeeded
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Close is a no-op
func (m *Memory) Close() error {
	return nil
}
