package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/lanes/internal/models"
)

// File stores the board as <dir>/cards.json
type File struct {
	path string
}

// OpenFile creates the directory if needed and returns a file gateway.
// An empty dir means ~/.lanes.
func OpenFile(dir string) (*File, error) {
	if dir == "" {
		home, err := DataDir()
		if err != nil {
			return nil, err
		}
		dir = home
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &File{path: filepath.Join(dir, StorageKey+".json")}, nil
}

// Path returns the file the board is written to
func (f *File) Path() string {
	return f.path
}

// Load reads the saved board; a missing file is a first run
func (f *File) Load(ctx context.Context) ([]models.Card, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.path, err)
	}
	return decode(data)
}

// Save writes the board to a temp file and renames it into place
func (f *File) Save(ctx context.Context, cards []models.Card) error {
	data, err := encode(cards)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), "."+StorageKey+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write board: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write board: %w", err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", f.path, err)
	}
	return nil
}

// Close is a no-op
func (f *File) Close() error {
	return nil
}

// DataDir returns ~/.lanes, the default home for the database, board file and logs
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".lanes"), nil
}
