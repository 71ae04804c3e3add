// Package app wires storage, the board and configuration into one container
// shared by the TUI and the CLI commands.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/lanes/internal/board"
	"github.com/thenoetrevino/lanes/internal/config"
	"github.com/thenoetrevino/lanes/internal/storage"
)

// App holds the booted board and the storage behind it.
// This is the main application container that manages their lifecycles.
type App struct {
	Config *config.Config
	Board  *board.Board

	gateway storage.Gateway
	backend string
}

// New opens the configured storage and boots the board from it.
// This is the single entry point for creating the application container.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	options := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}

	backend := cfg.Storage.Backend
	gw := options.gateway
	if gw == nil {
		var err error
		gw, err = storage.Open(ctx, storage.Options{
			Backend: backend,
			Path:    cfg.Storage.Path,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open %s storage: %w", backend, err)
		}
	} else if _, ok := gw.(*storage.Memory); ok {
		backend = storage.BackendMemory
	}
	if backend == "" {
		backend = storage.BackendSQLite
	}

	b := board.New(gw, board.WithLogger(options.logger))
	b.Boot(ctx)

	options.logger.Info("board loaded", "backend", backend, "cards", len(b.Cards()))

	return &App{
		Config:  cfg,
		Board:   b,
		gateway: gw,
		backend: backend,
	}, nil
}

// Location describes where the board is stored, e.g. "sqlite ~/.lanes/board.db"
func (a *App) Location() string {
	if p, ok := a.gateway.(interface{ Path() string }); ok {
		return a.backend + " " + p.Path()
	}
	return a.backend
}

// Close releases the storage.
func (a *App) Close() error {
	return a.gateway.Close()
}
