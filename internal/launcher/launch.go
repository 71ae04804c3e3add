// Package launcher runs the interactive board.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/lanes/internal/app"
	"github.com/thenoetrevino/lanes/internal/config"
	"github.com/thenoetrevino/lanes/internal/logging"
	"github.com/thenoetrevino/lanes/internal/tui/core"
)

// Launch starts the TUI application on the storage named by cfg
func Launch(ctx context.Context, cfg *config.Config, level slog.Level) error {
	// Initialize logging to file before anything else
	logFile, err := logging.Init("", level)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	application, err := app.New(ctx, cfg, app.WithLogger(logging.Logger))
	if err != nil {
		return fmt.Errorf("failed to open board: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing storage", "error", err)
		}
	}()

	tuiApp := core.New(application.Board, cfg, application.Location())
	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}

	slog.Info("lanes exiting", "cards", len(application.Board.Cards()))
	return nil
}
