package app

import (
	"log/slog"

	"github.com/thenoetrevino/lanes/internal/storage"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	gateway storage.Gateway
	logger  *slog.Logger
}

// WithGateway uses gw instead of opening the configured storage.
// The App takes ownership and closes it.
func WithGateway(gw storage.Gateway) Option {
	return func(cfg *appConfig) {
		cfg.gateway = gw
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
