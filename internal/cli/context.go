// Package cli holds what every board subcommand shares: opening the app from
// flags, output formatting and exit codes.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/app"
	"github.com/thenoetrevino/lanes/internal/config"
	"github.com/thenoetrevino/lanes/internal/logging"
)

type appKey struct{}

// WithApp stores a ready App in ctx. Commands run against it instead of
// opening storage, and leave closing it to the caller.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// CLI represents the CLI application context
type CLI struct {
	App *app.App

	owned bool
}

// GetCLIFromContext returns the App injected with WithApp, or opens one from
// the config file and the --storage and --path flags.
func GetCLIFromContext(cmd *cobra.Command) (*CLI, error) {
	ctx := cmd.Context()
	if a, ok := ctx.Value(appKey{}).(*app.App); ok {
		return &CLI{App: a}, nil
	}

	cfg, err := LoadConfig(cmd)
	if err != nil {
		return nil, err
	}

	// Board logs stay out of the command's output
	a, err := app.New(ctx, cfg, app.WithLogger(logging.Logger))
	if err != nil {
		return nil, err
	}
	return &CLI{App: a, owned: true}, nil
}

// LoadConfig loads the config file and applies the global storage flags
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if backend, _ := cmd.Flags().GetString("storage"); backend != "" {
		cfg.Storage.Backend = backend
	}
	if path, _ := cmd.Flags().GetString("path"); path != "" {
		cfg.Storage.Path = path
	}
	return cfg, nil
}

// Formatter builds the output formatter for cmd from its --json and --quiet flags
func Formatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quiet, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quiet,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
