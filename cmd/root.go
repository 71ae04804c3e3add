package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/cli/card"
	"github.com/thenoetrevino/lanes/internal/launcher"
)

// NewRootCmd builds the lanes command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lanes",
		Short: "Lanes - a drag-and-drop kanban board for the terminal",
		Long: `Lanes is a single-user kanban board with four lanes: Backlog, Todo,
In progress and Complete. Run it without a subcommand to open the board and
drag cards between lanes with the mouse, or onto the burn barrel to delete them.

The subcommands work on the same board from scripts.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				level = slog.LevelDebug
			}
			return launcher.Launch(cmd.Context(), cfg, level)
		},
	}

	rootCmd.PersistentFlags().String("storage", "", "Storage backend: sqlite, file or memory (default from config)")
	rootCmd.PersistentFlags().String("path", "", "Database file for sqlite, directory for file")
	rootCmd.Flags().Bool("debug", false, "Write debug logs to ~/.lanes/logs/lanes.log")

	rootCmd.AddCommand(card.Commands()...)

	return rootCmd
}

// Execute runs the command tree and returns the process exit code
func Execute() int {
	err := NewRootCmd().Execute()
	if err != nil {
		var exitErr *cli.CommandError
		if !errors.As(err, &exitErr) {
			// Formatted errors were already printed by the command
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
	}
	return cli.ExitCode(err)
}
