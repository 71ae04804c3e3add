package card

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
)

// BurnCmd returns the burn subcommand
func BurnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "burn <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a card",
		Long: `Delete a card from the board. There is no confirmation and no undo.

Examples:
  lanes burn 3f2a
`,
		Args: cobra.ExactArgs(1),
		RunE: runBurn,
	}

	addOutputFlags(cmd)

	return cmd
}

func runBurn(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer closeCLI(cliInstance)

	b := cliInstance.App.Board
	id, err := resolveID(b.Cards(), args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	if err := b.Burn(id); err != nil {
		return formatter.Fail(err)
	}
	if err := b.LastSaveError(); err != nil {
		return formatter.Fail(fmt.Errorf("card burned but not saved: %w", err))
	}

	if formatter.Quiet {
		fmt.Fprintln(formatter.Out, id)
		return nil
	}
	return formatter.Success("id", id, func(w io.Writer) {
		fmt.Fprintf(w, "Burned %s\n", shortID(id))
	})
}

func closeCLI(c *cli.CLI) {
	if err := c.Close(); err != nil {
		slog.Error("failed to close CLI", "error", err)
	}
}
