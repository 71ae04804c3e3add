package card

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/board"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/models"
)

// MoveCmd returns the move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id>",
		Short: "Move a card to another lane or position",
		Long: `Move a card into a lane, before another card or at the end of the lane.
Ids may be shortened to any unique prefix.

Examples:
  # Move to the end of Complete
  lanes move 3f2a --lane done

  # Move in front of another card
  lanes move 3f2a --lane todo --before 9c01
`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().String("lane", "", "Target lane, id or title (required)")
	cmd.Flags().String("before", "", "Insert before this card instead of at the end")
	_ = cmd.MarkFlagRequired("lane")
	addOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)

	laneFlag, _ := cmd.Flags().GetString("lane")
	lane, err := models.ParseLane(laneFlag)
	if err != nil {
		return formatter.Fail(err)
	}

	cliInstance, err := cli.GetCLIFromContext(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer closeCLI(cliInstance)

	b := cliInstance.App.Board
	cards := b.Cards()

	id, err := resolveID(cards, args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	beforeID := models.AppendSentinel
	if before, _ := cmd.Flags().GetString("before"); before != "" {
		if beforeID, err = resolveID(cards, before); err != nil {
			return formatter.Fail(err)
		}
	}

	if err := b.Move(id, lane, beforeID); err != nil {
		return formatter.Fail(err)
	}
	if err := b.LastSaveError(); err != nil {
		return formatter.Fail(fmt.Errorf("card moved but not saved: %w", err))
	}

	moved := b.Cards()[board.Find(b.Cards(), id)]
	if formatter.Quiet {
		fmt.Fprintln(formatter.Out, moved.ID)
		return nil
	}
	return formatter.Success("card", moved, func(w io.Writer) {
		fmt.Fprintf(w, "Moved %s to %s\n", shortID(moved.ID), moved.Lane.Title())
	})
}
