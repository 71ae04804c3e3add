package card

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/models"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a card to the end of a lane",
		Long: `Add a card to the end of a lane. The title is trimmed; a blank title is rejected.

Examples:
  lanes add "Write the changelog"
  lanes add --lane "In progress" Review the release notes
  lanes add --lane todo --quiet "Fix login"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().String("lane", string(models.LaneBacklog), "Lane to add to (id or title)")
	addOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
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
	card, err := b.Add(lane, strings.Join(args, " "))
	if err != nil {
		return formatter.Fail(err)
	}
	if err := b.LastSaveError(); err != nil {
		return formatter.Fail(fmt.Errorf("card added but not saved: %w", err))
	}

	if formatter.Quiet {
		fmt.Fprintln(formatter.Out, card.ID)
		return nil
	}
	return formatter.Success("card", card, func(w io.Writer) {
		fmt.Fprintf(w, "Added %s to %s: %s\n", shortID(card.ID), card.Lane.Title(), card.Title)
	})
}
