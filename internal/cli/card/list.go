package card

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/board"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/models"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cards lane by lane",
		Long: `List every card on the board, grouped by lane in board order.

Examples:
  lanes list
  lanes list --lane todo
  lanes list --json
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("lane", "", "Only list this lane (id or title)")
	addOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)

	lanes := models.Lanes()
	if laneFlag, _ := cmd.Flags().GetString("lane"); laneFlag != "" {
		lane, err := models.ParseLane(laneFlag)
		if err != nil {
			return formatter.Fail(err)
		}
		lanes = []models.LaneID{lane}
	}

	cliInstance, err := cli.GetCLIFromContext(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer closeCLI(cliInstance)

	cards := cliInstance.App.Board.Cards()
	var listed []models.Card
	for _, lane := range lanes {
		listed = append(listed, board.CardsInLane(cards, lane)...)
	}
	if listed == nil {
		listed = []models.Card{}
	}

	if formatter.Quiet {
		for _, c := range listed {
			fmt.Fprintln(formatter.Out, c.ID)
		}
		return nil
	}

	return formatter.Success("cards", listed, func(w io.Writer) {
		for _, lane := range lanes {
			inLane := board.CardsInLane(cards, lane)
			fmt.Fprintf(w, "%s (%d)\n", lane.Title(), len(inLane))
			for _, c := range inLane {
				fmt.Fprintf(w, "  %s  %s\n", shortID(c.ID), c.Title)
			}
		}
	})
}
