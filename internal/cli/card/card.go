// Package card implements the board subcommands: list, add, move and burn.
package card

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/models"
)

// shortIDLength is how much of a card id the human output prints
const shortIDLength = 8

// Commands returns every card subcommand, registered directly on the root
func Commands() []*cobra.Command {
	return []*cobra.Command{
		ListCmd(),
		AddCmd(),
		MoveCmd(),
		BurnCmd(),
	}
}

// resolveID finds the card whose id is ref or, failing that, the only card
// whose id starts with ref.
func resolveID(cards []models.Card, ref string) (string, error) {
	var match string
	for _, c := range cards {
		if c.ID == ref {
			return c.ID, nil
		}
		if ref != "" && strings.HasPrefix(c.ID, ref) {
			if match != "" {
				return "", fmt.Errorf("%q: %w", ref, cli.ErrAmbiguousID)
			}
			match = c.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%q: %w", ref, models.ErrCardNotFound)
	}
	return match, nil
}

func shortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}
	return id[:shortIDLength]
}

// addOutputFlags adds the agent-friendly flags every subcommand shares
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}
