package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akiho/kanaflash/internal/drill"
)

var decksCmd = &cobra.Command{
	Use:   "decks",
	Short: "List decks with mastery progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, cleanup, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		summaries, err := st.DeckSummaries(cmd.Context())
		if err != nil {
			return fmt.Errorf("list decks: %w", err)
		}

		for _, sum := range summaries {
			switch {
			case drill.IsParagraphDeck(sum.Deck.ID):
				fmt.Printf("%d  %-22s timed reading\n", sum.Deck.ID, sum.Deck.Name)
			case sum.Complete():
				fmt.Printf("%d  %-22s complete (%d cards)\n", sum.Deck.ID, sum.Deck.Name, sum.Total)
			default:
				fmt.Printf("%d  %-22s %d/%d mastered\n", sum.Deck.ID, sum.Deck.Name, sum.Mastered, sum.Total)
			}
		}
		return nil
	},
}
