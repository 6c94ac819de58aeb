package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset mastery progress (attempt history is kept)",
	RunE: func(cmd *cobra.Command, args []string) error {
		deckID, _ := cmd.Flags().GetInt("deck")
		yes, _ := cmd.Flags().GetBool("yes")

		if !yes {
			target := "ALL decks"
			if deckID != 0 {
				target = fmt.Sprintf("deck %d", deckID)
			}
			fmt.Printf("This resets mastery progress for %s. Re-run with --yes to confirm.\n", target)
			return nil
		}

		st, _, cleanup, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := st.ResetProgress(cmd.Context(), deckID); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}

		if deckID == 0 {
			fmt.Println("All decks reset.")
		} else {
			fmt.Printf("Deck %d reset.\n", deckID)
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Int("deck", 0, "Deck id to reset (0 = all decks)")
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
