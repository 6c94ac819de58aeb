package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akiho/kanaflash/internal/analytics"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the latency report for a deck",
	RunE: func(cmd *cobra.Command, args []string) error {
		deckID, _ := cmd.Flags().GetInt("deck")

		st, _, cleanup, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		r, err := analytics.Build(cmd.Context(), st, deckID)
		if err != nil {
			return fmt.Errorf("build report: %w", err)
		}

		if !r.HasData {
			fmt.Printf("deck %d: no attempts recorded\n", deckID)
			return nil
		}

		fmt.Printf("deck %d\n", deckID)
		fmt.Printf("  last  %.3fs\n", r.Last)
		fmt.Printf("  best  %.3fs\n", r.Best)
		fmt.Printf("  history (newest first):")
		for _, v := range r.History {
			fmt.Printf(" %.3f", v)
		}
		fmt.Println()

		if r.Heatmap != nil {
			fmt.Println("  slow characters:")
			for _, col := range r.Heatmap {
				for _, cell := range col {
					if cell.Tier == analytics.TierSlow {
						fmt.Printf("    %s  %.3fs\n", cell.Kana, cell.Avg)
					}
				}
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("deck", 1, "Deck id to report on")
}
