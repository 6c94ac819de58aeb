package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akiho/kanaflash/internal/app"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Start the interactive trainer (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTrain(cmd)
	},
}

// runTrain opens the store and launches the TUI.
func runTrain(cmd *cobra.Command) error {
	st, cfg, cleanup, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := app.Run(st, cfg); err != nil {
		return fmt.Errorf("run trainer: %w", err)
	}
	return nil
}
