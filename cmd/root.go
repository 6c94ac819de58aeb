package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/akiho/kanaflash/internal/config"
	"github.com/akiho/kanaflash/internal/logging"
	"github.com/akiho/kanaflash/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "kanaflash",
	Short: "Timed kana flashcard trainer",
	Long:  "KanaFlash — terminal flashcard trainer for hiragana and katakana reading speed.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTrain(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a YAML config file")
	pf.String("db", "", "Full path to the SQLite database (overrides data_dir/db_file)")

	// These flag names mirror the config keys so they feed straight into
	// the config loader.
	pf.String("data_dir", "", "Data directory for database and logs")
	pf.String("db_file", "", "Database file name inside the data directory")
	pf.String("log_level", "", "Log level: debug, info, warn, error")
	pf.Int("session_size", 0, "Cards drawn per drill session")

	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(decksCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

var configFlagNames = map[string]bool{
	"data_dir":     true,
	"db_file":      true,
	"log_level":    true,
	"session_size": true,
}

// loadConfig merges defaults, config file, env vars and the flags that
// were actually set on the command line. Unset flags are dropped so
// their zero values do not mask lower layers.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	configFile, _ := cmd.Flags().GetString("config")

	overrides := pflag.NewFlagSet("overrides", pflag.ContinueOnError)
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if configFlagNames[f.Name] {
			overrides.AddFlag(f)
		}
	})
	var set *pflag.FlagSet
	if overrides.HasFlags() {
		set = overrides
	}

	cfg, err := config.Load(configFile, set)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openStore loads config, wires logging, opens the database and makes
// sure the fixed decks are seeded. Callers own Close on both.
func openStore(cmd *cobra.Command) (*store.Store, config.Config, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, config.Config{}, nil, err
	}

	closeLog, err := logging.Setup(cfg.DataDir, cfg.LogLevel)
	if err != nil {
		return nil, config.Config{}, nil, err
	}

	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = os.Getenv("KANAFLASH_DB")
	}
	if dbPath == "" {
		dbPath = store.ResolvePath(cfg.DataDir, cfg.DBFile)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		_ = closeLog()
		return nil, config.Config{}, nil, fmt.Errorf("open store: %w", err)
	}

	if err := st.EnsureSeed(cmd.Context()); err != nil {
		_ = st.Close()
		_ = closeLog()
		return nil, config.Config{}, nil, fmt.Errorf("seed decks: %w", err)
	}

	cleanup := func() {
		_ = st.Close()
		_ = closeLog()
	}
	return st, cfg, cleanup, nil
}
