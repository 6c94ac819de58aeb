// Package config layers application settings from defaults, an optional
// YAML file, KANAFLASH_* environment variables and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const envPrefix = "KANAFLASH_"

// Config holds all tunable settings.
type Config struct {
	DataDir        string `koanf:"data_dir" validate:"required"`
	DBFile         string `koanf:"db_file" validate:"required"`
	LogLevel       string `koanf:"log_level" validate:"oneof=debug info warn error"`
	SessionSize    int    `koanf:"session_size" validate:"min=1,max=100"`
	ParagraphWords int    `koanf:"paragraph_words" validate:"min=2,max=50"`
	TickMs         int    `koanf:"tick_ms" validate:"min=10,max=1000"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DataDir:        defaultDataDir(),
		DBFile:         "kanaflash.db",
		LogLevel:       "info",
		SessionSize:    20,
		ParagraphWords: 10,
		TickMs:         100,
	}
}

// Load merges settings in priority order: defaults < YAML file < env
// vars < flags. A missing config file is not an error; a malformed or
// invalid one is. flags may be nil.
func Load(configFile string, flags *pflag.FlagSet) (Config, error) {
	// Pick up a .env file when present; absence is fine.
	_ = godotenv.Load()

	k := koanf.New(".")

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
				return Config{}, fmt.Errorf("load config file: %w", err)
			}
		}
	}

	// KANAFLASH_DATA_DIR → data_dir. Keys keep their underscores.
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Config{}, fmt.Errorf("load flags: %w", err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// defaultDataDir resolves the preferred data directory:
// $XDG_DATA_HOME/kanaflash, falling back to ~/.local/share/kanaflash.
// When no home directory can be resolved the working directory is used
// (the store falls back there anyway).
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "kanaflash")
}
