package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	require.Equal(t, "kanaflash.db", cfg.DBFile)
	require.Equal(t, 20, cfg.SessionSize)
	require.Equal(t, 10, cfg.ParagraphWords)
	require.Equal(t, 100, cfg.TickMs)
	require.Equal(t, "info", cfg.LogLevel)
	require.NotEmpty(t, cfg.DataDir)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session_size: 5\nlog_level: debug\n"), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.SessionSize)
	require.Equal(t, "debug", cfg.LogLevel)
	// Untouched keys keep their defaults.
	require.Equal(t, 10, cfg.ParagraphWords)
}

func TestMissingFileIsFine(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.NoError(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session_size: 5\n"), 0o644))
	t.Setenv("KANAFLASH_SESSION_SIZE", "7")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.SessionSize)
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("KANAFLASH_LOG_LEVEL", "warn")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log_level", "info", "")
	require.NoError(t, fs.Parse([]string{"--log_level=error"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	require.Equal(t, "error", cfg.LogLevel)
}

func TestValidation(t *testing.T) {
	t.Setenv("KANAFLASH_LOG_LEVEL", "loud")
	_, err := Load("", nil)
	require.Error(t, err)

	t.Setenv("KANAFLASH_LOG_LEVEL", "info")
	t.Setenv("KANAFLASH_SESSION_SIZE", "0")
	_, err = Load("", nil)
	require.Error(t, err)
}
