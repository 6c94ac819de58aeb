package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupWritesToDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	closeLog, err := Setup(dir, "info")
	require.NoError(t, err)
	defer closeLog()

	_, err = os.Stat(filepath.Join(dir, "kanaflash.log"))
	require.NoError(t, err)
}

func TestSetupFallsBackToWorkingDir(t *testing.T) {
	t.Chdir(t.TempDir())

	// A plain file where the data dir should go makes MkdirAll fail.
	dir := t.TempDir()
	block := filepath.Join(dir, "blockfile")
	require.NoError(t, os.WriteFile(block, []byte("x"), 0o644))

	closeLog, err := Setup(filepath.Join(block, "nested"), "info")
	require.NoError(t, err)
	defer closeLog()

	_, err = os.Stat("kanaflash.log")
	require.NoError(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", "DEBUG"},
		{"info", "INFO"},
		{"warn", "WARN"},
		{"error", "ERROR"},
		{"garbage", "INFO"},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in).String(); got != tt.want {
			t.Errorf("parseLevel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
