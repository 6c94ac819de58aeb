// Package logging routes slog to a file in the data directory. The TUI
// owns stdout, so log lines must never reach the terminal.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const fileName = "kanaflash.log"

// Setup installs the default slog logger writing to kanaflash.log under
// dataDir. An unavailable data directory falls back to the working
// directory, same as the store's database path. The returned closer
// flushes the file at shutdown.
func Setup(dataDir, level string) (func() error, error) {
	path := filepath.Join(dataDir, fileName)
	mkErr := os.MkdirAll(dataDir, 0o755)
	if mkErr != nil {
		path = fileName
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	slog.SetDefault(slog.New(handler))

	if mkErr != nil {
		slog.Warn("data dir unavailable, logging to working directory", "dir", dataDir, "err", mkErr)
	}

	return f.Close, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
