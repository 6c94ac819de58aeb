// Package store is the durable record of decks, cards and attempt
// history, backed by SQLite.
package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/squirrel"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// builder is the shared squirrel builder; SQLite uses ? placeholders.
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// timeLayout is the fixed-width UTC format attempts are stamped with.
// Fixed width keeps lexicographic and chronological order identical.
const timeLayout = "2006-01-02 15:04:05.000000000"

// Store wraps the SQLite connection. All writes are synchronous relative
// to the calling operation; there is no background write queue.
type Store struct {
	db   *sql.DB
	path string
}

// Open connects to the SQLite database at path, applies pragmas and
// idempotently creates the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Path returns the database file path this store was opened with.
func (s *Store) Path() string {
	return s.path
}

// applyPragmas configures SQLite for single-user interactive use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// ResolvePath places the database file inside dataDir, creating the
// directory if needed. When the directory cannot be created the file
// falls back to the working directory; the fallback is logged but not
// surfaced as an error.
func ResolvePath(dataDir, file string) string {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		slog.Warn("data dir unavailable, falling back to working directory",
			"dir", dataDir, "err", err)
		return file
	}
	return filepath.Join(dataDir, file)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}
