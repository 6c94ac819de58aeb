package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"

	"github.com/akiho/kanaflash/internal/drill"
)

// RecordAttempt appends one row to the attempt log. Storage errors
// propagate to the caller; nothing is retried.
func (s *Store) RecordAttempt(ctx context.Context, a drill.Attempt) error {
	return insertAttempt(ctx, s.db, a)
}

// RecordGraded applies a graded attempt as a single atomic unit: the
// attempt insert and the card projection update commit together or not
// at all.
func (s *Store) RecordGraded(ctx context.Context, g drill.Graded) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin graded tx: %w", err)
	}
	defer tx.Rollback()

	if err := insertAttempt(ctx, tx, g.Attempt); err != nil {
		return err
	}
	if err := updateCardState(ctx, tx, g.Card); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit graded tx: %w", err)
	}

	slog.Debug("attempt recorded",
		"card", g.Attempt.CardHash,
		"reaction", g.Attempt.ReactionTime,
		"success", g.Attempt.Success,
		"level", g.Card.Level)
	return nil
}

func insertAttempt(ctx context.Context, db squirrel.ExecerContext, a drill.Attempt) error {
	success := 0
	if a.Success {
		success = 1
	}

	query, args, err := builder.
		Insert("attempts").
		Columns("card_hash", "reaction_time", "success", "timestamp").
		Values(a.CardHash, a.ReactionTime, success, formatTime(a.Timestamp)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build attempt insert: %w", err)
	}
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert attempt for %s: %w", a.CardHash, err)
	}
	return nil
}

// AttemptHistory returns the most recent attempts for one card hash (or
// paragraph pseudo-id), newest first.
func (s *Store) AttemptHistory(ctx context.Context, cardHash string, limit int) ([]drill.Attempt, error) {
	query, args, err := builder.
		Select("card_hash", "reaction_time", "success", "timestamp").
		From("attempts").
		Where(squirrel.Eq{"card_hash": cardHash}).
		OrderBy("timestamp DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build history query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history for %s: %w", cardHash, err)
	}
	defer rows.Close()

	var attempts []drill.Attempt
	for rows.Next() {
		var a drill.Attempt
		var success int
		var ts string
		if err := rows.Scan(&a.CardHash, &a.ReactionTime, &success, &ts); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.Success = success != 0
		if a.Timestamp, err = parseTime(ts); err != nil {
			return nil, fmt.Errorf("parse attempt timestamp: %w", err)
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// DeckHistory returns up to limit recent reaction-time values for a
// character or word deck, newest first. Each value is the average over
// one timestamp group, i.e. one grading event.
func (s *Store) DeckHistory(ctx context.Context, deckID, limit int) ([]float64, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT AVG(a.reaction_time)
FROM attempts a
JOIN cards c ON a.card_hash = c.hash
WHERE c.deck_id = ?
GROUP BY a.timestamp
ORDER BY a.timestamp DESC
LIMIT ?
`, deckID, limit)
	if err != nil {
		return nil, fmt.Errorf("query deck %d history: %w", deckID, err)
	}
	defer rows.Close()
	return scanValues(rows)
}

// ParagraphHistory returns up to limit recent paragraph completion times
// for a paragraph deck, newest first.
func (s *Store) ParagraphHistory(ctx context.Context, deckID, limit int) ([]float64, error) {
	query, args, err := builder.
		Select("reaction_time").
		From("attempts").
		Where(squirrel.Eq{"card_hash": drill.ParagraphID(deckID)}).
		OrderBy("timestamp DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build paragraph history query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query paragraph history: %w", err)
	}
	defer rows.Close()
	return scanValues(rows)
}

// DeckBest returns the minimum reaction time ever recorded for a deck's
// cards. ok is false when the deck has no attempts.
func (s *Store) DeckBest(ctx context.Context, deckID int) (best float64, ok bool, err error) {
	var v sql.NullFloat64
	err = s.db.QueryRowContext(ctx, `
SELECT MIN(a.reaction_time)
FROM attempts a
JOIN cards c ON a.card_hash = c.hash
WHERE c.deck_id = ?
`, deckID).Scan(&v)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, false, fmt.Errorf("query deck %d best: %w", deckID, err)
	}
	return v.Float64, v.Valid, nil
}

// ParagraphBest returns the fastest paragraph completion for a paragraph
// deck. ok is false when none have been recorded.
func (s *Store) ParagraphBest(ctx context.Context, deckID int) (best float64, ok bool, err error) {
	var v sql.NullFloat64
	err = s.db.QueryRowContext(ctx,
		"SELECT MIN(reaction_time) FROM attempts WHERE card_hash = ?",
		drill.ParagraphID(deckID)).Scan(&v)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, false, fmt.Errorf("query paragraph best: %w", err)
	}
	return v.Float64, v.Valid, nil
}

// CharacterAverages returns, per character question of a deck, the
// average reaction time over that character's last lastN attempts.
// Characters with no attempts are absent from the map.
func (s *Store) CharacterAverages(ctx context.Context, deckID, lastN int) (map[string]float64, error) {
	// Window function ranks each character's attempts by recency.
	rows, err := s.db.QueryContext(ctx, `
SELECT question, AVG(reaction_time) FROM (
    SELECT c.question, a.reaction_time,
           ROW_NUMBER() OVER (PARTITION BY c.question ORDER BY a.timestamp DESC) AS rank
    FROM cards c
    JOIN attempts a ON c.hash = a.card_hash
    WHERE c.deck_id = ?
) WHERE rank <= ?
GROUP BY question
`, deckID, lastN)
	if err != nil {
		return nil, fmt.Errorf("query character averages: %w", err)
	}
	defer rows.Close()

	avgs := make(map[string]float64)
	for rows.Next() {
		var q string
		var avg float64
		if err := rows.Scan(&q, &avg); err != nil {
			return nil, fmt.Errorf("scan character average: %w", err)
		}
		avgs[q] = avg
	}
	return avgs, rows.Err()
}

func scanValues(rows *sql.Rows) ([]float64, error) {
	var values []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan reaction time: %w", err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
