package store

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/akiho/kanaflash/internal/drill"
)

// DeckSummary is one row of the deck list: the deck plus its card counts,
// from which the shell derives the completion flag.
type DeckSummary struct {
	Deck     drill.Deck
	Total    int
	Mastered int
}

// Complete reports whether the deck displays as mastered.
func (d DeckSummary) Complete() bool {
	return drill.DeckComplete(d.Total, d.Mastered)
}

// Decks returns all decks ordered by id.
func (s *Store) Decks(ctx context.Context) ([]drill.Deck, error) {
	query, args, err := builder.
		Select("id", "name", "locked").
		From("decks").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build deck query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query decks: %w", err)
	}
	defer rows.Close()

	var decks []drill.Deck
	for rows.Next() {
		var d drill.Deck
		var locked int
		if err := rows.Scan(&d.ID, &d.Name, &locked); err != nil {
			return nil, fmt.Errorf("scan deck: %w", err)
		}
		d.Locked = locked != 0
		decks = append(decks, d)
	}
	return decks, rows.Err()
}

// DeckSummaries returns every deck with its total and mastered card
// counts, ordered by id.
func (s *Store) DeckSummaries(ctx context.Context) ([]DeckSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT d.id, d.name, d.locked,
       COUNT(c.hash) AS total,
       COALESCE(SUM(c.mastered), 0) AS mastered
FROM decks d
LEFT JOIN cards c ON c.deck_id = d.id
GROUP BY d.id
ORDER BY d.id ASC
`)
	if err != nil {
		return nil, fmt.Errorf("query deck summaries: %w", err)
	}
	defer rows.Close()

	var out []DeckSummary
	for rows.Next() {
		var ds DeckSummary
		var locked int
		if err := rows.Scan(&ds.Deck.ID, &ds.Deck.Name, &locked, &ds.Total, &ds.Mastered); err != nil {
			return nil, fmt.Errorf("scan deck summary: %w", err)
		}
		ds.Deck.Locked = locked != 0
		out = append(out, ds)
	}
	return out, rows.Err()
}

// SetDeckMastery applies the manual mastery toggle to every card of a
// deck: mastered cards pin at the top level, un-mastered cards return to
// the bottom, streaks reset either way.
func (s *Store) SetDeckMastery(ctx context.Context, deckID int, mastered bool) error {
	m, level := 0, drill.MinLevel
	if mastered {
		m, level = 1, drill.MaxLevel
	}

	query, args, err := builder.
		Update("cards").
		Set("mastered", m).
		Set("level", level).
		Set("streak", 0).
		Where(squirrel.Eq{"deck_id": deckID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build mastery update: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set deck %d mastery: %w", deckID, err)
	}
	return nil
}

// ResetProgress zeroes level, streak and mastered for one deck, or for
// all decks when deckID is 0. The attempt log is never touched.
func (s *Store) ResetProgress(ctx context.Context, deckID int) error {
	update := builder.
		Update("cards").
		Set("level", 0).
		Set("streak", 0).
		Set("mastered", 0)
	if deckID != 0 {
		update = update.Where(squirrel.Eq{"deck_id": deckID})
	}

	query, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("build reset update: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}
