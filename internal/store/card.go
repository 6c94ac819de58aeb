package store

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/akiho/kanaflash/internal/drill"
)

// Cards returns every card in a deck.
func (s *Store) Cards(ctx context.Context, deckID int) ([]drill.Card, error) {
	query, args, err := builder.
		Select("hash", "deck_id", "question", "answer", "level", "streak", "mastered").
		From("cards").
		Where(squirrel.Eq{"deck_id": deckID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build card query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query cards for deck %d: %w", deckID, err)
	}
	defer rows.Close()

	var cards []drill.Card
	for rows.Next() {
		var c drill.Card
		var mastered int
		if err := rows.Scan(&c.Hash, &c.DeckID, &c.Question, &c.Answer, &c.Level, &c.Streak, &mastered); err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		c.Mastered = mastered != 0
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

// Questions returns the question strings of a deck, for the paragraph
// selector's vocabulary pool.
func (s *Store) Questions(ctx context.Context, deckID int) ([]string, error) {
	query, args, err := builder.
		Select("question").
		From("cards").
		Where(squirrel.Eq{"deck_id": deckID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build question query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query questions for deck %d: %w", deckID, err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var q string
		if err := rows.Scan(&q); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		words = append(words, q)
	}
	return words, rows.Err()
}

// UpdateCardState overwrites the mastery projection fields of one card.
func (s *Store) UpdateCardState(ctx context.Context, c drill.Card) error {
	return updateCardState(ctx, s.db, c)
}

// updateCardState runs on the connection or inside a transaction.
func updateCardState(ctx context.Context, db squirrel.ExecerContext, c drill.Card) error {
	mastered := 0
	if c.Mastered {
		mastered = 1
	}

	query, args, err := builder.
		Update("cards").
		Set("level", c.Level).
		Set("streak", c.Streak).
		Set("mastered", mastered).
		Where(squirrel.Eq{"hash": c.Hash}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build card update: %w", err)
	}
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update card %s: %w", c.Hash, err)
	}
	return nil
}
