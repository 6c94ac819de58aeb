package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/akiho/kanaflash/internal/kana"
)

// The fixed deck set. Decks 5 and 6 generate paragraph sessions from the
// word decks and hold no cards of their own.
var seedDecks = []struct {
	id   int
	name string
}{
	{1, "Hiragana Basics"},
	{2, "Katakana Basics"},
	{3, "Hiragana Words"},
	{4, "Katakana Words"},
	{5, "Hiragana Paragraphs"},
	{6, "Katakana Paragraphs"},
}

var hiraganaWords = []kana.Pair{
	{Kana: "ねこ", Romaji: "neko"},
	{Kana: "いぬ", Romaji: "inu"},
	{Kana: "さくら", Romaji: "sakura"},
	{Kana: "すし", Romaji: "sushi"},
	{Kana: "みず", Romaji: "mizu"},
	{Kana: "とり", Romaji: "tori"},
	{Kana: "やま", Romaji: "yama"},
	{Kana: "うみ", Romaji: "umi"},
	{Kana: "はな", Romaji: "hana"},
	{Kana: "くま", Romaji: "kuma"},
}

var katakanaWords = []kana.Pair{
	{Kana: "カメラ", Romaji: "kamera"},
	{Kana: "テレビ", Romaji: "terebi"},
	{Kana: "パン", Romaji: "pan"},
	{Kana: "トイレ", Romaji: "toire"},
	{Kana: "コーヒー", Romaji: "koohii"},
	{Kana: "バス", Romaji: "basu"},
	{Kana: "ホテル", Romaji: "hoteru"},
	{Kana: "ドア", Romaji: "doa"},
	{Kana: "タクシー", Romaji: "takushii"},
	{Kana: "アイス", Romaji: "aisu"},
}

// EnsureSeed populates the deck table on first run and re-seeds any card
// deck observed empty. Idempotent; safe to call on every startup.
func (s *Store) EnsureSeed(ctx context.Context) error {
	if err := s.seedDecks(ctx); err != nil {
		return err
	}

	seeds := map[int][]kana.Pair{
		1: kana.HiraganaBasics(),
		2: kana.KatakanaBasics(),
		3: hiraganaWords,
		4: katakanaWords,
	}
	for deckID, entries := range seeds {
		if err := s.seedIfEmpty(ctx, deckID, entries); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) seedDecks(ctx context.Context) error {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM decks").Scan(&n); err != nil {
		return fmt.Errorf("count decks: %w", err)
	}
	if n > 0 {
		return nil
	}

	insert := builder.Insert("decks").Columns("id", "name", "locked")
	for _, d := range seedDecks {
		insert = insert.Values(d.id, d.name, 0)
	}
	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build deck insert: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("seed decks: %w", err)
	}
	return nil
}

// seedIfEmpty inserts the seed entries for one deck if it has no cards.
func (s *Store) seedIfEmpty(ctx context.Context, deckID int, entries []kana.Pair) error {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM cards WHERE deck_id = ?", deckID).Scan(&n)
	if err != nil {
		return fmt.Errorf("count cards for deck %d: %w", deckID, err)
	}
	if n > 0 || len(entries) == 0 {
		return nil
	}

	insert := builder.Insert("cards").
		Columns("hash", "deck_id", "question", "answer", "level", "streak", "mastered")
	for _, e := range entries {
		insert = insert.Values(newCardHash(), deckID, e.Kana, e.Romaji, 0, 0, 0)
	}
	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build card insert: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("seed deck %d: %w", deckID, err)
	}
	return nil
}

// newCardHash returns a short random id, stable for the card's lifetime.
func newCardHash() string {
	return uuid.NewString()[:8]
}
