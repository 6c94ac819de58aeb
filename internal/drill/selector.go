package drill

import (
	"fmt"
	"math/rand/v2"
)

const (
	// DefaultQueueSize caps the number of cards drawn for one session.
	DefaultQueueSize = 20

	// ParagraphWordCount is the number of words composed into a paragraph
	// session, and the minimum vocabulary the source deck must hold.
	ParagraphWordCount = 10

	// ParagraphDeckMin is the first deck id that generates paragraphs
	// instead of presenting its own cards.
	ParagraphDeckMin = 5
)

// IsParagraphDeck reports whether a deck generates paragraph sessions.
func IsParagraphDeck(deckID int) bool {
	return deckID >= ParagraphDeckMin
}

// SourceWordDeck maps a paragraph deck to the word deck it draws from.
func SourceWordDeck(deckID int) int {
	if deckID == ParagraphDeckMin {
		return 3
	}
	return 4
}

// ParagraphID is the pseudo card hash paragraph attempts are logged under.
func ParagraphID(deckID int) string {
	return fmt.Sprintf("PARA_%d", deckID)
}

// BuildQueue draws the session queue for a character or word deck: a
// random sample without replacement of size min(size, len(cards)), in
// presentation order. An empty deck is ErrEmptyDeck.
func BuildQueue(rng *rand.Rand, cards []Card, size int) ([]Card, error) {
	if len(cards) == 0 {
		return nil, ErrEmptyDeck
	}
	if size <= 0 {
		size = DefaultQueueSize
	}
	if size > len(cards) {
		size = len(cards)
	}

	queue := make([]Card, 0, size)
	for _, i := range rng.Perm(len(cards))[:size] {
		queue = append(queue, cards[i])
	}
	return queue, nil
}

// PickWords draws the word set for a paragraph session without
// replacement. Fewer than ParagraphWordCount source words is
// ErrInsufficientVocabulary.
func PickWords(rng *rand.Rand, words []string) ([]string, error) {
	if len(words) < ParagraphWordCount {
		return nil, ErrInsufficientVocabulary
	}

	picked := make([]string, 0, ParagraphWordCount)
	for _, i := range rng.Perm(len(words))[:ParagraphWordCount] {
		picked = append(picked, words[i])
	}
	return picked, nil
}
