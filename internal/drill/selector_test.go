package drill

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"
)

func testRng() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func makeCards(deckID, n int) []Card {
	cards := make([]Card, n)
	for i := range cards {
		cards[i] = Card{Hash: fmt.Sprintf("c%03d", i), DeckID: deckID}
	}
	return cards
}

func TestBuildQueueSamplesWithoutReplacement(t *testing.T) {
	cards := makeCards(1, 30)

	queue, err := BuildQueue(testRng(), cards, DefaultQueueSize)
	if err != nil {
		t.Fatalf("BuildQueue: %v", err)
	}
	if len(queue) != 20 {
		t.Fatalf("queue length = %d, want min(20,30) = 20", len(queue))
	}

	seen := make(map[string]bool)
	for _, c := range queue {
		if seen[c.Hash] {
			t.Errorf("card %s drawn twice", c.Hash)
		}
		seen[c.Hash] = true
	}
}

func TestBuildQueueSmallDeck(t *testing.T) {
	queue, err := BuildQueue(testRng(), makeCards(3, 10), DefaultQueueSize)
	if err != nil {
		t.Fatalf("BuildQueue: %v", err)
	}
	if len(queue) != 10 {
		t.Errorf("queue length = %d, want deck size 10", len(queue))
	}
}

func TestBuildQueueEmptyDeck(t *testing.T) {
	_, err := BuildQueue(testRng(), nil, DefaultQueueSize)
	if !errors.Is(err, ErrEmptyDeck) {
		t.Errorf("err = %v, want ErrEmptyDeck", err)
	}
}

func TestPickWords(t *testing.T) {
	words := make([]string, 12)
	for i := range words {
		words[i] = fmt.Sprintf("word%d", i)
	}

	picked, err := PickWords(testRng(), words)
	if err != nil {
		t.Fatalf("PickWords: %v", err)
	}
	if len(picked) != ParagraphWordCount {
		t.Fatalf("picked = %d words, want %d", len(picked), ParagraphWordCount)
	}

	seen := make(map[string]bool)
	for _, w := range picked {
		if seen[w] {
			t.Errorf("word %s picked twice", w)
		}
		seen[w] = true
	}
}

func TestPickWordsInsufficient(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e", "f", "g"} // only 7
	_, err := PickWords(testRng(), words)
	if !errors.Is(err, ErrInsufficientVocabulary) {
		t.Errorf("err = %v, want ErrInsufficientVocabulary", err)
	}
}

func TestParagraphDeckMapping(t *testing.T) {
	if !IsParagraphDeck(5) || !IsParagraphDeck(6) {
		t.Error("decks 5 and 6 are paragraph decks")
	}
	if IsParagraphDeck(4) {
		t.Error("deck 4 is a word deck")
	}
	if got := SourceWordDeck(5); got != 3 {
		t.Errorf("SourceWordDeck(5) = %d, want 3", got)
	}
	if got := SourceWordDeck(6); got != 4 {
		t.Errorf("SourceWordDeck(6) = %d, want 4", got)
	}
	if got := ParagraphID(5); got != "PARA_5" {
		t.Errorf("ParagraphID(5) = %q", got)
	}
}
