// Package analytics aggregates the attempt log into per-deck reports:
// last/best latency, rolling history bars and the phonetic mastery
// heatmap for the character decks.
package analytics

import (
	"context"
	"fmt"

	"github.com/akiho/kanaflash/internal/drill"
)

const (
	// HistoryWindow is how many recent values the history graph shows.
	HistoryWindow = 20

	// CharWindow is the per-character rolling window for the heatmap.
	CharWindow = 10

	// BarScale is the bar graph's full height; MinBarHeight keeps
	// near-zero values visible.
	BarScale     = 100
	MinBarHeight = 5
)

// Source is the slice of the store the aggregator reads.
type Source interface {
	Cards(ctx context.Context, deckID int) ([]drill.Card, error)
	DeckHistory(ctx context.Context, deckID, limit int) ([]float64, error)
	ParagraphHistory(ctx context.Context, deckID, limit int) ([]float64, error)
	DeckBest(ctx context.Context, deckID int) (float64, bool, error)
	ParagraphBest(ctx context.Context, deckID int) (float64, bool, error)
	CharacterAverages(ctx context.Context, deckID, lastN int) (map[string]float64, error)
}

// Report is the analytics output for one deck after a session.
type Report struct {
	DeckID int

	// HasData is false when the deck has no attempts at all; Last and
	// Best are meaningless in that case.
	HasData bool
	Last    float64
	Best    float64

	// History holds up to HistoryWindow reaction-time values, newest
	// first: per-attempt for paragraph decks, per-grading-event averages
	// otherwise.
	History []float64

	// Heatmap is non-nil for the character decks only.
	Heatmap [][]HeatCell
}

// Build reads the store and assembles the report for a deck.
func Build(ctx context.Context, src Source, deckID int) (*Report, error) {
	r := &Report{DeckID: deckID}

	var history []float64
	var best float64
	var ok bool
	var err error

	if drill.IsParagraphDeck(deckID) {
		history, err = src.ParagraphHistory(ctx, deckID, HistoryWindow)
		if err != nil {
			return nil, fmt.Errorf("paragraph history: %w", err)
		}
		best, ok, err = src.ParagraphBest(ctx, deckID)
	} else {
		history, err = src.DeckHistory(ctx, deckID, HistoryWindow)
		if err != nil {
			return nil, fmt.Errorf("deck history: %w", err)
		}
		best, ok, err = src.DeckBest(ctx, deckID)
	}
	if err != nil {
		return nil, fmt.Errorf("best latency: %w", err)
	}

	r.History = history
	if len(history) > 0 && ok {
		r.HasData = true
		r.Last = history[0]
		r.Best = best
	}

	// Character decks get the gojuon heatmap.
	if deckID == 1 || deckID == 2 {
		avgs, err := src.CharacterAverages(ctx, deckID, CharWindow)
		if err != nil {
			return nil, fmt.Errorf("character averages: %w", err)
		}
		cards, err := src.Cards(ctx, deckID)
		if err != nil {
			return nil, fmt.Errorf("heatmap cards: %w", err)
		}
		r.Heatmap = BuildHeatmap(cards, avgs)
	}

	return r, nil
}

// Bars returns the history as bar heights in chronological order
// (oldest first), each proportional to value/max on the BarScale, with
// MinBarHeight enforced so near-zero values stay visible.
func (r *Report) Bars() []int {
	if len(r.History) == 0 {
		return nil
	}

	maxVal := r.History[0]
	for _, v := range r.History {
		if v > maxVal {
			maxVal = v
		}
	}

	bars := make([]int, 0, len(r.History))
	for i := len(r.History) - 1; i >= 0; i-- {
		h := MinBarHeight
		if maxVal > 0 {
			if scaled := int(r.History[i] / maxVal * BarScale); scaled > h {
				h = scaled
			}
		}
		bars = append(bars, h)
	}
	return bars
}
