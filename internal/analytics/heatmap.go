package analytics

import (
	"github.com/akiho/kanaflash/internal/drill"
	"github.com/akiho/kanaflash/internal/kana"
)

// Tier classifies a character's rolling average latency.
type Tier int

const (
	TierNone   Tier = iota // no recorded attempts
	TierSlow               // avg > 3.0s
	TierMedium             // 1.5s < avg <= 3.0s
	TierFast               // avg <= 1.5s
)

const (
	slowThreshold = 3.0
	fastThreshold = 1.5
)

// HeatCell is one cell of the gojuon mastery grid.
type HeatCell struct {
	Kana   string
	Romaji string
	Tier   Tier
	Avg    float64
}

// Classify maps a rolling average to its speed tier.
func Classify(avg float64) Tier {
	switch {
	case avg > slowThreshold:
		return TierSlow
	case avg > fastThreshold:
		return TierMedium
	default:
		return TierFast
	}
}

// BuildHeatmap joins per-character averages against the fixed gojuon
// layout. The result is indexed [consonant column][vowel row]. Cells
// whose romaji key has no card in the deck keep the key as their glyph.
func BuildHeatmap(cards []drill.Card, avgs map[string]float64) [][]HeatCell {
	// Single-rune questions give the romaji→kana mapping for this deck.
	romajiToKana := make(map[string]string)
	for _, c := range cards {
		if len([]rune(c.Question)) == 1 {
			romajiToKana[c.Answer] = c.Question
		}
	}

	vowels := kana.Vowels()
	consonants := kana.Consonants()

	grid := make([][]HeatCell, 0, len(consonants))
	for _, cons := range consonants {
		col := make([]HeatCell, 0, len(vowels))
		for _, v := range vowels {
			key := kana.CellKey(cons, v)
			cell := HeatCell{Kana: key, Romaji: key}
			if glyph, ok := romajiToKana[key]; ok {
				cell.Kana = glyph
			}
			if avg, ok := avgs[cell.Kana]; ok {
				cell.Tier = Classify(avg)
				cell.Avg = avg
			}
			col = append(col, cell)
		}
		grid = append(grid, col)
	}
	return grid
}
