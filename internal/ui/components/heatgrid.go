package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/akiho/kanaflash/internal/analytics"
	"github.com/akiho/kanaflash/internal/ui/theme"
)

// HeatGrid renders the gojuon mastery heatmap. Cells come from the
// analytics aggregator indexed [consonant column][vowel row]; the grid
// draws vowels as rows so each consonant family is a column.
type HeatGrid struct {
	Cells [][]analytics.HeatCell
}

const cellWidth = 4

// View renders the grid with a tier legend underneath.
func (g HeatGrid) View() string {
	if len(g.Cells) == 0 {
		return ""
	}

	vowelCount := len(g.Cells[0])

	var b strings.Builder
	for v := 0; v < vowelCount; v++ {
		for _, col := range g.Cells {
			if v >= len(col) {
				continue
			}
			cell := col[v]
			b.WriteString(tierStyle(cell.Tier).Width(cellWidth).Render(cell.Kana))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.TierFast.Render("■ fast") + "  " +
		theme.TierMedium.Render("■ medium") + "  " +
		theme.TierSlow.Render("■ slow") + "  " +
		theme.TierNone.Render("■ unseen"))

	return b.String()
}

func tierStyle(t analytics.Tier) lipgloss.Style {
	switch t {
	case analytics.TierFast:
		return theme.TierFast
	case analytics.TierMedium:
		return theme.TierMedium
	case analytics.TierSlow:
		return theme.TierSlow
	default:
		return theme.TierNone
	}
}
