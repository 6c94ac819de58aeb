package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/akiho/kanaflash/internal/ui/theme"
)

// BarGraph renders latency history as a column chart. Bars are heights
// on a 0-100 scale, oldest first; the newest bar is highlighted.
type BarGraph struct {
	Bars   []int
	Height int // rows; defaults to 8
}

// View renders the chart.
func (g BarGraph) View() string {
	if len(g.Bars) == 0 {
		return theme.Hint.Render("No attempts yet.")
	}

	rows := g.Height
	if rows <= 0 {
		rows = 8
	}

	barStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	newestStyle := lipgloss.NewStyle().Foreground(theme.Accent)

	var b strings.Builder
	for row := rows; row >= 1; row-- {
		threshold := row * 100 / rows
		for i, h := range g.Bars {
			cell := "  "
			if h >= threshold {
				cell = "█ "
			}
			if i == len(g.Bars)-1 {
				b.WriteString(newestStyle.Render(cell))
			} else {
				b.WriteString(barStyle.Render(cell))
			}
		}
		b.WriteString("\n")
	}

	// Baseline with the time axis reading left (oldest) to right.
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", len(g.Bars)*2)))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("oldest → newest"))

	return b.String()
}
