package components

import (
	"fmt"
	"time"

	"charm.land/bubbles/v2/progress"
	"charm.land/lipgloss/v2"

	"github.com/akiho/kanaflash/internal/ui/theme"
)

// CountdownBar renders the per-card response timer as a draining bar
// with the remaining seconds alongside.
type CountdownBar struct {
	Width int
}

// View renders the bar for the given remaining fraction in [0,1] and
// remaining duration.
func (c CountdownBar) View(fraction float64, remaining time.Duration) string {
	barWidth := c.Width - 8 // room for the seconds readout
	if barWidth < 10 {
		barWidth = 10
	}

	p := progress.New(
		progress.WithDefaultBlend(),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)

	secs := secondsStyle(fraction).Render(fmt.Sprintf(" %4.1fs", remaining.Seconds()))

	return p.ViewAs(fraction) + secs
}

func secondsStyle(fraction float64) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	switch {
	case fraction <= 0.2:
		return s.Foreground(theme.Error)
	case fraction <= 0.5:
		return s.Foreground(theme.Warning)
	default:
		return s.Foreground(theme.Text)
	}
}
