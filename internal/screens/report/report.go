// Package report implements the post-session analytics screen: latest
// and best times, the history graph, and the gojuon heatmap for the
// character decks.
package report

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akiho/kanaflash/internal/analytics"
	"github.com/akiho/kanaflash/internal/router"
	"github.com/akiho/kanaflash/internal/screen"
	"github.com/akiho/kanaflash/internal/store"
	"github.com/akiho/kanaflash/internal/ui/components"
	"github.com/akiho/kanaflash/internal/ui/layout"
	"github.com/akiho/kanaflash/internal/ui/theme"
)

// ReportScreen shows the aggregated numbers for one deck.
type ReportScreen struct {
	st     *store.Store
	deckID int

	report *analytics.Report
	errMsg string
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

type reportMsg struct {
	Report *analytics.Report
	Err    error
}

// New creates a report screen for a deck.
func New(st *store.Store, deckID int) *ReportScreen {
	return &ReportScreen{st: st, deckID: deckID}
}

func (s *ReportScreen) Init() tea.Cmd {
	return func() tea.Msg {
		r, err := analytics.Build(context.Background(), s.st, s.deckID)
		return reportMsg{Report: r, Err: err}
	}
}

func (s *ReportScreen) Title() string {
	return "Report"
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back to decks"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.report = msg.Report

	case tea.KeyMsg:
		// Any key returns to the deck list.
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *ReportScreen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.Center(theme.Incorrect.Render(s.errMsg), width, height)
	}
	if s.report == nil {
		return layout.Center(theme.Hint.Render("Crunching numbers..."), width, height)
	}

	var body string
	if !s.report.HasData {
		body = theme.Hint.Render("No attempts recorded for this deck yet.")
	} else {
		last := theme.Body.Render(fmt.Sprintf("LAST  %.3fs", s.report.Last))
		best := theme.Correct.Render(fmt.Sprintf("BEST  %.3fs", s.report.Best))
		graph := components.BarGraph{Bars: s.report.Bars()}.View()

		body = last + "    " + best + "\n\n" + graph
	}

	if s.report.Heatmap != nil {
		grid := components.HeatGrid{Cells: s.report.Heatmap}.View()
		body += "\n\n" + theme.Subtitle.Render("per-character speed") + "\n\n" + grid
	}

	content := lipgloss.NewStyle().Align(lipgloss.Center).Render(body)
	return layout.Center(content, width, height)
}
