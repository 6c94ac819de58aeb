// Package paragraph implements the timed reading screen for the
// paragraph decks: ten words, one clock, one attempt.
package paragraph

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/akiho/kanaflash/internal/config"
	core "github.com/akiho/kanaflash/internal/drill"
	"github.com/akiho/kanaflash/internal/router"
	"github.com/akiho/kanaflash/internal/screen"
	"github.com/akiho/kanaflash/internal/screens/report"
	"github.com/akiho/kanaflash/internal/store"
	"github.com/akiho/kanaflash/internal/ui/layout"
	"github.com/akiho/kanaflash/internal/ui/theme"
)

// ParagraphScreen runs one stopwatch reading over a picked word set.
type ParagraphScreen struct {
	st       *store.Store
	ps       core.ParagraphSession
	deckName string
	tick     time.Duration
	gen      int

	persistErr string
}

var _ screen.Screen = (*ParagraphScreen)(nil)
var _ screen.KeyHintProvider = (*ParagraphScreen)(nil)
var _ screen.StatusProvider = (*ParagraphScreen)(nil)
var _ screen.EscHandler = (*ParagraphScreen)(nil)

type tickMsg struct {
	gen int
}

type finishPersistedMsg struct {
	Err error
}

// New creates a paragraph screen over an already-picked word set.
func New(st *store.Store, deckID int, deckName string, words []string, cfg config.Config) *ParagraphScreen {
	return &ParagraphScreen{
		st:       st,
		ps:       core.NewParagraphSession(uuid.NewString(), deckID, words, time.Now()),
		deckName: deckName,
		tick:     time.Duration(cfg.TickMs) * time.Millisecond,
	}
}

func (s *ParagraphScreen) Init() tea.Cmd {
	slog.Info("paragraph session started", "session", s.ps.ID, "deck", s.ps.DeckID, "words", len(s.ps.Words))
	return s.tickCmd()
}

func (s *ParagraphScreen) Title() string {
	return s.deckName
}

func (s *ParagraphScreen) Status() string {
	return fmt.Sprintf("%.1fs", s.ps.Elapsed.Seconds())
}

func (s *ParagraphScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Done reading"},
		{Key: "Esc", Description: "Abandon"},
	}
}

// HandleEsc abandons the reading without recording anything.
func (s *ParagraphScreen) HandleEsc() tea.Cmd {
	s.gen++
	slog.Info("paragraph session abandoned", "session", s.ps.ID, "elapsed", s.ps.Elapsed)
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *ParagraphScreen) tickCmd() tea.Cmd {
	gen := s.gen
	return tea.Tick(s.tick, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (s *ParagraphScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.gen != s.gen || s.ps.Done() {
			return s, nil
		}
		s.ps = s.ps.Tick(s.tick)
		return s, s.tickCmd()

	case finishPersistedMsg:
		if msg.Err != nil {
			s.persistErr = msg.Err.Error()
			slog.Error("paragraph write failed", "session", s.ps.ID, "err", msg.Err)
			return s, nil
		}
		deckID := s.ps.DeckID
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: report.New(s.st, deckID)}
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", " ", "space":
			return s.finish()
		}
	}

	return s, nil
}

// finish stops the clock, records the single attempt and hands off to
// the report.
func (s *ParagraphScreen) finish() (screen.Screen, tea.Cmd) {
	var attempt *core.Attempt
	s.ps, attempt = s.ps.Finish(time.Now())
	if attempt == nil {
		return s, nil
	}
	s.gen++
	slog.Info("paragraph session finished", "session", s.ps.ID, "seconds", attempt.ReactionTime)

	a := *attempt
	return s, func() tea.Msg {
		return finishPersistedMsg{Err: s.st.RecordAttempt(context.Background(), a)}
	}
}

func (s *ParagraphScreen) View(width, height int) string {
	if s.persistErr != "" {
		return layout.Center(theme.Incorrect.Render("Could not save attempt: "+s.persistErr), width, height)
	}

	clock := theme.Title.Render(fmt.Sprintf("%.1f s", s.ps.Elapsed.Seconds()))

	// Two rows of five words.
	wordStyle := lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 2)
	half := (len(s.ps.Words) + 1) / 2
	row1 := make([]string, 0, half)
	row2 := make([]string, 0, len(s.ps.Words)-half)
	for i, w := range s.ps.Words {
		if i < half {
			row1 = append(row1, wordStyle.Render(w))
		} else {
			row2 = append(row2, wordStyle.Render(w))
		}
	}

	grid := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Center, row1...),
		lipgloss.JoinHorizontal(lipgloss.Center, row2...),
	)

	body := clock + "\n\n" +
		theme.Card.Render(grid) + "\n\n" +
		theme.Hint.Render("Read every word aloud, then press Enter.")

	return layout.Center(lipgloss.NewStyle().Align(lipgloss.Center).Render(body), width, height)
}
