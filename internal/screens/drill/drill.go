// Package drill implements the timed flip-card screen for character and
// word decks.
package drill

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
	"github.com/akiho/kanaflash/internal/ui/components"
	"github.com/akiho/kanaflash/internal/ui/layout"
	"github.com/akiho/kanaflash/internal/ui/theme"
)

// DrillScreen runs one card session over a pre-built queue.
type DrillScreen struct {
	st       *store.Store
	sc       core.SessionContext
	deckName string
	tick     time.Duration

	// gen guards against stale ticks after cancel or completion.
	gen int

	total      int
	correct    int
	persistErr string
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)
var _ screen.StatusProvider = (*DrillScreen)(nil)
var _ screen.EscHandler = (*DrillScreen)(nil)

// tickMsg advances the countdown. gen ties it to one session run.
type tickMsg struct {
	gen int
}

// gradePersistedMsg confirms an attempt write; complete triggers the
// report handoff.
type gradePersistedMsg struct {
	Err      error
	Complete bool
}

// New creates a drill screen over an already-selected queue.
func New(st *store.Store, deckID int, deckName string, queue []core.Card, cfg config.Config) *DrillScreen {
	return &DrillScreen{
		st:       st,
		sc:       core.NewSession(uuid.NewString(), deckID, queue, time.Now()),
		deckName: deckName,
		tick:     time.Duration(cfg.TickMs) * time.Millisecond,
		total:    len(queue),
	}
}

func (s *DrillScreen) Init() tea.Cmd {
	slog.Info("drill session started", "session", s.sc.ID, "deck", s.sc.DeckID, "cards", s.total)
	return s.tickCmd()
}

func (s *DrillScreen) Title() string {
	return s.deckName
}

func (s *DrillScreen) Status() string {
	done := s.sc.Index
	if done > s.total {
		done = s.total
	}
	return fmt.Sprintf("card %d/%d", min(done+1, s.total), s.total)
}

func (s *DrillScreen) KeyHints() []layout.KeyHint {
	switch s.sc.Phase {
	case core.PhasePresented:
		return []layout.KeyHint{
			{Key: "Space", Description: "Reveal"},
			{Key: "Esc", Description: "Back"},
		}
	case core.PhaseRevealed:
		return []layout.KeyHint{
			{Key: "→/Y", Description: "Got it"},
			{Key: "←/N", Description: "Missed it"},
			{Key: "Esc", Description: "Back"},
		}
	case core.PhaseTimedOut:
		return []layout.KeyHint{
			{Key: "Space", Description: "Continue"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return nil
}

// HandleEsc cancels the session without writing the in-flight card.
func (s *DrillScreen) HandleEsc() tea.Cmd {
	s.sc, _ = s.sc.Apply(core.Action{Kind: core.ActionCancel}, time.Now())
	s.gen++
	slog.Info("drill session canceled", "session", s.sc.ID, "graded", s.sc.Index)
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *DrillScreen) tickCmd() tea.Cmd {
	gen := s.gen
	return tea.Tick(s.tick, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (s *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.gen != s.gen || !s.sc.Active() {
			return s, nil
		}
		var expired bool
		s.sc, expired = s.sc.Tick(s.tick)
		if expired {
			slog.Debug("card timed out", "session", s.sc.ID, "card", s.sc.Current().Hash)
		}
		return s, s.tickCmd()

	case gradePersistedMsg:
		if msg.Err != nil {
			s.persistErr = msg.Err.Error()
			slog.Error("attempt write failed", "session", s.sc.ID, "err", msg.Err)
			return s, nil
		}
		if msg.Complete {
			deckID := s.sc.DeckID
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: report.New(s.st, deckID)}
			}
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.sc.Phase {
	case core.PhasePresented:
		// Any key flips the card; Esc never reaches here.
		s.sc, _ = s.sc.Apply(core.Action{Kind: core.ActionReveal}, time.Now())

	case core.PhaseRevealed:
		switch msg.String() {
		case "right", "y":
			return s.grade(true)
		case "left", "n":
			return s.grade(false)
		}

	case core.PhaseTimedOut:
		switch msg.String() {
		case " ", "space", "enter", "right", "left", "y", "n":
			return s.grade(false)
		}
	}

	return s, nil
}

// grade applies the outcome, persists atomically, and keeps the session
// moving.
func (s *DrillScreen) grade(success bool) (screen.Screen, tea.Cmd) {
	var graded *core.Graded
	s.sc, graded = s.sc.Apply(core.Action{Kind: core.ActionGrade, Success: success}, time.Now())
	if graded == nil {
		return s, nil
	}
	if graded.Attempt.Success {
		s.correct++
	}

	complete := s.sc.Phase == core.PhaseComplete
	if complete {
		s.gen++
		slog.Info("drill session complete", "session", s.sc.ID, "correct", s.correct, "total", s.total)
	}

	g := *graded
	return s, func() tea.Msg {
		err := s.st.RecordGraded(context.Background(), g)
		return gradePersistedMsg{Err: err, Complete: complete}
	}
}

func (s *DrillScreen) View(width, height int) string {
	if s.persistErr != "" {
		return layout.Center(theme.Incorrect.Render("Could not save attempt: "+s.persistErr), width, height)
	}

	card := s.sc.Current()
	if card == nil {
		return layout.Center(theme.Hint.Render("Wrapping up..."), width, height)
	}

	question := theme.Kana.Render(bigGlyph(card.Question))

	var body string
	switch s.sc.Phase {
	case core.PhasePresented:
		bar := components.CountdownBar{Width: min(width-8, 48)}
		body = question + "\n\n" +
			bar.View(s.sc.Countdown.Fraction(), s.sc.Countdown.Remaining()) + "\n\n" +
			theme.Hint.Render("Say it out loud, then reveal.")

	case core.PhaseRevealed:
		body = question + "\n\n" +
			theme.Correct.Render(card.Answer) + "\n\n" +
			theme.Hint.Render("Did you have it?")

	case core.PhaseTimedOut:
		body = question + "\n\n" +
			theme.Incorrect.Render(card.Answer) + "\n\n" +
			theme.Hint.Render("Time's up.")
	}

	level := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("level %d · streak %d", card.Level, card.Streak))

	content := lipgloss.NewStyle().Align(lipgloss.Center).Render(body + "\n\n" + level)
	return layout.Center(content, width, height)
}

// bigGlyph pads short questions so single kana do not get lost in the
// frame.
func bigGlyph(q string) string {
	return "  " + q + "  "
}
