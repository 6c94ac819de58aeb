// Package decks implements the deck selection screen, the entry point
// of the trainer.
package decks

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akiho/kanaflash/internal/config"
	"github.com/akiho/kanaflash/internal/drill"
	"github.com/akiho/kanaflash/internal/router"
	"github.com/akiho/kanaflash/internal/screen"
	drillscreen "github.com/akiho/kanaflash/internal/screens/drill"
	"github.com/akiho/kanaflash/internal/screens/paragraph"
	"github.com/akiho/kanaflash/internal/screens/report"
	"github.com/akiho/kanaflash/internal/store"
	"github.com/akiho/kanaflash/internal/ui/components"
	"github.com/akiho/kanaflash/internal/ui/layout"
	"github.com/akiho/kanaflash/internal/ui/theme"
)

// DecksScreen lists the six decks with their mastery progress.
type DecksScreen struct {
	st  *store.Store
	cfg config.Config
	rng *rand.Rand

	menu      components.Menu
	summaries []store.DeckSummary
	notice    string
	errMsg    string
}

var _ screen.Screen = (*DecksScreen)(nil)
var _ screen.KeyHintProvider = (*DecksScreen)(nil)

// summariesMsg carries the reloaded deck list.
type summariesMsg struct {
	Summaries []store.DeckSummary
	Err       error
}

// noticeMsg surfaces a non-fatal problem (empty deck, thin vocabulary).
type noticeMsg string

// New creates the deck selection screen.
func New(st *store.Store, cfg config.Config, rng *rand.Rand) *DecksScreen {
	return &DecksScreen{st: st, cfg: cfg, rng: rng}
}

func (s *DecksScreen) Init() tea.Cmd {
	return s.loadSummaries()
}

func (s *DecksScreen) Title() string {
	return "Decks"
}

func (s *DecksScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Drill"},
		{Key: "R", Description: "Report"},
		{Key: "M", Description: "Toggle mastery"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *DecksScreen) loadSummaries() tea.Cmd {
	return func() tea.Msg {
		summaries, err := s.st.DeckSummaries(context.Background())
		return summariesMsg{Summaries: summaries, Err: err}
	}
}

func (s *DecksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case summariesMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.summaries = msg.Summaries
		s.rebuildMenu()
		return s, nil

	case noticeMsg:
		s.notice = string(msg)
		return s, nil

	case screen.RefreshMsg:
		return s, s.loadSummaries()

	case tea.KeyMsg:
		switch msg.String() {
		case "m":
			return s, s.toggleMastery()
		case "r":
			if sum := s.selectedSummary(); sum != nil {
				deckID := sum.Deck.ID
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: report.New(s.st, deckID)}
				}
			}
			return s, nil
		}
		s.notice = ""
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *DecksScreen) selectedSummary() *store.DeckSummary {
	if s.menu.Selected < 0 || s.menu.Selected >= len(s.summaries) {
		return nil
	}
	return &s.summaries[s.menu.Selected]
}

func (s *DecksScreen) rebuildMenu() {
	selected := s.menu.Selected

	items := make([]components.MenuItem, 0, len(s.summaries))
	for _, sum := range s.summaries {
		deckID := sum.Deck.ID

		detail := ""
		switch {
		case drill.IsParagraphDeck(deckID):
			detail = "timed reading"
		case sum.Complete():
			detail = "★ complete"
		default:
			detail = fmt.Sprintf("%d/%d mastered", sum.Mastered, sum.Total)
		}

		items = append(items, components.MenuItem{
			Label:  sum.Deck.Name,
			Detail: detail,
			Action: func() tea.Cmd { return s.startSession(deckID) },
		})
	}

	s.menu = components.NewMenu(items)
	if selected < len(items) {
		s.menu.Selected = selected
	}
}

// startSession builds the queue (or word set) for a deck and pushes the
// matching drill screen. Selection failures become an inline notice.
func (s *DecksScreen) startSession(deckID int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		if drill.IsParagraphDeck(deckID) {
			words, err := s.st.Questions(ctx, drill.SourceWordDeck(deckID))
			if err != nil {
				return noticeMsg(err.Error())
			}
			picked, err := drill.PickWords(s.rng, words)
			if err != nil {
				slog.Warn("paragraph session refused", "deck", deckID, "words", len(words), "err", err)
				return noticeMsg(fmt.Sprintf("Need at least %d words in the source deck first.", drill.ParagraphWordCount))
			}
			return router.PushScreenMsg{
				Screen: paragraph.New(s.st, deckID, s.deckName(deckID), picked, s.cfg),
			}
		}

		cards, err := s.st.Cards(ctx, deckID)
		if err != nil {
			return noticeMsg(err.Error())
		}
		queue, err := drill.BuildQueue(s.rng, cards, s.cfg.SessionSize)
		if err != nil {
			slog.Warn("drill session refused", "deck", deckID, "err", err)
			return noticeMsg("This deck has no cards yet.")
		}
		return router.PushScreenMsg{
			Screen: drillscreen.New(s.st, deckID, s.deckName(deckID), queue, s.cfg),
		}
	}
}

// toggleMastery flips every card in the selected deck between mastered
// and fresh, then reloads.
func (s *DecksScreen) toggleMastery() tea.Cmd {
	sum := s.selectedSummary()
	if sum == nil || drill.IsParagraphDeck(sum.Deck.ID) || sum.Total == 0 {
		return nil
	}
	deckID := sum.Deck.ID
	target := !sum.Complete()
	return func() tea.Msg {
		if err := s.st.SetDeckMastery(context.Background(), deckID, target); err != nil {
			return noticeMsg(err.Error())
		}
		slog.Info("deck mastery toggled", "deck", deckID, "mastered", target)
		summaries, err := s.st.DeckSummaries(context.Background())
		return summariesMsg{Summaries: summaries, Err: err}
	}
}

func (s *DecksScreen) deckName(deckID int) string {
	for _, sum := range s.summaries {
		if sum.Deck.ID == deckID {
			return sum.Deck.Name
		}
	}
	return fmt.Sprintf("Deck %d", deckID)
}

func (s *DecksScreen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.Center(theme.Incorrect.Render(s.errMsg), width, height)
	}
	if len(s.summaries) == 0 {
		return layout.Center(theme.Hint.Render("Loading decks..."), width, height)
	}

	title := theme.Title.Render("Choose a deck")
	sub := theme.Subtitle.Render("Flip, grade, repeat.")

	body := title + "\n" + sub + "\n\n" + s.menu.View()
	if s.notice != "" {
		body += "\n" + theme.Incorrect.Render(s.notice)
	}

	return layout.Center(lipgloss.NewStyle().Align(lipgloss.Left).Render(body), width, height)
}
