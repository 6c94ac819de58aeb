// Package drill implements the core engine of the trainer: the card
// mastery state machine, the session selector, and the timed attempt
// controller. It has no knowledge of storage or rendering; the store
// persists what it produces and the shell feeds it user actions.
package drill

import (
	"math"
	"time"
)

// Deck is a named grouping of cards. Decks at or above ParagraphDeckMin
// hold no cards of their own; they generate paragraph sessions from the
// corresponding word deck.
type Deck struct {
	ID     int
	Name   string
	Locked bool
}

// Card is a single question/answer unit. Level, Streak and Mastered are a
// cached projection of the attempt log, updated transactionally alongside
// each graded attempt.
type Card struct {
	Hash     string
	DeckID   int
	Question string
	Answer   string
	Level    int
	Streak   int
	Mastered bool
}

// Attempt is one immutable row of the append-only attempt log.
// ReactionTime is in seconds, rounded to three decimals.
type Attempt struct {
	CardHash     string
	ReactionTime float64
	Success      bool
	Timestamp    time.Time
}

// Difficulty levels and their per-presentation time budgets.
const (
	MinLevel = 0
	MaxLevel = 2
)

var levelBudgets = map[int]time.Duration{
	0: 5 * time.Second,
	1: 3 * time.Second,
	2: 2 * time.Second,
}

// Budget returns the response-time budget for a difficulty level.
// Unknown levels get the slowest budget.
func Budget(level int) time.Duration {
	if b, ok := levelBudgets[level]; ok {
		return b
	}
	return levelBudgets[MinLevel]
}

// Round3 rounds seconds to the millisecond precision the attempt log
// stores.
func Round3(seconds float64) float64 {
	return math.Round(seconds*1000) / 1000
}
