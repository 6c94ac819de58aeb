package drill

import "time"

// Phase is the state of the current card in the timed attempt machine.
type Phase int

const (
	// PhasePresented: question shown, countdown running.
	PhasePresented Phase = iota
	// PhaseRevealed: answer shown before timeout; awaiting the learner's
	// success/failure judgment with no further time pressure.
	PhaseRevealed
	// PhaseTimedOut: budget exhausted, answer auto-shown; the only exit
	// is acknowledging the miss.
	PhaseTimedOut
	// PhaseComplete: queue exhausted, session over.
	PhaseComplete
	// PhaseCanceled: learner navigated away; nothing was written for the
	// in-flight card.
	PhaseCanceled
)

// ActionKind enumerates the user actions the controller consumes.
type ActionKind int

const (
	ActionReveal ActionKind = iota
	ActionGrade
	ActionDone
	ActionCancel
)

// Action is one user action from the rendering shell. Success is only
// meaningful for ActionGrade.
type Action struct {
	Kind    ActionKind
	Success bool
}

// Graded is the output of grading one card: the attempt row to append
// and the card projection after the mastery transition. The store must
// apply both as a single atomic unit.
type Graded struct {
	Attempt Attempt
	Card    Card
}

// SessionContext is the full state of one card session as a value. Every
// transition returns a new context, which keeps the controller testable
// without a live shell.
type SessionContext struct {
	ID     string // session id, for logging
	DeckID int
	Queue  []Card
	Index  int
	Phase  Phase

	Countdown   Countdown
	PresentedAt time.Time
}

// NewSession builds a session context over an already-selected queue and
// presents the first card.
func NewSession(id string, deckID int, queue []Card, now time.Time) SessionContext {
	sc := SessionContext{ID: id, DeckID: deckID, Queue: queue}
	return sc.present(now)
}

// Current returns the card being presented, or nil once the session has
// left the per-card phases.
func (sc SessionContext) Current() *Card {
	if sc.Index >= len(sc.Queue) {
		return nil
	}
	return &sc.Queue[sc.Index]
}

// Remaining returns how many cards are left, counting the current one.
func (sc SessionContext) Remaining() int {
	return len(sc.Queue) - sc.Index
}

// Active reports whether the session still has a card in flight.
func (sc SessionContext) Active() bool {
	switch sc.Phase {
	case PhasePresented, PhaseRevealed, PhaseTimedOut:
		return sc.Index < len(sc.Queue)
	}
	return false
}

func (sc SessionContext) present(now time.Time) SessionContext {
	sc.Phase = PhasePresented
	sc.PresentedAt = now
	sc.Countdown = NewCountdown(Budget(sc.Queue[sc.Index].Level))
	return sc
}

// Tick advances the countdown by d. On budget exhaustion the card moves
// to PhaseTimedOut; the answer is auto-shown and the eventual outcome is
// forced to failure. Ticks outside PhasePresented are ignored, which
// makes a stale tick after reveal or cancel harmless.
func (sc SessionContext) Tick(d time.Duration) (SessionContext, bool) {
	if sc.Phase != PhasePresented {
		return sc, false
	}
	var expired bool
	sc.Countdown, expired = sc.Countdown.Advance(d)
	if expired {
		sc.Phase = PhaseTimedOut
	}
	return sc, expired
}

// Apply consumes one user action. When the action grades the current
// card it returns the Graded record to persist; every other transition
// returns a nil Graded and writes nothing.
func (sc SessionContext) Apply(a Action, now time.Time) (SessionContext, *Graded) {
	switch a.Kind {
	case ActionCancel:
		// Side-effect-free from any phase.
		sc.Phase = PhaseCanceled
		return sc, nil

	case ActionReveal:
		if sc.Phase != PhasePresented {
			return sc, nil
		}
		sc.Phase = PhaseRevealed
		return sc, nil

	case ActionGrade:
		switch sc.Phase {
		case PhaseRevealed:
			return sc.grade(a.Success, now.Sub(sc.PresentedAt), now)
		case PhaseTimedOut:
			// Acknowledgment only: the miss is already decided and the
			// reaction time is the full budget.
			return sc.grade(false, sc.Countdown.Budget, now)
		}
		return sc, nil
	}

	return sc, nil
}

func (sc SessionContext) grade(success bool, reaction time.Duration, now time.Time) (SessionContext, *Graded) {
	card := sc.Queue[sc.Index]
	graded := &Graded{
		Attempt: Attempt{
			CardHash:     card.Hash,
			ReactionTime: Round3(reaction.Seconds()),
			Success:      success,
			Timestamp:    now,
		},
		Card: Grade(card, success),
	}
	sc.Queue[sc.Index] = graded.Card

	sc.Index++
	if sc.Index < len(sc.Queue) {
		sc = sc.present(now)
	} else {
		sc.Phase = PhaseComplete
	}
	return sc, graded
}
