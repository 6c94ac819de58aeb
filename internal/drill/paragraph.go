package drill

import "time"

// ParagraphSession times one whole paragraph composition. Unlike card
// sessions there is no per-item pressure: the clock runs until the
// learner signals done, and a single success attempt is logged under the
// deck's pseudo-id.
type ParagraphSession struct {
	ID        string
	DeckID    int
	Words     []string
	StartedAt time.Time
	done      bool

	// Elapsed is the display clock, advanced by delivered ticks. The
	// recorded time comes from the wall clock, so a lagging event loop
	// cannot shorten the log.
	Elapsed time.Duration
}

// NewParagraphSession starts the clock over an already-picked word set.
func NewParagraphSession(id string, deckID int, words []string, now time.Time) ParagraphSession {
	return ParagraphSession{ID: id, DeckID: deckID, Words: words, StartedAt: now}
}

// Tick advances the display clock. Ticks after Finish are ignored.
func (ps ParagraphSession) Tick(d time.Duration) ParagraphSession {
	if !ps.done {
		ps.Elapsed += d
	}
	return ps
}

// Done reports whether Finish has been called.
func (ps ParagraphSession) Done() bool {
	return ps.done
}

// Finish stops the clock and returns the single attempt to record. The
// recorded time is wall time since the session started, not the tick
// sum. Calling it twice returns nil the second time.
func (ps ParagraphSession) Finish(now time.Time) (ParagraphSession, *Attempt) {
	if ps.done {
		return ps, nil
	}
	ps.done = true
	return ps, &Attempt{
		CardHash:     ParagraphID(ps.DeckID),
		ReactionTime: Round3(now.Sub(ps.StartedAt).Seconds()),
		Success:      true,
		Timestamp:    now,
	}
}
