package drill

import (
	"testing"
	"time"
)

var t0 = time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)

func newTestSession(cards ...Card) SessionContext {
	return NewSession("sess-1", 1, cards, t0)
}

// tickUntilTimeout drives the countdown to exhaustion.
func tickUntilTimeout(t *testing.T, sc SessionContext) SessionContext {
	t.Helper()
	for i := 0; i < 1000; i++ {
		var expired bool
		sc, expired = sc.Tick(TickInterval)
		if expired {
			return sc
		}
	}
	t.Fatal("countdown never expired")
	return sc
}

func TestSessionPresentsFirstCard(t *testing.T) {
	sc := newTestSession(Card{Hash: "a", Level: 0}, Card{Hash: "b", Level: 1})

	if sc.Phase != PhasePresented {
		t.Fatalf("phase = %v, want PhasePresented", sc.Phase)
	}
	if sc.Current().Hash != "a" {
		t.Errorf("current = %s, want a", sc.Current().Hash)
	}
	if sc.Countdown.Budget != 5*time.Second {
		t.Errorf("budget = %v, want 5s for level 0", sc.Countdown.Budget)
	}
	if sc.Remaining() != 2 {
		t.Errorf("remaining = %d, want 2", sc.Remaining())
	}
}

func TestRevealThenGrade(t *testing.T) {
	sc := newTestSession(Card{Hash: "a", Level: 0})

	sc, _ = sc.Tick(TickInterval) // 0.1s elapses
	sc, graded := sc.Apply(Action{Kind: ActionReveal}, t0.Add(1200*time.Millisecond))
	if graded != nil {
		t.Fatal("reveal must not write an attempt")
	}
	if sc.Phase != PhaseRevealed {
		t.Fatalf("phase = %v, want PhaseRevealed", sc.Phase)
	}

	// Judgment arrives later; reaction time runs to the grading moment.
	sc, graded = sc.Apply(Action{Kind: ActionGrade, Success: true}, t0.Add(2500*time.Millisecond))
	if graded == nil {
		t.Fatal("grade must produce an attempt")
	}
	if !graded.Attempt.Success {
		t.Error("success judgment lost")
	}
	if graded.Attempt.ReactionTime != 2.5 {
		t.Errorf("reaction = %v, want 2.5", graded.Attempt.ReactionTime)
	}
	if graded.Card.Streak != 1 {
		t.Errorf("card streak = %d, want 1", graded.Card.Streak)
	}
	if sc.Phase != PhaseComplete {
		t.Errorf("phase = %v, want PhaseComplete after last card", sc.Phase)
	}
}

func TestTimeoutForcesFailure(t *testing.T) {
	sc := newTestSession(Card{Hash: "a", Level: 0, Streak: 1})
	sc = tickUntilTimeout(t, sc)

	if sc.Phase != PhaseTimedOut {
		t.Fatalf("phase = %v, want PhaseTimedOut", sc.Phase)
	}

	// The learner can only acknowledge; success is forced to false.
	sc, graded := sc.Apply(Action{Kind: ActionGrade, Success: true}, t0.Add(8*time.Second))
	if graded == nil {
		t.Fatal("acknowledgment must produce the forced-failure attempt")
	}
	if graded.Attempt.Success {
		t.Error("timeout outcome must be failure regardless of the key pressed")
	}
	if graded.Attempt.ReactionTime != 5.0 {
		t.Errorf("reaction = %v, want the full 5.0s budget", graded.Attempt.ReactionTime)
	}
	if graded.Card.Streak != 0 {
		t.Errorf("streak = %d, want reset to 0", graded.Card.Streak)
	}
	if graded.Card.Level != 0 {
		t.Errorf("level = %d, want max(0-1,0) = 0", graded.Card.Level)
	}
	if sc.Phase != PhaseComplete {
		t.Errorf("phase = %v, want PhaseComplete", sc.Phase)
	}
}

func TestRevealStopsCountdown(t *testing.T) {
	sc := newTestSession(Card{Hash: "a", Level: 2})
	sc, _ = sc.Apply(Action{Kind: ActionReveal}, t0.Add(time.Second))

	// Stale ticks after reveal are harmless.
	for i := 0; i < 100; i++ {
		var expired bool
		sc, expired = sc.Tick(TickInterval)
		if expired {
			t.Fatal("countdown must not expire after reveal")
		}
	}
	if sc.Phase != PhaseRevealed {
		t.Errorf("phase = %v, want PhaseRevealed", sc.Phase)
	}
}

func TestCancelWritesNothing(t *testing.T) {
	sc := newTestSession(Card{Hash: "a"}, Card{Hash: "b"})
	sc, _ = sc.Tick(TickInterval)

	sc, graded := sc.Apply(Action{Kind: ActionCancel}, t0.Add(time.Second))
	if graded != nil {
		t.Fatal("cancel must not write an attempt")
	}
	if sc.Phase != PhaseCanceled {
		t.Fatalf("phase = %v, want PhaseCanceled", sc.Phase)
	}
	if sc.Active() {
		t.Error("canceled session must not be active")
	}

	// Cancel is idempotent.
	sc, graded = sc.Apply(Action{Kind: ActionCancel}, t0.Add(2*time.Second))
	if graded != nil || sc.Phase != PhaseCanceled {
		t.Error("second cancel must be a no-op")
	}
}

func TestGradeAdvancesToNextCard(t *testing.T) {
	sc := newTestSession(Card{Hash: "a", Level: 0}, Card{Hash: "b", Level: 2})

	sc, _ = sc.Apply(Action{Kind: ActionReveal}, t0.Add(time.Second))
	sc, graded := sc.Apply(Action{Kind: ActionGrade, Success: false}, t0.Add(2*time.Second))
	if graded == nil {
		t.Fatal("expected a graded attempt")
	}

	if sc.Phase != PhasePresented {
		t.Fatalf("phase = %v, want PhasePresented for next card", sc.Phase)
	}
	if sc.Current().Hash != "b" {
		t.Errorf("current = %s, want b", sc.Current().Hash)
	}
	if sc.Countdown.Budget != 2*time.Second {
		t.Errorf("budget = %v, want 2s for level 2 card", sc.Countdown.Budget)
	}
	if sc.Countdown.Elapsed != 0 {
		t.Errorf("countdown must restart for the new card")
	}
	if sc.Remaining() != 1 {
		t.Errorf("remaining = %d, want 1", sc.Remaining())
	}
}

func TestGradeIgnoredWhilePresented(t *testing.T) {
	sc := newTestSession(Card{Hash: "a"})
	sc, graded := sc.Apply(Action{Kind: ActionGrade, Success: true}, t0.Add(time.Second))
	if graded != nil {
		t.Fatal("grading an unrevealed card must be ignored")
	}
	if sc.Phase != PhasePresented {
		t.Errorf("phase = %v, want PhasePresented", sc.Phase)
	}
}

func TestParagraphSession(t *testing.T) {
	ps := NewParagraphSession("sess-2", 5, []string{"ねこ", "いぬ", "さくら"}, t0)

	for i := 0; i < 73; i++ {
		ps = ps.Tick(TickInterval)
	}

	ps, att := ps.Finish(t0.Add(7300 * time.Millisecond))
	if att == nil {
		t.Fatal("finish must produce the paragraph attempt")
	}
	if att.CardHash != "PARA_5" {
		t.Errorf("card hash = %q, want PARA_5", att.CardHash)
	}
	if !att.Success {
		t.Error("paragraph attempts are always recorded as success")
	}
	if att.ReactionTime != 7.3 {
		t.Errorf("reaction = %v, want 7.3", att.ReactionTime)
	}

	// Clock stops and a second finish is a no-op.
	ps = ps.Tick(TickInterval)
	if ps.Elapsed != 7300*time.Millisecond {
		t.Errorf("elapsed moved after finish: %v", ps.Elapsed)
	}
	_, att = ps.Finish(t0.Add(9 * time.Second))
	if att != nil {
		t.Error("second finish must not write another attempt")
	}
}

func TestParagraphRecordsWallTime(t *testing.T) {
	ps := NewParagraphSession("sess-3", 6, []string{"カメラ", "バス"}, t0)

	// A lagging event loop delivers only a second's worth of ticks while
	// five wall-clock seconds pass.
	for i := 0; i < 10; i++ {
		ps = ps.Tick(TickInterval)
	}

	ps, att := ps.Finish(t0.Add(5 * time.Second))
	if att == nil {
		t.Fatal("finish must produce the paragraph attempt")
	}
	if att.ReactionTime != 5.0 {
		t.Errorf("reaction = %v, want wall-clock 5.0", att.ReactionTime)
	}
	if ps.Elapsed != time.Second {
		t.Errorf("display clock = %v, want the delivered 1s of ticks", ps.Elapsed)
	}
}

func TestCountdownFraction(t *testing.T) {
	c := NewCountdown(5 * time.Second)
	if c.Fraction() != 1.0 {
		t.Errorf("fresh fraction = %v, want 1.0", c.Fraction())
	}
	c, _ = c.Advance(2500 * time.Millisecond)
	if c.Fraction() != 0.5 {
		t.Errorf("half fraction = %v, want 0.5", c.Fraction())
	}
	c, expired := c.Advance(3 * time.Second)
	if !expired || c.Fraction() != 0 {
		t.Errorf("expired fraction = %v, want 0", c.Fraction())
	}
	if c.Remaining() != 0 {
		t.Errorf("remaining = %v, want 0", c.Remaining())
	}
}
