package drill

import "time"

// TickInterval is the resolution of the countdown and the paragraph
// clock.
const TickInterval = 100 * time.Millisecond

// Countdown is the per-card response timer as a plain value. The shell
// advances it at TickInterval; the core only reads expiry and elapsed
// time. Dropping the value cancels it — there is nothing to stop.
type Countdown struct {
	Budget  time.Duration
	Elapsed time.Duration
}

// NewCountdown starts a countdown for one card presentation.
func NewCountdown(budget time.Duration) Countdown {
	return Countdown{Budget: budget}
}

// Advance moves the clock forward by d and reports whether the budget is
// now exhausted.
func (c Countdown) Advance(d time.Duration) (Countdown, bool) {
	c.Elapsed += d
	return c, c.Expired()
}

// Expired reports whether the budget has run out.
func (c Countdown) Expired() bool {
	return c.Elapsed >= c.Budget
}

// Remaining returns the time left, floored at zero.
func (c Countdown) Remaining() time.Duration {
	if c.Elapsed >= c.Budget {
		return 0
	}
	return c.Budget - c.Elapsed
}

// Fraction returns the remaining share of the budget in [0,1], for the
// countdown bar.
func (c Countdown) Fraction() float64 {
	if c.Budget <= 0 {
		return 0
	}
	f := 1 - float64(c.Elapsed)/float64(c.Budget)
	if f < 0 {
		return 0
	}
	return f
}
