package drill

// PromoteStreak is the number of consecutive in-budget successes required
// to advance a card one level, and, at the top level, to mark it mastered.
const PromoteStreak = 2

// Grade applies one graded attempt to a card's projection fields and
// returns the updated card. The transition rule:
//
//   - success: streak increments; at PromoteStreak the card advances one
//     level (streak resets), or, already at MaxLevel, becomes mastered.
//   - failure or timeout: streak resets and the card demotes one level.
//
// Level never leaves [MinLevel, MaxLevel].
func Grade(c Card, success bool) Card {
	if !success {
		c.Streak = 0
		if c.Level > MinLevel {
			c.Level--
		}
		return c
	}

	c.Streak++
	if c.Streak < PromoteStreak {
		return c
	}

	c.Streak = 0
	if c.Level < MaxLevel {
		c.Level++
	} else {
		c.Mastered = true
	}
	return c
}

// SetMastered applies the manual mastery override to a card. Marking
// mastered pins the card at the top level; un-mastering sends it back to
// the bottom. The streak resets either way.
func SetMastered(c Card, mastered bool) Card {
	c.Mastered = mastered
	c.Streak = 0
	if mastered {
		c.Level = MaxLevel
	} else {
		c.Level = MinLevel
	}
	return c
}

// DeckComplete reports whether a deck should display as mastered: at
// least one card, and every card's mastered flag set. Paragraph decks
// hold no cards and are therefore never complete.
func DeckComplete(total, mastered int) bool {
	return total > 0 && total == mastered
}
