package drill

import "testing"

func TestGradeSuccessPromotes(t *testing.T) {
	c := Card{Hash: "abc", Level: 0}

	c = Grade(c, true)
	if c.Level != 0 || c.Streak != 1 {
		t.Fatalf("after 1 success: level=%d streak=%d, want 0/1", c.Level, c.Streak)
	}

	c = Grade(c, true)
	if c.Level != 1 || c.Streak != 0 {
		t.Fatalf("after 2 successes: level=%d streak=%d, want 1/0", c.Level, c.Streak)
	}
}

func TestGradeFailureDemotes(t *testing.T) {
	c := Card{Hash: "abc", Level: 2, Streak: 1}
	c = Grade(c, false)
	if c.Level != 1 {
		t.Errorf("level = %d, want 1", c.Level)
	}
	if c.Streak != 0 {
		t.Errorf("streak = %d, want 0", c.Streak)
	}
}

func TestGradeLevelStaysInRange(t *testing.T) {
	// Repeated failures never drive level below MinLevel.
	c := Card{Hash: "lo", Level: 0}
	for i := 0; i < 5; i++ {
		c = Grade(c, false)
	}
	if c.Level != MinLevel {
		t.Errorf("level = %d, want %d", c.Level, MinLevel)
	}

	// Repeated successes never drive level above MaxLevel.
	c = Card{Hash: "hi", Level: 0}
	for i := 0; i < 20; i++ {
		c = Grade(c, true)
	}
	if c.Level != MaxLevel {
		t.Errorf("level = %d, want %d", c.Level, MaxLevel)
	}
	if !c.Mastered {
		t.Error("sustained success at top level should set mastered")
	}
}

func TestGradeMasteryRequiresStreakAtTopLevel(t *testing.T) {
	c := Card{Hash: "abc", Level: 2}

	c = Grade(c, true)
	if c.Mastered {
		t.Fatal("one success at level 2 should not master")
	}
	c = Grade(c, true)
	if !c.Mastered {
		t.Fatal("a full streak at level 2 should master")
	}
	if c.Level != 2 || c.Streak != 0 {
		t.Errorf("level=%d streak=%d after mastery, want 2/0", c.Level, c.Streak)
	}
}

func TestSetMastered(t *testing.T) {
	c := Card{Hash: "abc", Level: 1, Streak: 3}

	on := SetMastered(c, true)
	if !on.Mastered || on.Level != MaxLevel || on.Streak != 0 {
		t.Errorf("mark mastered: %+v", on)
	}

	off := SetMastered(on, false)
	if off.Mastered || off.Level != MinLevel || off.Streak != 0 {
		t.Errorf("unmark mastered: %+v", off)
	}

	// Toggling twice restores the mastered flag, not level/streak.
	if off.Mastered != c.Mastered {
		t.Error("double toggle should restore the mastered flag")
	}
}

func TestDeckComplete(t *testing.T) {
	tests := []struct {
		name            string
		total, mastered int
		want            bool
	}{
		{"empty deck", 0, 0, false},
		{"partial", 30, 12, false},
		{"all mastered", 30, 30, true},
		{"single card", 1, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeckComplete(tt.total, tt.mastered); got != tt.want {
				t.Errorf("DeckComplete(%d,%d) = %v, want %v", tt.total, tt.mastered, got, tt.want)
			}
		})
	}
}

func TestBudget(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{0, 5.0},
		{1, 3.0},
		{2, 2.0},
		{7, 5.0}, // unknown level falls back to slowest
	}
	for _, tt := range tests {
		if got := Budget(tt.level).Seconds(); got != tt.want {
			t.Errorf("Budget(%d) = %.1fs, want %.1fs", tt.level, got, tt.want)
		}
	}
}
