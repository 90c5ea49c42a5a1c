package assessment

import (
	"testing"
	"time"
)

func TestClockWarningsFireOnce(t *testing.T) {
	start := time.Now()
	c := NewClock(90*time.Minute, start)

	if w := c.Tick(start.Add(30 * time.Minute)); w != WarnNone {
		t.Errorf("mid-exam tick = %v, want none", w)
	}

	if w := c.Tick(start.Add(81 * time.Minute)); w != WarnTenMinutes {
		t.Errorf("ten-minute tick = %v", w)
	}
	if w := c.Tick(start.Add(82 * time.Minute)); w != WarnNone {
		t.Errorf("repeat ten-minute tick = %v, want none", w)
	}

	if w := c.Tick(start.Add(86 * time.Minute)); w != WarnFiveMinutes {
		t.Errorf("five-minute tick = %v", w)
	}
	if w := c.Tick(start.Add(87 * time.Minute)); w != WarnNone {
		t.Errorf("repeat five-minute tick = %v, want none", w)
	}

	if w := c.Tick(start.Add(91 * time.Minute)); w != WarnOvertime {
		t.Errorf("overtime tick = %v", w)
	}
	if w := c.Tick(start.Add(95 * time.Minute)); w != WarnNone {
		t.Errorf("repeat overtime tick = %v, want none", w)
	}
}

func TestClockSkippedThresholdsCollapse(t *testing.T) {
	start := time.Now()
	c := NewClock(90*time.Minute, start)

	// A long wake gap can jump straight past several thresholds; only the
	// most urgent notice fires.
	if w := c.Tick(start.Add(2 * time.Hour)); w != WarnOvertime {
		t.Errorf("tick = %v, want overtime", w)
	}
	if w := c.Tick(start.Add(3 * time.Hour)); w != WarnNone {
		t.Errorf("later tick = %v, want none", w)
	}
}

func TestClockRemainingGoesNegative(t *testing.T) {
	start := time.Now()
	c := NewClock(time.Minute, start)

	if r := c.Remaining(start.Add(90 * time.Second)); r >= 0 {
		t.Errorf("remaining = %v, want negative", r)
	}
	if e := c.Elapsed(start.Add(90 * time.Second)); e != 90*time.Second {
		t.Errorf("elapsed = %v", e)
	}
}

func TestClockZeroBudgetUsesDefault(t *testing.T) {
	c := NewClock(0, time.Now())
	if c.Budget() != DefaultExamBudget {
		t.Errorf("budget = %v, want %v", c.Budget(), DefaultExamBudget)
	}
}

func TestClockShortBudget(t *testing.T) {
	// Budgets shorter than the warning thresholds still work: the first
	// tick inside five minutes latches both warnings.
	start := time.Now()
	c := NewClock(4*time.Minute, start)

	if w := c.Tick(start.Add(time.Second)); w != WarnFiveMinutes {
		t.Errorf("tick = %v, want five-minute warning", w)
	}
	if w := c.Tick(start.Add(2 * time.Second)); w != WarnNone {
		t.Errorf("repeat tick = %v, want none", w)
	}
}
