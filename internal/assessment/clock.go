package assessment

import "time"

// DefaultExamBudget mirrors the real exam's time allowance.
const DefaultExamBudget = 90 * time.Minute

// Warning is a time-pressure notice latched by the exam clock.
type Warning int

const (
	WarnNone Warning = iota
	WarnTenMinutes
	WarnFiveMinutes
	WarnOvertime
)

// Clock tracks elapsed exam time against a fixed budget. Running over budget
// never blocks the exam; it only latches the overtime notice. Each warning
// fires exactly once per clock.
type Clock struct {
	budget  time.Duration
	started time.Time

	warned10 bool
	warned5  bool
	overtime bool
}

// NewClock starts a clock with the given budget.
func NewClock(budget time.Duration, now time.Time) *Clock {
	if budget <= 0 {
		budget = DefaultExamBudget
	}
	return &Clock{budget: budget, started: now}
}

// Budget returns the configured allowance.
func (c *Clock) Budget() time.Duration { return c.budget }

// Elapsed returns time spent since the clock started.
func (c *Clock) Elapsed(now time.Time) time.Duration {
	return now.Sub(c.started)
}

// Remaining returns budget minus elapsed. Negative once over budget.
func (c *Clock) Remaining(now time.Time) time.Duration {
	return c.budget - c.Elapsed(now)
}

// Tick evaluates the thresholds at now and returns the newly crossed
// warning, or WarnNone. A warning already latched is never returned again,
// and crossing several thresholds at once yields only the most urgent.
func (c *Clock) Tick(now time.Time) Warning {
	remaining := c.Remaining(now)

	if remaining <= 0 && !c.overtime {
		c.overtime = true
		c.warned5 = true
		c.warned10 = true
		return WarnOvertime
	}
	if remaining <= 5*time.Minute && !c.warned5 && !c.overtime {
		c.warned5 = true
		c.warned10 = true
		return WarnFiveMinutes
	}
	if remaining <= 10*time.Minute && !c.warned10 && !c.overtime {
		c.warned10 = true
		return WarnTenMinutes
	}
	return WarnNone
}
