package searcher

import "time"

// MinBudget is the shortest time a search is ever given.
const MinBudget = 500 * time.Millisecond

type deadline interface {
	Expired() bool
}

// Timer tracks a move's time budget from the instant it is created. It is only
// polled; nothing is interrupted when it runs out.
type Timer struct {
	start  time.Time
	budget time.Duration
}

// NewTimer starts a timer. Budgets below MinBudget, including zero and negative
// ones, are raised to MinBudget.
func NewTimer(budget time.Duration) *Timer {
	return &Timer{start: time.Now(), budget: ClampBudget(budget)}
}

// ClampBudget raises a budget to at least MinBudget.
func ClampBudget(budget time.Duration) time.Duration {
	return max(budget, MinBudget)
}

func (t *Timer) Budget() time.Duration {
	return t.budget
}

// Elapsed uses the monotonic clock reading captured at start.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

func (t *Timer) Expired() bool {
	return t.Elapsed() >= t.budget
}

// never is a deadline for fixed-depth searches.
type never struct{}

func (never) Expired() bool { return false }
