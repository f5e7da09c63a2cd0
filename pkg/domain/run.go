package domain

import "time"

// Trigger identifies what started a run
type Trigger string

const (
	// TriggerManual is a user-initiated "run now" request
	TriggerManual Trigger = "manual"
	// TriggerTimer is the daily scheduled run
	TriggerTimer Trigger = "timer"
	// TriggerCatchUp is a run executed because the scheduled moment was missed
	TriggerCatchUp Trigger = "catchup"
)

// Automated reports whether the trigger counts toward daily coverage.
// Only automated runs advance the last-run date.
func (t Trigger) Automated() bool {
	return t == TriggerTimer || t == TriggerCatchUp
}

// error codes persisted with a failed run, matching the observed protocol
const (
	ErrCodeNotLoggedIn = "not_logged_in"
	ErrCodeListFailed  = "list_failed"
)

// RunResult aggregates one complete run. Exactly one is produced per run and
// it overwrites the previously persisted one.
type RunResult struct {
	Timestamp       time.Time `json:"ts"`
	TotalTopics     int       `json:"totalTopics"`
	CheckedInBefore int       `json:"checkedInBefore"`
	NewlyCheckedIn  int       `json:"newlyCheckedIn"`
	FailedCheckin   int       `json:"failedCheckin"`
	ErrorCode       string    `json:"error,omitempty"`
}

// CompletionRate returns the fraction of topics covered after the run,
// in [0, 1]. Zero topics yields 0, not a division error.
func (r *RunResult) CompletionRate() float64 {
	total := r.TotalTopics
	if total < 1 {
		total = 1
	}
	return float64(r.CheckedInBefore+r.NewlyCheckedIn) / float64(total)
}
