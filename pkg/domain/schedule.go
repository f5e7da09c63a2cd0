package domain

import (
	"fmt"
	"time"
)

// Schedule holds the user-controlled daily run settings.
// Mutated only by explicit user update, read by the scheduler on every re-arm.
type Schedule struct {
	EnableDaily bool   `json:"enableDaily"`
	DailyTime   string `json:"dailyTime"` // local wall-clock "HH:MM"
}

// Validate checks the schedule for correctness
func (s *Schedule) Validate() error {
	_, _, err := s.ParseDailyTime()
	return err
}

// ParseDailyTime parses the DailyTime field into hour and minute,
// accepting the strict "HH:MM" form only
func (s *Schedule) ParseDailyTime() (hour, minute int, err error) {
	if len(s.DailyTime) != len("15:04") {
		return 0, 0, fmt.Errorf("daily time %q must be HH:MM", s.DailyTime)
	}
	t, err := time.Parse("15:04", s.DailyTime)
	if err != nil {
		return 0, 0, fmt.Errorf("parse daily time %q: %w", s.DailyTime, err)
	}
	return t.Hour(), t.Minute(), nil
}

// NextOccurrence returns the next local occurrence of DailyTime after now:
// today if the moment is still ahead, otherwise tomorrow.
func (s *Schedule) NextOccurrence(now time.Time) (time.Time, error) {
	hour, minute, err := s.ParseDailyTime()
	if err != nil {
		return time.Time{}, err
	}
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !target.After(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target, nil
}

// DateString formats a calendar date the way the store keeps lastRunDate
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}
