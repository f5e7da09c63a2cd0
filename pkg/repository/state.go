package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/chaohua/pkg/domain"
)

// storage keys, matching the observed extension layout
const (
	keySchedule    = "settings"
	keyLastRunDate = "lastRunDate"
	keyLastResult  = "lastResult"
	keyNextRun     = "nextRun"
)

// getValue retrieves a raw value; a missing key yields ok=false, not an error
func (s *Store) getValue(ctx context.Context, key string) (value string, ok bool, err error) {
	err = s.db.GetContext(ctx, &value, "SELECT value FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// setValue upserts a raw value, retrying on SQLite lock errors
func (s *Store) setValue(ctx context.Context, key, value string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
		`
		_, err := s.db.ExecContext(ctx, query, key, value)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("set %s: %w", key, err)}
		}
		return nil
	})
}

// deleteValue removes a key, treating a missing key as success
func (s *Store) deleteValue(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// GetSchedule returns the stored schedule, ok=false when never set
func (s *Store) GetSchedule(ctx context.Context) (schedule domain.Schedule, ok bool, err error) {
	raw, ok, err := s.getValue(ctx, keySchedule)
	if err != nil || !ok {
		return domain.Schedule{}, ok, err
	}
	if err := json.Unmarshal([]byte(raw), &schedule); err != nil {
		return domain.Schedule{}, false, fmt.Errorf("unmarshal schedule: %w", err)
	}
	return schedule, true, nil
}

// SetSchedule stores the schedule
func (s *Store) SetSchedule(ctx context.Context, schedule domain.Schedule) error {
	raw, err := json.Marshal(schedule)
	if err != nil {
		return fmt.Errorf("marshal schedule: %w", err)
	}
	return s.setValue(ctx, keySchedule, string(raw))
}

// GetLastRunDate returns the calendar date of the last automated run,
// empty when no automated run completed yet
func (s *Store) GetLastRunDate(ctx context.Context) (string, error) {
	raw, ok, err := s.getValue(ctx, keyLastRunDate)
	if err != nil || !ok {
		return "", err
	}
	return raw, nil
}

// SetLastRunDate stores the calendar date of the last automated run
func (s *Store) SetLastRunDate(ctx context.Context, date string) error {
	return s.setValue(ctx, keyLastRunDate, date)
}

// GetLastResult returns the last persisted run result, nil when none
func (s *Store) GetLastResult(ctx context.Context) (*domain.RunResult, error) {
	raw, ok, err := s.getValue(ctx, keyLastResult)
	if err != nil || !ok {
		return nil, err
	}
	var result domain.RunResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("unmarshal last result: %w", err)
	}
	return &result, nil
}

// SetLastResult overwrites the persisted run result
func (s *Store) SetLastResult(ctx context.Context, result *domain.RunResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal run result: %w", err)
	}
	return s.setValue(ctx, keyLastResult, string(raw))
}

// GetNextRun returns the armed timer moment, ok=false when not armed
func (s *Store) GetNextRun(ctx context.Context) (next time.Time, ok bool, err error) {
	raw, ok, err := s.getValue(ctx, keyNextRun)
	if err != nil || !ok {
		return time.Time{}, ok, err
	}
	next, err = time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse next run: %w", err)
	}
	return next, true, nil
}

// SetNextRun stores the armed timer moment
func (s *Store) SetNextRun(ctx context.Context, next time.Time) error {
	return s.setValue(ctx, keyNextRun, next.Format(time.RFC3339))
}

// ClearNextRun removes the armed timer moment
func (s *Store) ClearNextRun(ctx context.Context) error {
	return s.deleteValue(ctx, keyNextRun)
}
