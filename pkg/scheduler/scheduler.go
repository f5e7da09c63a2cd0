package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/chaohua/pkg/domain"
)

//go:generate moq -out mocks/runner.go -pkg mocks -skip-ensure -fmt goimports . Runner
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . StateStore

// Runner executes a full check-in run
type Runner interface {
	Run(ctx context.Context, trigger domain.Trigger) (*domain.RunResult, error)
}

// StateStore persists schedule settings and scheduler bookkeeping
type StateStore interface {
	GetSchedule(ctx context.Context) (schedule domain.Schedule, ok bool, err error)
	SetSchedule(ctx context.Context, schedule domain.Schedule) error
	GetLastRunDate(ctx context.Context) (string, error)
	SetNextRun(ctx context.Context, next time.Time) error
	ClearNextRun(ctx context.Context) error
}

// State is the scheduler's lifecycle state
type State string

// scheduler states
const (
	StateDisabled       State = "disabled"
	StateArmed          State = "armed"
	StateRunning        State = "running"
	StateCatchUpPending State = "catchup_pending"
)

// Scheduler owns the daily wall-clock timer and the catch-up policy.
// It arms a timer at the next occurrence of the configured daily time,
// invokes a full run when it fires, and re-arms for the following day.
// On startup it executes a missed run synchronously when today's moment
// has passed without a recorded automated run.
type Scheduler struct {
	runner Runner
	store  StateStore

	mu       sync.Mutex
	state    State
	schedule domain.Schedule
	nextRun  time.Time

	rearmCh chan struct{}
	wg      sync.WaitGroup
	cancel  context.CancelFunc

	nowFunc func() time.Time // injectable clock for tests
}

// NewScheduler creates a scheduler in the disabled state
func NewScheduler(runner Runner, store StateStore) *Scheduler {
	return &Scheduler{
		runner:  runner,
		store:   store,
		state:   StateDisabled,
		rearmCh: make(chan struct{}, 1),
		nowFunc: time.Now,
	}
}

// Start loads the stored schedule, performs the catch-up evaluation and
// begins the timer loop. Catch-up runs synchronously before Start returns.
func (s *Scheduler) Start(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)

	schedule, ok, err := s.store.GetSchedule(ctx)
	if err != nil {
		return fmt.Errorf("load schedule: %w", err)
	}

	switch {
	case !ok || !schedule.EnableDaily:
		s.mu.Lock()
		s.state = StateDisabled
		s.mu.Unlock()
		lgr.Printf("[INFO] scheduler started disabled")
	default:
		s.mu.Lock()
		s.schedule = schedule
		s.mu.Unlock()
		s.evaluateCatchUp(ctx, schedule)
		if err := s.arm(ctx, schedule); err != nil {
			return fmt.Errorf("arm schedule: %w", err)
		}
	}

	s.wg.Add(1)
	go s.loop(ctx)
	return nil
}

// Stop terminates the timer loop and waits for it to finish
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// Update applies a user schedule change: persists it, then disarms or
// re-arms the timer accordingly. Callable from any state.
func (s *Scheduler) Update(ctx context.Context, schedule domain.Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	if err := s.store.SetSchedule(ctx, schedule); err != nil {
		return fmt.Errorf("persist schedule: %w", err)
	}

	s.mu.Lock()
	s.schedule = schedule
	s.mu.Unlock()

	if !schedule.EnableDaily {
		s.mu.Lock()
		s.state = StateDisabled
		s.nextRun = time.Time{}
		s.mu.Unlock()
		if err := s.store.ClearNextRun(ctx); err != nil {
			lgr.Printf("[WARN] failed to clear next run: %v", err)
		}
		s.signalRearm()
		lgr.Printf("[INFO] daily schedule disabled")
		return nil
	}

	if err := s.arm(ctx, schedule); err != nil {
		return err
	}
	s.signalRearm()
	return nil
}

// CurrentState returns the scheduler state
func (s *Scheduler) CurrentState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// NextRun returns the armed timer moment, ok=false when not armed
func (s *Scheduler) NextRun() (next time.Time, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateArmed {
		return time.Time{}, false
	}
	return s.nextRun, true
}

// arm computes the next occurrence of the daily time and persists it
func (s *Scheduler) arm(ctx context.Context, schedule domain.Schedule) error {
	next, err := schedule.NextOccurrence(s.nowFunc())
	if err != nil {
		return fmt.Errorf("compute next occurrence: %w", err)
	}

	s.mu.Lock()
	s.state = StateArmed
	s.nextRun = next
	s.mu.Unlock()

	if err := s.store.SetNextRun(ctx, next); err != nil {
		lgr.Printf("[WARN] failed to persist next run: %v", err)
	}
	lgr.Printf("[INFO] armed daily run at %s", next.Format(time.RFC1123))
	return nil
}

// evaluateCatchUp runs a missed daily run: the scheduled moment already
// passed today and no automated run is recorded for today
func (s *Scheduler) evaluateCatchUp(ctx context.Context, schedule domain.Schedule) {
	hour, minute, err := schedule.ParseDailyTime()
	if err != nil {
		lgr.Printf("[WARN] catch-up skipped, bad daily time: %v", err)
		return
	}

	now := s.nowFunc()
	today := domain.DateString(now)
	targetToday := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())

	lastRunDate, err := s.store.GetLastRunDate(ctx)
	if err != nil {
		lgr.Printf("[WARN] catch-up skipped, can't read last run date: %v", err)
		return
	}

	if !now.After(targetToday) || lastRunDate == today {
		return
	}

	lgr.Printf("[INFO] missed run for %s detected, catching up", today)
	s.mu.Lock()
	s.state = StateCatchUpPending
	s.mu.Unlock()
	s.runOnce(ctx, domain.TriggerCatchUp)
}

// runOnce invokes a full run, tolerating an already-running pipeline
func (s *Scheduler) runOnce(ctx context.Context, trigger domain.Trigger) {
	s.mu.Lock()
	s.state = StateRunning
	s.mu.Unlock()

	if _, err := s.runner.Run(ctx, trigger); err != nil {
		lgr.Printf("[WARN] %s run failed: %v", trigger, err)
	}
}

// loop waits for the armed moment, fires the run and re-arms for the next day
func (s *Scheduler) loop(ctx context.Context) {
	defer s.wg.Done()

	for {
		s.mu.Lock()
		armed := s.state == StateArmed
		next := s.nextRun
		s.mu.Unlock()

		var timerC <-chan time.Time
		var timer *time.Timer
		if armed {
			wait := time.Until(next)
			if wait < 0 {
				wait = 0
			}
			timer = time.NewTimer(wait)
			timerC = timer.C
		}

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case <-s.rearmCh:
			if timer != nil {
				timer.Stop()
			}
			continue
		case <-timerC:
			s.fire(ctx)
		}
	}
}

// fire handles a timer expiry: run, then re-arm at tomorrow's daily time
func (s *Scheduler) fire(ctx context.Context) {
	s.mu.Lock()
	if s.state != StateArmed {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.runOnce(ctx, domain.TriggerTimer)

	// re-read the schedule after the run: an update applied while the run
	// was in flight wins, and a disable is never overridden by a re-arm
	s.mu.Lock()
	schedule := s.schedule
	disabled := s.state == StateDisabled || !schedule.EnableDaily
	s.mu.Unlock()
	if disabled {
		return
	}

	// the moment just fired, so the next occurrence lands on tomorrow
	if err := s.arm(ctx, schedule); err != nil {
		lgr.Printf("[WARN] failed to re-arm: %v", err)
		s.mu.Lock()
		s.state = StateDisabled
		s.mu.Unlock()
	}
}

// signalRearm nudges the loop to pick up a state change
func (s *Scheduler) signalRearm() {
	select {
	case s.rearmCh <- struct{}{}:
	default:
	}
}
