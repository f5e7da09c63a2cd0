package checkin

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/chaohua/pkg/domain"
)

//go:generate moq -out mocks/weibo.go -pkg mocks -skip-ensure -fmt goimports . Weibo
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . ResultStore

// Weibo is the authenticated execution context for all remote calls.
// An implementation carries the account's session identity so that
// browsing and actions are indistinguishable from page traffic.
type Weibo interface {
	VerifySession(ctx context.Context) bool
	FetchTopics(ctx context.Context) ([]domain.Topic, error)
	PerformAction(ctx context.Context, scheme string) bool
}

// ResultStore persists run outcomes
type ResultStore interface {
	SetLastResult(ctx context.Context, result *domain.RunResult) error
	SetLastRunDate(ctx context.Context, date string) error
}

// ErrRunInProgress is returned when a trigger arrives while a run is active.
// Concurrent triggers are dropped, not queued.
var ErrRunInProgress = errors.New("run already in progress")

// ErrNotAuthenticated is returned when the session check fails before a run
var ErrNotAuthenticated = errors.New("not authenticated")

// Runner executes the full check-in pipeline: session gate, topic list,
// per-topic classification and action, aggregation and persistence.
// A run is strictly sequential with pacing between actions; the run guard
// makes concurrent triggers no-op.
type Runner struct {
	weibo        Weibo
	store        ResultStore
	checkinDelay time.Duration

	running atomic.Bool
	stopped atomic.Bool

	mu        sync.Mutex
	cancelRun context.CancelFunc
}

// NewRunner creates a runner. checkinDelay is the minimum spacing imposed
// after every executed check-in action, success or failure.
func NewRunner(w Weibo, store ResultStore, checkinDelay time.Duration) *Runner {
	return &Runner{weibo: w, store: store, checkinDelay: checkinDelay}
}

// Running reports whether a run or analysis is currently in flight
func (r *Runner) Running() bool {
	return r.running.Load()
}

// Stop requests graceful termination of the in-flight run. The flag is
// checked at the top of the entry loop and the run context is cancelled,
// so an in-flight pagination stops at the next page boundary. The current
// action completes and partial totals are still aggregated and persisted.
func (r *Runner) Stop() {
	if !r.running.Load() {
		return
	}
	lgr.Printf("[INFO] stop requested")
	r.stopped.Store(true)
	r.mu.Lock()
	if r.cancelRun != nil {
		r.cancelRun()
	}
	r.mu.Unlock()
}

// bindStop derives the run-owned context cancelled by Stop. Persistence
// keeps the caller's context so a stopped run can still save its totals.
func (r *Runner) bindStop(ctx context.Context) context.Context {
	runCtx, cancel := context.WithCancel(ctx)
	r.mu.Lock()
	r.cancelRun = cancel
	r.mu.Unlock()
	return runCtx
}

func (r *Runner) unbindStop() {
	r.mu.Lock()
	if r.cancelRun != nil {
		r.cancelRun()
		r.cancelRun = nil
	}
	r.mu.Unlock()
}

// Run executes one complete run. The returned result is also persisted as
// the last result, including authentication and list failures, so a caller
// can always retrieve the latest snapshot.
func (r *Runner) Run(ctx context.Context, trigger domain.Trigger) (*domain.RunResult, error) {
	if !r.running.CompareAndSwap(false, true) {
		return nil, ErrRunInProgress
	}
	defer r.running.Store(false)
	r.stopped.Store(false)

	runCtx := r.bindStop(ctx)
	defer r.unbindStop()

	started := time.Now()
	lgr.Printf("[INFO] run started, trigger %s", trigger)
	result := &domain.RunResult{Timestamp: started}

	if !r.weibo.VerifySession(runCtx) {
		result.ErrorCode = domain.ErrCodeNotLoggedIn
		r.persist(ctx, result, trigger)
		return result, ErrNotAuthenticated
	}

	topics, err := r.weibo.FetchTopics(runCtx)
	if err != nil {
		result.ErrorCode = domain.ErrCodeListFailed
		r.persist(ctx, result, trigger)
		return result, fmt.Errorf("fetch topics: %w", err)
	}

	for _, topic := range topics {
		if r.stopped.Load() {
			lgr.Printf("[INFO] run stopped by user after %d topics", result.TotalTopics)
			break
		}

		class := Classify(topic)
		if class.Status == domain.StatusSkipped {
			continue
		}
		result.TotalTopics++

		switch class.Status {
		case domain.StatusCheckedIn:
			result.CheckedInBefore++
		case domain.StatusEligible:
			if r.weibo.PerformAction(runCtx, class.Scheme) {
				result.NewlyCheckedIn++
				lgr.Printf("[DEBUG] checked in: %s", topic.Name)
			} else {
				result.FailedCheckin++
				lgr.Printf("[WARN] check-in failed: %s", topic.Name)
			}
			r.pace(runCtx)
		}
	}

	r.persist(ctx, result, trigger)
	lgr.Printf("[INFO] run completed in %v: %d topics, %d before, %d new, %d failed, %.1f%% covered",
		time.Since(started).Round(time.Millisecond), result.TotalTopics, result.CheckedInBefore,
		result.NewlyCheckedIn, result.FailedCheckin, result.CompletionRate()*100)
	return result, nil
}

// persist overwrites the last result and, for completed automated runs,
// advances the last-run date used by catch-up bookkeeping
func (r *Runner) persist(ctx context.Context, result *domain.RunResult, trigger domain.Trigger) {
	if err := r.store.SetLastResult(ctx, result); err != nil {
		lgr.Printf("[WARN] failed to persist run result: %v", err)
	}
	if trigger.Automated() && result.ErrorCode == "" {
		if err := r.store.SetLastRunDate(ctx, domain.DateString(result.Timestamp)); err != nil {
			lgr.Printf("[WARN] failed to persist last run date: %v", err)
		}
	}
}

// pace keeps the minimum spacing after an executed action
func (r *Runner) pace(ctx context.Context) {
	select {
	case <-time.After(r.checkinDelay):
	case <-ctx.Done():
	}
}
