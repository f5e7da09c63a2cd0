package checkin

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/chaohua/pkg/domain"
)

// TopicStatus is one row of a status analysis
type TopicStatus struct {
	Name       string        `json:"name"`
	Descriptor string        `json:"descriptor,omitempty"`
	Status     domain.Status `json:"status"`
}

// Analysis summarizes check-in coverage without performing any action
type Analysis struct {
	Total          int           `json:"total"`
	CheckedIn      int           `json:"checkedIn"`
	Eligible       int           `json:"eligible"`
	CompletionRate float64       `json:"completionRate"`
	Topics         []TopicStatus `json:"topics"`
}

// Analyze fetches and classifies all topics without executing any check-in
// and without persisting anything. It shares the run guard and the stop flag
// with Run, so a concurrent trigger is dropped and a user stop is honored.
func (r *Runner) Analyze(ctx context.Context) (*Analysis, error) {
	if !r.running.CompareAndSwap(false, true) {
		return nil, ErrRunInProgress
	}
	defer r.running.Store(false)
	r.stopped.Store(false)

	runCtx := r.bindStop(ctx)
	defer r.unbindStop()

	if !r.weibo.VerifySession(runCtx) {
		return nil, ErrNotAuthenticated
	}

	topics, err := r.weibo.FetchTopics(runCtx)
	if err != nil {
		return nil, fmt.Errorf("fetch topics: %w", err)
	}

	res := &Analysis{}
	for _, topic := range topics {
		if r.stopped.Load() {
			lgr.Printf("[INFO] analysis stopped by user after %d topics", res.Total)
			break
		}

		class := Classify(topic)
		if class.Status == domain.StatusSkipped {
			continue
		}
		res.Total++
		switch class.Status {
		case domain.StatusCheckedIn:
			res.CheckedIn++
		case domain.StatusEligible:
			res.Eligible++
		}
		res.Topics = append(res.Topics, TopicStatus{Name: topic.Name, Descriptor: topic.Descriptor, Status: class.Status})
	}

	total := res.Total
	if total < 1 {
		total = 1
	}
	res.CompletionRate = float64(res.CheckedIn) / float64(total)
	return res, nil
}
