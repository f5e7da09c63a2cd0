package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/chaohua/pkg/checkin"
	"github.com/umputun/chaohua/pkg/domain"
	"github.com/umputun/chaohua/pkg/scheduler"
	"github.com/umputun/chaohua/server/mocks"
)

func TestServer_RunShutdown(t *testing.T) {
	srv := New(
		&mocks.ConfigProviderMock{
			GetServerConfigFunc: func() (string, time.Duration) { return "127.0.0.1:18767", 5 * time.Second },
		},
		&mocks.RunnerMock{
			RunFunc: func(ctx context.Context, trigger domain.Trigger) (*domain.RunResult, error) {
				return &domain.RunResult{}, nil
			},
			AnalyzeFunc: func(ctx context.Context) (*checkin.Analysis, error) { return &checkin.Analysis{}, nil },
			StopFunc:    func() {},
			RunningFunc: func() bool { return false },
		},
		&mocks.SchedulerMock{
			UpdateFunc:       func(ctx context.Context, schedule domain.Schedule) error { return nil },
			CurrentStateFunc: func() scheduler.State { return scheduler.StateDisabled },
			NextRunFunc:      func() (time.Time, bool) { return time.Time{}, false },
		},
		&mocks.StoreMock{
			GetScheduleFunc: func(ctx context.Context) (domain.Schedule, bool, error) {
				return domain.Schedule{}, false, nil
			},
			GetLastResultFunc: func(ctx context.Context) (*domain.RunResult, error) { return nil, nil },
		},
		&mocks.ActorMock{
			PerformActionFunc: func(ctx context.Context, scheme string) bool { return true },
		},
		"test", false)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// wait for the listener to come up
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:18767/ping")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}
