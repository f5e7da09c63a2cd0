package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/chaohua/pkg/checkin"
	"github.com/umputun/chaohua/pkg/domain"
	"github.com/umputun/chaohua/pkg/scheduler"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/runner.go -pkg mocks -skip-ensure -fmt goimports . Runner
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/actor.go -pkg mocks -skip-ensure -fmt goimports . Actor

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	runner    Runner
	scheduler Scheduler
	store     Store
	actor     Actor
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Runner drives check-in runs on demand
type Runner interface {
	Run(ctx context.Context, trigger domain.Trigger) (*domain.RunResult, error)
	Analyze(ctx context.Context) (*checkin.Analysis, error)
	Stop()
	Running() bool
}

// Scheduler exposes schedule updates and timer state
type Scheduler interface {
	Update(ctx context.Context, schedule domain.Schedule) error
	CurrentState() scheduler.State
	NextRun() (next time.Time, ok bool)
}

// Store reads persisted state for the control surface
type Store interface {
	GetSchedule(ctx context.Context) (schedule domain.Schedule, ok bool, err error)
	GetLastResult(ctx context.Context) (*domain.RunResult, error)
}

// Actor performs a single check-in action with the ambient session identity
type Actor interface {
	PerformAction(ctx context.Context, scheme string) bool
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, runner Runner, scheduler Scheduler, store Store, actor Actor, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		runner:    runner,
		scheduler: scheduler,
		store:     store,
		actor:     actor,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("chaohua", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // 64KB, control requests are tiny
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /settings", s.getSettingsHandler)
		r.HandleFunc("POST /settings", s.updateSettingsHandler)
		r.HandleFunc("POST /run", s.runNowHandler)
		r.HandleFunc("POST /stop", s.stopHandler)
		r.HandleFunc("POST /checkin", s.checkinHandler)
		r.HandleFunc("GET /result", s.lastResultHandler)
		r.HandleFunc("GET /analyze", s.analyzeHandler)
	})
}
