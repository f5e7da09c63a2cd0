package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/chaohua/pkg/checkin"
	"github.com/umputun/chaohua/pkg/domain"
)

// actionPrefix guards the single-action endpoint against foreign schemes
const actionPrefix = "/api/container/button"

// statusHandler returns server status and scheduler state
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":    "ok",
		"version":   s.version,
		"time":      time.Now().UTC(),
		"scheduler": s.scheduler.CurrentState(),
		"running":   s.runner.Running(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// getSettingsHandler returns the stored schedule and the armed timer moment
func (s *Server) getSettingsHandler(w http.ResponseWriter, r *http.Request) {
	schedule, ok, err := s.store.GetSchedule(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to load settings: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	resp := map[string]interface{}{"settings": schedule, "configured": ok, "nextRun": nil}
	if next, armed := s.scheduler.NextRun(); armed {
		resp["nextRun"] = next
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// updateSettingsHandler applies a schedule change and re-arms the scheduler
func (s *Server) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var schedule domain.Schedule
	if err := json.NewDecoder(r.Body).Decode(&schedule); err != nil {
		renderError(w, r, fmt.Errorf("invalid settings payload"), http.StatusBadRequest)
		return
	}
	if err := schedule.Validate(); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.scheduler.Update(r.Context(), schedule); err != nil {
		lgr.Printf("[ERROR] failed to update schedule: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	resp := map[string]interface{}{"ok": true, "nextRun": nil}
	if next, armed := s.scheduler.NextRun(); armed {
		resp["nextRun"] = next
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// runNowHandler triggers a manual run and waits for it to complete.
// The run is detached from the request context so a dropped client
// doesn't cancel it mid-way.
func (s *Server) runNowHandler(w http.ResponseWriter, r *http.Request) {
	result, err := s.runner.Run(context.Background(), domain.TriggerManual)
	switch {
	case errors.Is(err, checkin.ErrRunInProgress):
		renderError(w, r, err, http.StatusConflict)
		return
	case errors.Is(err, checkin.ErrNotAuthenticated):
		renderError(w, r, err, http.StatusBadGateway)
		return
	case err != nil:
		lgr.Printf("[ERROR] manual run failed: %v", err)
		renderError(w, r, err, http.StatusBadGateway)
		return
	}
	renderJSON(w, r, http.StatusOK, result)
}

// stopHandler requests cooperative stop of the in-flight run
func (s *Server) stopHandler(w http.ResponseWriter, r *http.Request) {
	s.runner.Stop()
	renderJSON(w, r, http.StatusOK, map[string]bool{"ok": true})
}

// checkinHandler performs a single check-in action by its scheme
func (s *Server) checkinHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Scheme string `json:"scheme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid checkin payload"), http.StatusBadRequest)
		return
	}
	if !strings.HasPrefix(req.Scheme, actionPrefix) {
		renderError(w, r, fmt.Errorf("scheme must start with %s", actionPrefix), http.StatusBadRequest)
		return
	}

	ok := s.actor.PerformAction(r.Context(), req.Scheme)
	renderJSON(w, r, http.StatusOK, map[string]bool{"ok": ok})
}

// lastResultHandler returns the last persisted run result
func (s *Server) lastResultHandler(w http.ResponseWriter, r *http.Request) {
	result, err := s.store.GetLastResult(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to load last result: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if result == nil {
		renderError(w, r, fmt.Errorf("no result recorded yet"), http.StatusNotFound)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"result":         result,
		"completionRate": result.CompletionRate(),
	})
}

// analyzeHandler runs a status analysis without performing any check-in
func (s *Server) analyzeHandler(w http.ResponseWriter, r *http.Request) {
	analysis, err := s.runner.Analyze(context.Background())
	switch {
	case errors.Is(err, checkin.ErrRunInProgress):
		renderError(w, r, err, http.StatusConflict)
		return
	case errors.Is(err, checkin.ErrNotAuthenticated):
		renderError(w, r, err, http.StatusBadGateway)
		return
	case err != nil:
		lgr.Printf("[ERROR] analysis failed: %v", err)
		renderError(w, r, err, http.StatusBadGateway)
		return
	}
	renderJSON(w, r, http.StatusOK, analysis)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
