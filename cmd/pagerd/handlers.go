package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/sisoputnfrba/tp-2025-2c-ElPager/internal/pager"
	"github.com/sisoputnfrba/tp-2025-2c-ElPager/internal/pagerapi"
)

// service wraps a *pager.Pager with the single coarse mutex spec §5
// requires the host to provide: internal/pager keeps no lock of its own,
// and every HTTP handler here takes svc.mu before touching svc.p, the
// same shape as the teacher's memoria module serializing access to its
// shared tables around one package-level mutex.
type service struct {
	mu  sync.Mutex
	p   *pager.Pager
	log *slog.Logger
}

func newService(p *pager.Pager, log *slog.Logger) *service {
	return &service{p: p, log: log}
}

func (s *service) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /pager/create", s.handleCreate)
	mux.HandleFunc("POST /pager/switch", s.handleSwitch)
	mux.HandleFunc("POST /pager/extend", s.handleExtend)
	mux.HandleFunc("POST /pager/fault", s.handleFault)
	mux.HandleFunc("POST /pager/destroy", s.handleDestroy)
	mux.HandleFunc("POST /pager/syslog", s.handleSyslog)
	mux.HandleFunc("GET /pager/debug", s.handleDebug)
}

func (s *service) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req pagerapi.CreateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s.mu.Lock()
	err := s.p.Create(req.PID)
	s.mu.Unlock()

	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *service) handleSwitch(w http.ResponseWriter, r *http.Request) {
	var req pagerapi.SwitchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s.mu.Lock()
	err := s.p.Switch(req.PID)
	s.mu.Unlock()

	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *service) handleExtend(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	addr, err := s.p.Extend()
	s.mu.Unlock()

	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pagerapi.ExtendResponse{Addr: addr})
}

func (s *service) handleFault(w http.ResponseWriter, r *http.Request) {
	var req pagerapi.FaultRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s.mu.Lock()
	err := s.p.Fault(req.Addr, req.Write)
	s.mu.Unlock()

	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *service) handleDestroy(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	err := s.p.Destroy()
	s.mu.Unlock()

	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *service) handleSyslog(w http.ResponseWriter, r *http.Request) {
	var req pagerapi.SyslogRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s.mu.Lock()
	err := s.p.Syslog(req.Ptr, req.Len)
	s.mu.Unlock()

	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *service) handleDebug(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snap := s.p.Snapshot()
	violations := s.p.Audit()
	s.mu.Unlock()

	if len(violations) > 0 {
		s.log.Error("invariant violations on debug snapshot", "violations", violations)
	}
	writeJSON(w, http.StatusOK, snap)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, pagerapi.ErrorResponse{Kind: "bad_request", Message: err.Error()})
		return false
	}
	return true
}

// writeError maps a pager sentinel error to the HTTP status spec §7
// calls for: 400 for an invalid address, 507 for exhaustion, 500 for
// anything else (a current-process or registry precondition failure,
// none of which a well-behaved client should ever trigger).
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	kind := "internal"

	switch {
	case errors.Is(err, pager.ErrInvalidAddress):
		status, kind = http.StatusBadRequest, "invalid_address"
	case errors.Is(err, pager.ErrExhausted):
		status, kind = http.StatusInsufficientStorage, "exhausted"
	case errors.Is(err, pager.ErrNoCurrentProcess):
		status, kind = http.StatusInternalServerError, "no_current_process"
	case errors.Is(err, pager.ErrUnknownProcess):
		status, kind = http.StatusInternalServerError, "unknown_process"
	case errors.Is(err, pager.ErrProcessExists):
		status, kind = http.StatusInternalServerError, "process_exists"
	}

	writeJSON(w, status, pagerapi.ErrorResponse{Kind: kind, Message: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
