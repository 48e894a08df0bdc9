// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package httpapi exposes Ability/ClaimSet queries as a REST facade
// for non-Go callers: POST /v1/check, GET /v1/children, GET
// /v1/descendants, GET /v1/keys/{view}.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/samber/oops"

	"github.com/holomush/claims/ability"
	"github.com/holomush/claims/claim"
	"github.com/holomush/claims/internal/audit"
	"github.com/holomush/claims/internal/errutil"
	"github.com/holomush/claims/internal/metrics"
	"github.com/holomush/claims/keyset"
)

// AbilityLookup resolves a subject to its current Ability. Callers
// typically back this with config.Load results keyed by subject.
type AbilityLookup func(subject string) (ability.Ability, error)

// Server is the HTTP facade over the claims engine.
type Server struct {
	router   chi.Router
	lookup   AbilityLookup
	logger   *slog.Logger
	metrics  *metrics.Metrics
	recorder audit.Recorder
}

// NewServer builds a Server. logger, m, and recorder may be nil;
// nil values fall back to slog.Default(), un-instrumented metrics
// collection being skipped, and an audit.LogRecorder respectively.
func NewServer(lookup AbilityLookup, logger *slog.Logger, m *metrics.Metrics, recorder audit.Recorder) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if recorder == nil {
		recorder = audit.LogRecorder{Logger: logger}
	}

	s := &Server{lookup: lookup, logger: logger, metrics: m, recorder: recorder}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Post("/v1/check", s.handleCheck)
	r.Get("/v1/children", s.handleChildren)
	r.Get("/v1/descendants", s.handleDescendants)
	r.Get("/v1/keys/{view}", s.handleKeys)
	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type checkRequest struct {
	Subject  string `json:"subject"`
	Verb     string `json:"verb"`
	Resource string `json:"resource,omitempty"`
}

type checkResponse struct {
	Allowed    bool `json:"allowed"`
	Prohibited bool `json:"prohibited"`
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, oops.In("httpapi").Code(claim.CodeInvalidArgument).Wrapf(err, "decode check request"))
		return
	}

	a, q, ok := s.resolve(w, req.Subject, req.Verb, req.Resource)
	if !ok {
		return
	}

	start := time.Now()
	allowed := a.Can(q)
	prohibited := a.ExplicitlyProhibited(q)
	s.observe(allowed, prohibited, time.Since(start))

	if err := s.recorder.Record(r.Context(), audit.NewDecision(req.Subject, q, allowed, prohibited)); err != nil {
		errutil.LogError(s.logger, "failed to record audit decision", err)
	}

	s.writeJSON(w, http.StatusOK, checkResponse{Allowed: allowed, Prohibited: prohibited})
}

func (s *Server) handleChildren(w http.ResponseWriter, r *http.Request) {
	a, q, ok := s.resolve(w, r.URL.Query().Get("subject"), r.URL.Query().Get("verb"), r.URL.Query().Get("resource"))
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"children": a.Permitted().DirectChildren(q)})
}

func (s *Server) handleDescendants(w http.ResponseWriter, r *http.Request) {
	a, q, ok := s.resolve(w, r.URL.Query().Get("subject"), r.URL.Query().Get("verb"), r.URL.Query().Get("resource"))
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"descendants": a.Permitted().DirectDescendants(q)})
}

var keyViews = map[string]func(ability.Ability, string) (keyset.KeySet, error){
	"clients":         func(a ability.Ability, _ string) (keyset.KeySet, error) { return a.AccessToClientKeys(), nil },
	"business-groups": func(a ability.Ability, _ string) (keyset.KeySet, error) { return a.AccessToBusinessGroupKeys(), nil },
	"projects":        func(a ability.Ability, client string) (keyset.KeySet, error) { return a.AccessToProjectKeys(client) },
	"teams":           func(a ability.Ability, client string) (keyset.KeySet, error) { return a.AccessToTeamKeys(client) },
	"people":          func(a ability.Ability, client string) (keyset.KeySet, error) { return a.AccessToPeopleIDs(client) },
	"programmes":      func(a ability.Ability, client string) (keyset.KeySet, error) { return a.AccessToProgrammeKeys(client) },
}

func (s *Server) handleKeys(w http.ResponseWriter, r *http.Request) {
	view := chi.URLParam(r, "view")
	fn, ok := keyViews[view]
	if !ok {
		s.writeError(w, http.StatusNotFound, oops.In("httpapi").Code(claim.CodeInvalidArgument).Errorf("unknown key view %q", view))
		return
	}

	subject := r.URL.Query().Get("subject")
	a, err := s.lookup(subject)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}

	keys, err := fn(a, r.URL.Query().Get("client"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, keyset.Describe(keys))
}

func (s *Server) resolve(w http.ResponseWriter, subject, verb, resource string) (ability.Ability, claim.Query, bool) {
	a, err := s.lookup(subject)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return ability.Ability{}, claim.Query{}, false
	}

	q, err := claim.NewQuery(verb, resource)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return ability.Ability{}, claim.Query{}, false
	}

	return a, q, true
}

func (s *Server) observe(allowed, prohibited bool, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}
	switch {
	case prohibited:
		s.metrics.Observe(metrics.OutcomeProhibited, elapsed)
	case allowed:
		s.metrics.Observe(metrics.OutcomeAllowed, elapsed)
	default:
		s.metrics.Observe(metrics.OutcomeDenied, elapsed)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		errutil.LogError(s.logger, "failed to encode response", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	errutil.LogError(s.logger, "request failed", err)
	s.writeJSON(w, status, map[string]string{
		"error":      err.Error(),
		"request_id": uuid.NewString(),
	})
}
