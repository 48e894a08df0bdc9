// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package audit records authorization decisions made against an
// ability.Ability, each stamped with a unique, time-sortable ID.
package audit

import (
	"context"
	"crypto/rand"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/holomush/claims/claim"
)

// Decision is one recorded Can/Cannot evaluation.
type Decision struct {
	ID         string    `json:"id"`
	Subject    string    `json:"subject"`
	Verb       string    `json:"verb"`
	Resource   string    `json:"resource,omitempty"`
	Allowed    bool      `json:"allowed"`
	Prohibited bool      `json:"prohibited"`
	DecidedAt  time.Time `json:"decided_at"`
}

// Recorder persists a Decision. Implementations must not block the
// caller's authorization path on failure beyond what they document;
// the logging Recorder below never returns an error.
type Recorder interface {
	Record(ctx context.Context, d Decision) error
}

// NewDecision builds a Decision for subject's evaluation of q against
// allowed/prohibited, stamping it with a fresh ULID.
func NewDecision(subject string, q claim.Query, allowed, prohibited bool) Decision {
	resource, _ := q.Resource()
	now := time.Now()
	return Decision{
		ID:         ulid.MustNew(ulid.Now(), rand.Reader).String(),
		Subject:    subject,
		Verb:       q.Verb(),
		Resource:   resource,
		Allowed:    allowed,
		Prohibited: prohibited,
		DecidedAt:  now,
	}
}

// LogRecorder records decisions as structured log lines. It never
// fails: a nil logger falls back to slog.Default().
type LogRecorder struct {
	Logger *slog.Logger
}

// Record implements Recorder.
func (r LogRecorder) Record(_ context.Context, d Decision) error {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("authorization decision",
		"audit_id", d.ID,
		"subject", d.Subject,
		"verb", d.Verb,
		"resource", d.Resource,
		"allowed", d.Allowed,
		"prohibited", d.Prohibited,
	)
	return nil
}
