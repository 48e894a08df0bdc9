// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package metrics instruments Ability decisions with Prometheus
// counters and a latency histogram.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for authorization checks.
type Metrics struct {
	DecisionsTotal *prometheus.CounterVec
	CheckDuration  prometheus.Histogram
}

// New creates and registers the claims engine's metrics against reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		DecisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "claims_decisions_total",
				Help: "Total number of Ability.Can decisions, by outcome",
			},
			[]string{"outcome"},
		),
		CheckDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "claims_check_duration_seconds",
				Help:    "Latency of a single Ability.Can evaluation",
				Buckets: prometheus.DefBuckets,
			},
		),
	}

	reg.MustRegister(m.DecisionsTotal)
	reg.MustRegister(m.CheckDuration)

	return m
}

// Outcome labels a recorded decision.
type Outcome string

const (
	OutcomeAllowed    Outcome = "allowed"
	OutcomeDenied     Outcome = "denied"
	OutcomeProhibited Outcome = "prohibited"
)

// Observe records the outcome and elapsed duration of one check.
func (m *Metrics) Observe(outcome Outcome, elapsed time.Duration) {
	m.DecisionsTotal.WithLabelValues(string(outcome)).Inc()
	m.CheckDuration.Observe(elapsed.Seconds())
}
