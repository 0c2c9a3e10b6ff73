// Package metrics defines and registers all custom Prometheus metrics for the
// PulsePoint wellness API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation (promauto) and exposed by the router on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pulsepoint"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "duplicate_username", "invalid_workplace", "weak_password", "invalid", "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenRejectionsTotal counts bearer tokens refused by the auth middleware.
// Label:
//   - reason: "missing", "malformed_header", "expired", "invalid"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of requests rejected during bearer token validation.",
	},
	[]string{"reason"},
)

// ── Entry metrics ─────────────────────────────────────────────────────────────

// EntriesSubmittedTotal counts accepted health entry submissions.
// Label:
//   - replayed: "true" when an Idempotency-Key matched an earlier submission
var EntriesSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_submitted_total",
		Help:      "Total number of health entry submissions, split by idempotent replay.",
	},
	[]string{"replayed"},
)

// StatsDaysReturned observes how many distinct days a workplace stats
// response contained (0 for "no data").
var StatsDaysReturned = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "stats_days_returned",
		Help:      "Number of daily records returned by the workplace stats endpoint.",
		Buckets:   []float64{0, 1, 7, 14, 30, 90, 365},
	},
)
