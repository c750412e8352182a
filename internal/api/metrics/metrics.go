// Package metrics defines and registers all custom Prometheus metrics for the
// risk profile API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "riskprofile"

// ── Intake metrics ────────────────────────────────────────────────────────────

// ProfilesSavedTotal counts successful profile submissions (insert or replace).
var ProfilesSavedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profiles_saved_total",
		Help:      "Total number of profile submissions persisted.",
	},
)

// SubmissionErrorsTotal counts rejected or failed profile submissions.
// Label:
//   - reason: "validation", "unauthenticated", or "persistence"
var SubmissionErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submission_errors_total",
		Help:      "Total number of profile submissions that failed, by reason.",
	},
	[]string{"reason"},
)

// ── Simulation metrics ────────────────────────────────────────────────────────

// SimulationsEnqueuedTotal counts run requests accepted for processing.
var SimulationsEnqueuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "simulations_enqueued_total",
		Help:      "Total number of simulation runs accepted for asynchronous processing.",
	},
)

// ── Upload metrics ────────────────────────────────────────────────────────────

// UploadsTotal counts document upload attempts.
// Label:
//   - result: "accepted", "too_large", "unsupported_type", "failed"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of document upload attempts, by result.",
	},
	[]string{"result"},
)

// ── Report metrics ────────────────────────────────────────────────────────────

// ReportsGeneratedTotal counts generated reports.
var ReportsGeneratedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_generated_total",
		Help:      "Total number of reports generated.",
	},
)
