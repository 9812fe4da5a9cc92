// Package metrics defines and registers all custom Prometheus metrics for the
// catalog API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register themselves with the default Prometheus registry at import
// time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// ── Workbook metrics ──────────────────────────────────────────────────────────

// TableLoadsTotal counts full-table reads from the workbook.
// Label:
//   - table: sheet name ("users", "customers", "products", "orders")
var TableLoadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "table_loads_total",
		Help:      "Total number of full-table loads from the workbook.",
	},
	[]string{"table"},
)

// TableSavesTotal counts full-table rewrites of the workbook.
var TableSavesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "table_saves_total",
		Help:      "Total number of full-table rewrites of the workbook.",
	},
	[]string{"table"},
)

// TableSaveDuration measures how long one full-workbook rewrite takes.
var TableSaveDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "table_save_duration_seconds",
		Help:      "Duration of a full workbook rewrite, by table.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"table"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Labels:
//   - role: the role presented on the login form
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// RegistrationsTotal counts completed customer registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of completed registrations.",
	},
)

// ── Report metrics ────────────────────────────────────────────────────────────

// ReportsGeneratedTotal counts admin sales reports computed from scratch.
var ReportsGeneratedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_generated_total",
		Help:      "Total number of admin sales reports generated.",
	},
)
