// Package metrics defines and registers the gateway's custom Prometheus
// metrics. It is the single source of truth for metric names, labels, and
// help strings; registration happens implicitly via promauto at import time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "space_booking"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionInvalidationsTotal counts full session teardowns.
// Label:
//   - reason: "logout", "token_rejected", "token_expired", "profile_fetch_failed"
var SessionInvalidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_invalidations_total",
		Help:      "Total number of sessions cleared, by reason.",
	},
	[]string{"reason"},
)

// GuardDenialsTotal counts route-guard denials.
// Label:
//   - requirement: "guest", "authenticated", "admin", "manager"
var GuardDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_denials_total",
		Help:      "Total number of route entries denied by the access policy, by requirement.",
	},
	[]string{"requirement"},
)

// ── Booking metrics ───────────────────────────────────────────────────────────

// BookingsCreatedTotal counts bookings created through the gateway.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created.",
	},
)

// BookingsCancelledTotal counts user-initiated cancellations that reached the
// backend and succeeded; locally rejected attempts are not counted.
var BookingsCancelledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_cancelled_total",
		Help:      "Total number of bookings cancelled.",
	},
)

// ReviewsSubmittedTotal counts review submissions that passed the eligibility
// gate and were accepted by the backend.
var ReviewsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_submitted_total",
		Help:      "Total number of reviews submitted.",
	},
)
