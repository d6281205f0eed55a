// Package metrics defines and registers all custom Prometheus metrics for the
// shop API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register with the default Prometheus registry at package init; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shop"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "user_not_found"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts account registrations.
// Label:
//   - result: "success", "invalid", "duplicate"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// GuardDenialsTotal counts requests turned away by the session guard.
// Label:
//   - reason: "no_session" or "bad_credential"
var GuardDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_denials_total",
		Help:      "Total number of requests denied by the session guard.",
	},
	[]string{"reason"},
)

// BreakerCallsTotal counts simulated payment calls.
// Label:
//   - result: "ok" or "blocked"
var BreakerCallsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "breaker_calls_total",
		Help:      "Total number of simulated payment calls, by breaker outcome.",
	},
	[]string{"result"},
)

// CartUpdatesTotal counts cart update submissions that reached the service.
var CartUpdatesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_updates_total",
		Help:      "Total number of cart update submissions.",
	},
)
