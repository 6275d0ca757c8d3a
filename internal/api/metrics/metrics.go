// Package metrics defines the custom Prometheus metrics for the Planora
// contract stub. It is the single source of truth for metric names, labels,
// and help strings; collectors register themselves on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "planora_stub"

// FixtureRequestsTotal counts fixture-backed responses per logical endpoint.
// Label:
//   - endpoint: short endpoint name (e.g. "vendor_by_id", "vendor_search")
var FixtureRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fixture_requests_total",
		Help:      "Total number of requests served from in-memory fixtures.",
	},
	[]string{"endpoint"},
)

// LoginAttemptsTotal counts stub login attempts.
// Label:
//   - result: "ok" or "rejected"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts against the stub.",
	},
	[]string{"result"},
)

// PushTokensRegisteredTotal counts push-token registrations.
var PushTokensRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "push_tokens_registered_total",
		Help:      "Total number of push tokens registered against the stub.",
	},
)
