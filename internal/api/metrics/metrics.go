// Package metrics defines the custom Prometheus metrics for the
// storefront. It is the single source of truth for metric names, labels,
// and help strings; HTTP-level request metrics come from the
// echoprometheus middleware instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// SignupsTotal counts signup attempts.
// Label:
//   - result: "ok", "duplicate_email", "invalid", "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "invalid", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// CartMutationsTotal counts cart mutations.
// Labels:
//   - op: "add", "increase", "decrease", "remove"
//   - outcome: the ports.MutationOutcome string ("added", "incremented",
//     "decremented", "removed", "noop") or "error"
var CartMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_mutations_total",
		Help:      "Total number of cart mutations, by operation and outcome.",
	},
	[]string{"op", "outcome"},
)
