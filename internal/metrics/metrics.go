// Package metrics defines all custom Prometheus metrics for the object
// registry API. It is the single source of truth for metric names, labels,
// and help strings; request-level metrics (latency, status codes) come from
// the echoprometheus middleware instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "objectapi"

// TokensIssuedTotal counts successful logins, labelled by the role baked
// into the issued token.
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of bearer tokens issued, by role.",
	},
	[]string{"role"},
)

// AuthRejectedTotal counts requests turned away before reaching a handler.
// Label:
//   - reason: "missing_header", "bad_scheme", "malformed", "bad_signature",
//     "expired", or "forbidden"
var AuthRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejected_total",
		Help:      "Total number of requests rejected by auth or role checks.",
	},
	[]string{"reason"},
)

// ObjectsCreatedTotal counts objects created through POST /objects.
var ObjectsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "objects_created_total",
		Help:      "Total number of objects created.",
	},
)

// TasksCompletedTotal counts task status transitions into done.
var TasksCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_completed_total",
		Help:      "Total number of tasks marked done.",
	},
)

// StatsCacheTotal counts stats cache decisions.
// Label:
//   - result: "hit" (served from Redis) or "miss" (recomputed from Postgres)
var StatsCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stats_cache_total",
		Help:      "Total number of stats cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
