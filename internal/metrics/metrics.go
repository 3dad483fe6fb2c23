// Package metrics registers the Prometheus collectors exposed on the
// private endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SyncCommits counts successful snapshot commits.
	SyncCommits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "event_calendar",
		Subsystem: "sync",
		Name:      "commits_total",
		Help:      "Successful snapshot commits.",
	})

	// SyncConflicts counts commits rejected by a stale version token,
	// labelled by which store (local or remote) rejected the write.
	SyncConflicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "event_calendar",
		Subsystem: "sync",
		Name:      "conflicts_total",
		Help:      "Snapshot commits rejected by a stale version token.",
	}, []string{"store"})

	// SyncLoads counts snapshot loads, including scheduled refreshes.
	SyncLoads = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "event_calendar",
		Subsystem: "sync",
		Name:      "loads_total",
		Help:      "Snapshot loads from durable storage.",
	})

	// HTTPRequests counts handled API requests by path and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "event_calendar",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Handled HTTP requests.",
	}, []string{"method", "path", "status"})
)
