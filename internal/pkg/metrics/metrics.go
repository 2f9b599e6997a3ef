// Package metrics exposes the service's Prometheus collectors and the
// /metrics handler. Counters are package-level; adapters increment them at
// the point where the counted thing actually happens.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// TransitionsApplied counts committed order status transitions by action.
	TransitionsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Name:      "order_transitions_applied_total",
		Help:      "Committed order status transitions.",
	}, []string{"action"})

	// EventsPublished counts domain events successfully handed to the bus.
	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Name:      "events_published_total",
		Help:      "Domain events published to the event bus.",
	}, []string{"event_type"})

	// EventsPublishFailed counts publish attempts the bus rejected.
	EventsPublishFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Name:      "events_publish_failed_total",
		Help:      "Domain event publications that failed.",
	})

	// EventsIngested counts bus events appended to order event logs.
	EventsIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Name:      "events_ingested_total",
		Help:      "Bus events appended to order event logs.",
	}, []string{"event_type"})

	// EventsMalformed counts bus messages dropped for missing routing fields.
	EventsMalformed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Name:      "events_malformed_total",
		Help:      "Bus messages dropped as malformed.",
	})
)

// Handler returns the HTTP handler serving the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
