package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	HTTPRequests   *prometheus.CounterVec
	HTTPDuration   *prometheus.HistogramVec
	AssociationOps *prometheus.CounterVec
	EventsConsumed *prometheus.CounterVec
}

// NewMetrics registers the service metrics on reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "The total number of handled HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken to serve HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		AssociationOps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "association_operations_total",
			Help:      "The total number of airline-airport association operations",
		}, []string{"operation", "result"}),
		EventsConsumed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "association_events_consumed_total",
			Help:      "The total number of association events consumed by the worker",
		}, []string{"type"}),
	}
}

// ObserveAssociation counts one association operation. Safe on a nil receiver.
func (m *Metrics) ObserveAssociation(operation, result string) {
	if m == nil {
		return
	}
	m.AssociationOps.WithLabelValues(operation, result).Inc()
}
