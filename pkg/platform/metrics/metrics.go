package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the compliance API clients and the
// interaction nodes built on them.
type Metrics struct {
	// Round-trip latency by client and operation, including failed calls
	RequestLatency *prometheus.HistogramVec

	// Envelope errors by client, operation and error code
	Errors *prometheus.CounterVec

	// Node executions by node and branch taken
	InteractionRuns *prometheus.CounterVec
}

// New creates a Metrics instance registered on reg. A nil reg falls back to
// the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		RequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "complyhub_client_request_duration_seconds",
			Help:    "Duration of compliance API round trips by client and operation",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"client", "operation"}),

		Errors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "complyhub_client_errors_total",
			Help: "Total failed compliance API calls by error code",
		}, []string{"client", "operation", "code"}),

		InteractionRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "complyhub_interaction_runs_total",
			Help: "Total interaction node executions by branch",
		}, []string{"node", "branch"}),
	}
}

// ObserveRequest records the duration of one API call.
func (m *Metrics) ObserveRequest(client, operation string, d time.Duration) {
	if m != nil {
		m.RequestLatency.WithLabelValues(client, operation).Observe(d.Seconds())
	}
}

// IncrementError records a failed API call.
func (m *Metrics) IncrementError(client, operation, code string) {
	if m != nil {
		m.Errors.WithLabelValues(client, operation, code).Inc()
	}
}

// IncrementRun records a node execution.
func (m *Metrics) IncrementRun(node, branch string) {
	if m != nil {
		m.InteractionRuns.WithLabelValues(node, branch).Inc()
	}
}
