package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics provides observability for the reading calculators and registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// Completed readings by kind: "numerology", "astrology"
	Readings *prometheus.CounterVec

	// Engine latency by kind
	ReadingDuration *prometheus.HistogramVec

	// Rejected requests by kind and offending field
	ValidationFailures *prometheus.CounterVec

	// Readings computed but not archived
	ArchiveFailures *prometheus.CounterVec

	UsersCreated prometheus.Counter
}

// New registers every collector on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		Readings: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "oraculo_readings_total",
			Help: "Total readings computed by kind",
		}, []string{"kind"}),

		ReadingDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "oraculo_reading_duration_seconds",
			Help:    "Duration of reading calculations by kind",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"kind"}),

		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "oraculo_validation_failures_total",
			Help: "Rejected reading requests by kind and field",
		}, []string{"kind", "field"}),

		ArchiveFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "oraculo_archive_failures_total",
			Help: "Readings that could not be written to the archive",
		}, []string{"kind"}),

		UsersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "oraculo_users_created_total",
			Help: "Total registered users",
		}),
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveReading records one completed reading and its duration.
func (m *Metrics) ObserveReading(kind string, d time.Duration) {
	if m != nil {
		m.Readings.WithLabelValues(kind).Inc()
		m.ReadingDuration.WithLabelValues(kind).Observe(d.Seconds())
	}
}

// IncrementValidationFailure records a rejected request.
func (m *Metrics) IncrementValidationFailure(kind, field string) {
	if m != nil {
		m.ValidationFailures.WithLabelValues(kind, field).Inc()
	}
}

// IncrementArchiveFailure records a reading that was not archived.
func (m *Metrics) IncrementArchiveFailure(kind string) {
	if m != nil {
		m.ArchiveFailures.WithLabelValues(kind).Inc()
	}
}

// IncrementUsersCreated records a new registration.
func (m *Metrics) IncrementUsersCreated() {
	if m != nil {
		m.UsersCreated.Inc()
	}
}
