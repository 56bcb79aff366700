// Package metrics exposes Prometheus collectors for the server. A nil
// *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/ecotracker/internal/emission"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ecotracker"

type Metrics struct {
	registry *prometheus.Registry

	entries   *prometheus.CounterVec
	emissions *prometheus.CounterVec
	offsets   prometheus.Counter
	invalid   *prometheus.CounterVec
	drift     *prometheus.CounterVec
	requests  *prometheus.HistogramVec
}

// New registers all collectors on a private registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		entries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_logged_total",
			Help:      "Entries persisted, by category.",
		}, []string{"category"}),
		emissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "co2_emissions_kg_total",
			Help:      "CO2 emissions logged, in kg, by category.",
		}, []string{"category"}),
		offsets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "co2_offset_kg_total",
			Help:      "CO2 offset logged through tree planting, in kg.",
		}),
		invalid: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_input_total",
			Help:      "Rejected submissions, by offending field.",
		}, []string{"field"}),
		drift: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entry_drift_total",
			Help:      "Stored entries that no longer match a replay with the current factors, by category and kind.",
		}, []string{"category", "kind"}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "API request latency, by transport, method and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"transport", "method", "code"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.entries, m.emissions, m.offsets, m.invalid, m.drift, m.requests,
	)
	return m
}

// Registry is exposed for tests and for extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveEntry records a persisted entry.
func (m *Metrics) ObserveEntry(a emission.Assessment) {
	if m == nil {
		return
	}
	category := string(a.Category)
	m.entries.WithLabelValues(category).Inc()
	if a.CO2Emissions > 0 {
		m.emissions.WithLabelValues(category).Add(a.CO2Emissions)
	}
	if a.CO2Offset > 0 {
		m.offsets.Add(a.CO2Offset)
	}
}

// ObserveInvalid records a submission rejected because of field.
func (m *Metrics) ObserveInvalid(field string) {
	if m == nil {
		return
	}
	m.invalid.WithLabelValues(field).Inc()
}

// Drift kinds.
const (
	DriftMismatch     = "mismatch"
	DriftUnreplayable = "unreplayable"
)

// ObserveDrift records a stored entry that differs from its replay.
func (m *Metrics) ObserveDrift(category, kind string) {
	if m == nil {
		return
	}
	m.drift.WithLabelValues(category, kind).Inc()
}

// ObserveRequest records one API call.
func (m *Metrics) ObserveRequest(transport, method, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(transport, method, code).Observe(d.Seconds())
}
