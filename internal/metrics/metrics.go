// Package metrics holds the Prometheus collectors for quiz and HTTP activity.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "thisorthat"

// Metrics is safe to use as a nil pointer; every method becomes a no-op.
type Metrics struct {
	sessionsStarted   prometheus.Counter
	choicesRecorded   *prometheus.CounterVec
	profilesBuilt     *prometheus.CounterVec
	selectionsSkipped prometheus.Counter
	catalogDesigns    prometheus.Gauge
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

// MustNewMetrics registers the collectors on reg and panics if any name is
// already taken. Tests should pass a fresh prometheus.NewRegistry().
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		sessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "quiz",
			Name:      "sessions_started_total",
			Help:      "Quiz sessions created.",
		}),
		choicesRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "quiz",
			Name:      "choices_total",
			Help:      "Choices submitted to quiz sessions by outcome.",
		}, []string{"outcome"}),
		profilesBuilt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "profiles_built_total",
			Help:      "Results profiles built by source (session, analyze).",
		}, []string{"source"}),
		selectionsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "selections_skipped_total",
			Help:      "Selections whose design could not be resolved.",
		}),
		catalogDesigns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "designs",
			Help:      "Designs in the current catalog snapshot.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
	reg.MustRegister(
		m.sessionsStarted,
		m.choicesRecorded,
		m.profilesBuilt,
		m.selectionsSkipped,
		m.catalogDesigns,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

func (m *Metrics) SessionStarted() {
	if m == nil {
		return
	}
	m.sessionsStarted.Inc()
}

// ChoiceRecorded counts a choice; outcome is "accepted", "invalid" or "complete".
func (m *Metrics) ChoiceRecorded(outcome string) {
	if m == nil {
		return
	}
	m.choicesRecorded.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ProfileBuilt(source string, skipped int) {
	if m == nil {
		return
	}
	m.profilesBuilt.WithLabelValues(source).Inc()
	if skipped > 0 {
		m.selectionsSkipped.Add(float64(skipped))
	}
}

func (m *Metrics) SetCatalogSize(n int) {
	if m == nil {
		return
	}
	m.catalogDesigns.Set(float64(n))
}

func (m *Metrics) ObserveRequest(route, method, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, status).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(d.Seconds())
}
