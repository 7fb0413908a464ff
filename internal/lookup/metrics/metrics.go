// Package metrics holds the Prometheus instruments for the lookup engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"consulta/internal/identifier"
	"consulta/internal/registry/providers"
)

// Metrics aggregates lookup and provider instrumentation. A nil *Metrics is
// valid and records nothing, so tests can skip registration.
type Metrics struct {
	Lookups          *prometheus.CounterVec
	ProviderAttempts *prometheus.CounterVec
	ProviderLatency  *prometheus.HistogramVec
}

// New creates and registers all metrics. A nil registerer falls back to the
// default registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "consulta_lookups_total",
			Help: "Lookups by identifier type and terminal status.",
		}, []string{"type", "status"}),
		ProviderAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "consulta_provider_attempts_total",
			Help: "Provider attempts by provider and result category.",
		}, []string{"provider", "result"}),
		ProviderLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "consulta_provider_latency_seconds",
			Help:    "Provider attempt latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
	}
}

// ObserveLookup counts one finished lookup.
func (m *Metrics) ObserveLookup(t identifier.Type, status string) {
	if m == nil {
		return
	}
	m.Lookups.WithLabelValues(string(t), status).Inc()
}

// ObserveProvider records one provider attempt. An empty category means
// success.
func (m *Metrics) ObserveProvider(provider string, category providers.Category, elapsed time.Duration) {
	if m == nil {
		return
	}
	result := "ok"
	if category != "" {
		result = string(category)
	}
	m.ProviderAttempts.WithLabelValues(provider, result).Inc()
	m.ProviderLatency.WithLabelValues(provider).Observe(elapsed.Seconds())
}
