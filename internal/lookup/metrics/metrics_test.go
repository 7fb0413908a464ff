package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"consulta/internal/identifier"
	"consulta/internal/registry/providers"
)

func TestObserveLookup(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveLookup(identifier.TypeCNPJ, "resolved")
	m.ObserveLookup(identifier.TypeCNPJ, "resolved")
	m.ObserveLookup(identifier.TypeCPF, "rejected")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.Lookups.WithLabelValues("cnpj", "resolved")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Lookups.WithLabelValues("cpf", "rejected")))
}

func TestObserveProvider(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveProvider("viacep", "", 20*time.Millisecond)
	m.ObserveProvider("viacep", providers.CategoryTimeout, time.Second)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.ProviderAttempts.WithLabelValues("viacep", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ProviderAttempts.WithLabelValues("viacep", "timeout")))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.ObserveLookup(identifier.TypeCEP, "resolved")
	m.ObserveProvider("viacep", providers.CategoryTransport, time.Millisecond)
}
