package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the process counters on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	Interactions   *prometheus.CounterVec
	ProviderErrors prometheus.Counter
	EmptyResults   prometheus.Counter
}

// New builds and registers all counters.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		Interactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "newspulse",
			Name:      "interactions_total",
			Help:      "User interactions handled, by kind.",
		}, []string{"kind"}),
		ProviderErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "newspulse",
			Name:      "provider_errors_total",
			Help:      "NewsAPI calls that failed (transport, status or decode).",
		}),
		EmptyResults: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "newspulse",
			Name:      "empty_results_total",
			Help:      "Provider responses that carried zero articles.",
		}),
	}

	reg.MustRegister(m.Interactions, m.ProviderErrors, m.EmptyResults)
	return m
}

// Handler exposes the registry for the ops server's /metrics route.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
