package metrics

import (
	"fmt"
	"net/http"

	"github.com/drakos74/linear-learn/internal/linear"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// Status labels of the fit counter.
const (
	// Success marks a fit that completed all epochs.
	Success = "success"
	// Failed marks a fit rejected by the validation.
	Failed = "failed"
)

// Metrics records the training runs on a prometheus registry.
type Metrics struct {
	registry   *prometheus.Registry
	prometheus Prometheus
}

// New creates a new Metrics on its own registry.
func New() (*Metrics, error) {
	m := &Metrics{
		registry:   prometheus.NewRegistry(),
		prometheus: NewPrometheusMetrics(),
	}
	for _, c := range m.prometheus.collectors() {
		if err := m.registry.Register(c); err != nil {
			return nil, fmt.Errorf("could not register collector: %w", err)
		}
	}
	return m, nil
}

// Fit counts a fit call with the given status.
func (m *Metrics) Fit(variant linear.Variant, status string) {
	m.prometheus.Fits.WithLabelValues(string(variant), status).Inc()
}

// Observer returns an epoch observer recording the epochs and the last cost of the given variant.
func (m *Metrics) Observer(variant linear.Variant) linear.Observer {
	epochs := m.prometheus.Epochs.WithLabelValues(string(variant))
	cost := m.prometheus.Cost.WithLabelValues(string(variant))
	return func(epoch int, c float64) {
		epochs.Inc()
		cost.Set(c)
	}
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler exposes the metrics in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve starts serving the metrics on the given address
// and returns the server so that it can be shut down.
func (m *Metrics) Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	go func() {
		log.Info().Str("addr", addr).Msg("serving metrics")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Str("addr", addr).Msg("metrics server failed")
		}
	}()
	return srv
}
