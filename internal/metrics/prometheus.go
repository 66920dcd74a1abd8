package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "linear"

// Prometheus holds the collectors of the training runs.
type Prometheus struct {
	Fits   *prometheus.CounterVec
	Epochs *prometheus.CounterVec
	Cost   *prometheus.GaugeVec
}

// NewPrometheusMetrics creates the unregistered collectors.
func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Fits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fits_total",
				Help:      "number of fit calls by variant and status",
			}, []string{"variant", "status"}),
		Epochs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "epochs_total",
				Help:      "number of completed training epochs",
			}, []string{"variant"}),
		Cost: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "cost",
				Help:      "cost of the last completed epoch",
			}, []string{"variant"}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Fits, p.Epochs, p.Cost}
}
