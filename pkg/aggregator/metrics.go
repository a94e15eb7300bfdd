package aggregator

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	registry     *prometheus.Registry
	validators   *prometheus.GaugeVec
	skippedFiles *prometheus.GaugeVec
	lastRun      prometheus.Gauge
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		validators: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "validator_info",
				Name:      "validators",
				Help:      "Number of validators in the generated lookup table",
			},
			[]string{"network"},
		),
		skippedFiles: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "validator_info",
				Name:      "skipped_files",
				Help:      "Number of validator entries that could not be read",
			},
			[]string{"network"},
		),
		lastRun: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "validator_info",
				Name:      "last_generate_timestamp_seconds",
				Help:      "Unix time of the last successful generate run",
			},
		),
	}

	m.registry.MustRegister(m.validators, m.skippedFiles, m.lastRun)

	return m
}

func (m *Metrics) ObserveIndex(idx *Index) {
	m.validators.WithLabelValues(idx.Network()).Set(float64(idx.Len()))
	m.skippedFiles.WithLabelValues(idx.Network()).Set(float64(idx.Skipped()))
}

func (m *Metrics) ObserveRun() {
	m.lastRun.SetToCurrentTime()
}

// WriteTextfile writes all metrics in the node-exporter textfile format.
func (m *Metrics) WriteTextfile(fileName string) error {
	return prometheus.WriteToTextfile(fileName, m.registry)
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
