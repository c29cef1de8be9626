// Package metrics keeps per-run prometheus counters and exports them as a
// node-exporter textfile.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "invrep"

// Metrics owns its own registry so runs never touch the global one.
type Metrics struct {
	registry *prometheus.Registry

	records    prometheus.Counter
	candidates prometheus.Counter
	selected   prometheus.Counter
	predict    prometheus.Histogram
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		records: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Input records processed.",
		}),
		candidates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_total",
			Help:      "Candidate inverted repeats after deduplication.",
		}),
		selected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selected_total",
			Help:      "Inverted repeats kept by selection.",
		}),
		predict: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "predict_seconds",
			Help:      "Wall time of one chunk scan.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
	m.registry.MustRegister(m.records, m.candidates, m.selected, m.predict)
	return m
}

// Registry exposes the registry for tests and custom exporters.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObservePredict records one chunk scan.
func (m *Metrics) ObservePredict(d time.Duration) { m.predict.Observe(d.Seconds()) }

// ObserveRecord records one finished record.
func (m *Metrics) ObserveRecord(candidates, selected int) {
	m.records.Inc()
	m.candidates.Add(float64(candidates))
	m.selected.Add(float64(selected))
}

// WriteTextfile writes every metric to path atomically. An empty path is a
// no-op.
func (m *Metrics) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
