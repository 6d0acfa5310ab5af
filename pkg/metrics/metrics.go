// Package metrics collects Prometheus metrics for transcode runs and exports
// them in the textfile format read by the node exporter.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ssargent/revline/pkg/transcode"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds all Prometheus metrics for transcode runs
type Metrics struct {
	registry *prometheus.Registry

	transcodesTotal   *prometheus.CounterVec
	recordsTotal      *prometheus.CounterVec
	bytesReadTotal    *prometheus.CounterVec
	bytesWrittenTotal *prometheus.CounterVec
	transcodeDuration *prometheus.HistogramVec
	lastRun           *prometheus.GaugeVec
}

// NewMetrics creates all metrics on a private registry
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		transcodesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "revline_transcodes_total",
				Help: "Total number of transcode runs",
			},
			[]string{"mode", "status"},
		),

		recordsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "revline_records_total",
				Help: "Total number of records written",
			},
			[]string{"mode"},
		),

		bytesReadTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "revline_bytes_read_total",
				Help: "Total number of source bytes read",
			},
			[]string{"mode"},
		),

		bytesWrittenTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "revline_bytes_written_total",
				Help: "Total number of destination bytes written",
			},
			[]string{"mode"},
		),

		transcodeDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "revline_transcode_duration_seconds",
				Help:    "Transcode duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"mode"},
		),

		lastRun: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "revline_last_run_timestamp_seconds",
				Help: "Unix time of the last transcode run",
			},
			[]string{"run_id", "mode", "status"},
		),
	}
}

// RecordTranscode records the outcome of one transcode run
func (m *Metrics) RecordTranscode(runID string, stats transcode.Stats, err error) {
	mode := stats.Mode.String()
	status := statusSuccess
	if err != nil {
		status = statusError
	}

	m.transcodesTotal.WithLabelValues(mode, status).Inc()
	m.recordsTotal.WithLabelValues(mode).Add(float64(stats.Records))
	m.bytesReadTotal.WithLabelValues(mode).Add(float64(stats.BytesRead))
	m.bytesWrittenTotal.WithLabelValues(mode).Add(float64(stats.BytesWritten))
	m.transcodeDuration.WithLabelValues(mode).Observe(stats.Duration.Seconds())

	// Only the latest run is reported
	m.lastRun.Reset()
	m.lastRun.WithLabelValues(runID, mode, status).SetToCurrentTime()
}

// Registry returns the registry holding the metrics
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the current metrics to path atomically
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
