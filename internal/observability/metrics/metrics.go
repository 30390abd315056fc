package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "daf_"

	resultSuccess = "success"
	resultError   = "error"
	resultEmpty   = "empty"
)

var (
	registerOnce sync.Once

	upstreamRequests *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec

	consultaTotal   *prometheus.CounterVec
	consultaLatency *prometheus.HistogramVec

	statementRenderTotal *prometheus.CounterVec

	batchGenerateTotal   *prometheus.CounterVec
	batchGenerateLatency *prometheus.HistogramVec
	batchArchiveEntries  *prometheus.CounterVec
)

// Init registers observability metrics.
func Init() {
	registerOnce.Do(func() {
		upstreamRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "upstream_requests_total",
				Help: "Total DAF consulta calls by result",
			},
			[]string{"result"},
		)
		upstreamLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "upstream_latency_seconds",
				Help:    "DAF consulta latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)

		consultaTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "consulta_total",
				Help: "Total summary consultations by result",
			},
			[]string{"result"},
		)
		consultaLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "consulta_latency_seconds",
				Help:    "Summary consultation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)

		statementRenderTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "statement_render_total",
				Help: "Total statement renders by format and result",
			},
			[]string{"format", "result"},
		)

		batchGenerateTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "batch_generate_total",
				Help: "Total batch archive generations by mode and result",
			},
			[]string{"mode", "result"},
		)
		batchGenerateLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "batch_generate_latency_seconds",
				Help:    "Batch archive generation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"mode", "result"},
		)
		batchArchiveEntries = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "batch_archive_entries_total",
				Help: "Total statements written into batch archives by mode",
			},
			[]string{"mode"},
		)

		prometheus.MustRegister(
			upstreamRequests,
			upstreamLatency,
			consultaTotal,
			consultaLatency,
			statementRenderTotal,
			batchGenerateTotal,
			batchGenerateLatency,
			batchArchiveEntries,
		)
	})
}

// ObserveUpstream records one DAF call.
func ObserveUpstream(result string, duration time.Duration) {
	if result == "" {
		result = resultSuccess
	}
	if upstreamRequests != nil {
		upstreamRequests.WithLabelValues(result).Inc()
	}
	if upstreamLatency != nil {
		upstreamLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// ObserveConsulta records one summary consultation.
func ObserveConsulta(result string, duration time.Duration) {
	if result == "" {
		result = resultSuccess
	}
	if consultaTotal != nil {
		consultaTotal.WithLabelValues(result).Inc()
	}
	if consultaLatency != nil {
		consultaLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// IncStatementRender counts one statement render.
func IncStatementRender(format, result string) {
	if format == "" {
		format = "unknown"
	}
	if result == "" {
		result = resultSuccess
	}
	if statementRenderTotal != nil {
		statementRenderTotal.WithLabelValues(format, result).Inc()
	}
}

// ObserveBatchGenerate records one batch archive generation.
func ObserveBatchGenerate(mode, result string, duration time.Duration) {
	if mode == "" {
		mode = "unknown"
	}
	if result == "" {
		result = resultSuccess
	}
	if batchGenerateTotal != nil {
		batchGenerateTotal.WithLabelValues(mode, result).Inc()
	}
	if batchGenerateLatency != nil {
		batchGenerateLatency.WithLabelValues(mode, result).Observe(duration.Seconds())
	}
}

// AddArchiveEntries counts statements written into an archive.
func AddArchiveEntries(mode string, count int) {
	if count <= 0 {
		return
	}
	if mode == "" {
		mode = "unknown"
	}
	if batchArchiveEntries != nil {
		batchArchiveEntries.WithLabelValues(mode).Add(float64(count))
	}
}

// Exported constants for callers.
const (
	ResultSuccess = resultSuccess
	ResultError   = resultError
	ResultEmpty   = resultEmpty
)
