package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain/repository.Metrics using Prometheus.
type Recorder struct {
	assessments     *prometheus.CounterVec
	bondErrors      *prometheus.CounterVec
	reconcileSource *prometheus.CounterVec
	latency         *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		assessments: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bondrv_assessments_total",
				Help: "Completed bond assessments by label",
			},
			[]string{"label"},
		),
		bondErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bondrv_bond_errors_total",
				Help: "Per-bond analysis failures by error kind",
			},
			[]string{"kind"},
		),
		reconcileSource: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bondrv_reconcile_source_total",
				Help: "Winning source per reconciled market data field-group",
			},
			[]string{"group", "source"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bondrv_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordAssessment counts one completed assessment by label.
func (r *Recorder) RecordAssessment(label string) {
	r.assessments.WithLabelValues(label).Inc()
}

// RecordBondError counts a per-bond failure by kind.
func (r *Recorder) RecordBondError(kind string) {
	r.bondErrors.WithLabelValues(kind).Inc()
}

// RecordReconcileSource counts which source won a field-group merge.
func (r *Recorder) RecordReconcileSource(group, source string) {
	r.reconcileSource.WithLabelValues(group, source).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
