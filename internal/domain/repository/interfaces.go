package repository

import "context"

// Metrics records operational counters for the analysis pipeline.
type Metrics interface {
	// RecordAssessment counts one completed bond assessment by label.
	RecordAssessment(label string)
	// RecordBondError counts one per-bond failure by error kind.
	RecordBondError(kind string)
	// RecordReconcileSource counts which source won a field-group merge.
	RecordReconcileSource(group, source string)
	// RecordLatency records operation latency in seconds.
	RecordLatency(op string, seconds float64)
}

// Publisher emits assessment events for downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, key string, value interface{}) error
}
