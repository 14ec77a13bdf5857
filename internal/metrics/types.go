package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	IngestRuns         prometheus.Counter
	RowsAccepted       prometheus.Counter
	RowsRejected       prometheus.Counter
	FilesUnresolved    prometheus.Counter
	ReconcileRuns      prometheus.Counter
	Contributions      prometheus.Counter
	ReconcileDuration  prometheus.Histogram
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
