package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncIngestRuns()
	AddRowsAccepted(n int)
	AddRowsRejected(n int)
	IncFilesUnresolved()
	IncReconcileRuns()
	AddContributions(n int)
	ObserveReconcileDuration(seconds float64)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
