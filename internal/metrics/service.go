package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		IngestRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "liga_ingest_runs_total",
			Help: "The total number of performance feed files ingested.",
		}),
		RowsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "liga_ingest_rows_accepted_total",
			Help: "The total number of feed rows accepted and upserted.",
		}),
		RowsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "liga_ingest_rows_rejected_total",
			Help: "The total number of feed rows dropped due to parse failures.",
		}),
		FilesUnresolved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "liga_ingest_files_unresolved_total",
			Help: "The total number of feed files rejected because the player name was unresolved.",
		}),
		ReconcileRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "liga_reconcile_runs_total",
			Help: "The total number of reconciliation runs.",
		}),
		Contributions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "liga_reconcile_contributions_total",
			Help: "The total number of weekly player contributions emitted.",
		}),
		ReconcileDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "liga_reconcile_duration_seconds",
			Help:    "The duration of full reconciliation runs.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "liga_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "liga_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "liga_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.IngestRuns,
		s.RowsAccepted,
		s.RowsRejected,
		s.FilesUnresolved,
		s.ReconcileRuns,
		s.Contributions,
		s.ReconcileDuration,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncIngestRuns() {
	s.IngestRuns.Inc()
}

func (s *Service) AddRowsAccepted(n int) {
	s.RowsAccepted.Add(float64(n))
}

func (s *Service) AddRowsRejected(n int) {
	s.RowsRejected.Add(float64(n))
}

func (s *Service) IncFilesUnresolved() {
	s.FilesUnresolved.Inc()
}

func (s *Service) IncReconcileRuns() {
	s.ReconcileRuns.Inc()
}

func (s *Service) AddContributions(n int) {
	s.Contributions.Add(float64(n))
}

func (s *Service) ObserveReconcileDuration(seconds float64) {
	s.ReconcileDuration.Observe(seconds)
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
