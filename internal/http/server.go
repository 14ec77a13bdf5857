package http

import (
	"net/http"

	"github.com/mkrogh/fantasyliga/internal/catalog"
	"github.com/mkrogh/fantasyliga/internal/config"
	"github.com/mkrogh/fantasyliga/internal/ingest"
	"github.com/mkrogh/fantasyliga/internal/lineup"
	"github.com/mkrogh/fantasyliga/internal/metrics"
	"github.com/mkrogh/fantasyliga/internal/notifier"
	"github.com/mkrogh/fantasyliga/internal/performance"
	"github.com/mkrogh/fantasyliga/internal/points"
	"github.com/mkrogh/fantasyliga/internal/pubsub"
	"github.com/mkrogh/fantasyliga/internal/scoring"
)

func NewServer(
	catalogStore catalog.Store,
	performanceStore performance.Store,
	lineupStore lineup.Store,
	pointsStore points.Store,
	ingestSvc *ingest.Service,
	reconciler *scoring.Reconciler,
	notifier notifier.Notifier,
	metricsSvc metrics.Metrics,
	metricsHandler http.Handler,
	cfg config.Config,
	pubsub pubsub.PubSubClient,
) *Server {
	server := &Server{
		Catalog:        catalogStore,
		Performances:   performanceStore,
		Lineups:        lineupStore,
		Points:         pointsStore,
		Ingest:         ingestSvc,
		Reconciler:     reconciler,
		Notifier:       notifier,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
	s.Router.Handle("/players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.Router.Handle("/performances", Chain(s.ListPerformancesHandler(), paramsMiddleware))
	s.Router.Handle("/ingest", Chain(s.IngestHandler(), paramsMiddleware))
	s.Router.Handle("/lineup", Chain(s.UpsertLineupHandler(), paramsMiddleware))
	s.Router.Handle("/lineup/validate", Chain(s.ValidateLineupHandler(), paramsMiddleware))
	s.Router.Handle("/lineups", Chain(s.ListLineupsHandler(), paramsMiddleware))
	s.Router.Handle("/teams", Chain(s.UpsertTeamsHandler(), paramsMiddleware))
	s.Router.Handle("/reconcile", Chain(s.ReconcileHandler(), paramsMiddleware))
	s.Router.Handle("/leaderboard", Chain(s.LeaderboardHandler(), paramsMiddleware))
	s.Router.Handle("/notify-leaderboard", Chain(s.NotifyLeaderboardHandler(), paramsMiddleware))
	s.Router.Handle("/pubsub/reconcile", Chain(s.ReconcileRequestedHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
