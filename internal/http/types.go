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

type Server struct {
	Catalog        catalog.Store
	Performances   performance.Store
	Lineups        lineup.Store
	Points         points.Store
	Ingest         *ingest.Service
	Reconciler     *scoring.Reconciler
	Notifier       notifier.Notifier
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
