package scoring

import (
	"time"

	"github.com/mkrogh/fantasyliga/internal/calendar"
	"github.com/mkrogh/fantasyliga/internal/metrics"
	"github.com/mkrogh/fantasyliga/internal/notifier"
	"github.com/mkrogh/fantasyliga/internal/points"
	"github.com/mkrogh/fantasyliga/internal/pubsub"
)

// Reconciler runs the weekly scoring pipeline: it joins stored performance
// records against validated lineup selections and writes cumulative point
// rows back via upserts.
type Reconciler struct {
	lineups      LineupSource
	performances PerformanceSource
	catalog      CatalogSource
	points       PointsStore
	cal          *calendar.Calendar
	notifier     notifier.Notifier
	metrics      metrics.Metrics
	pubsub       pubsub.PubSubClient
}

// RunReport summarizes one reconciliation run. Row- and slot-level problems
// are absorbed into counters; only total inability to read a source fails
// the run.
type RunReport struct {
	RunID         string                `json:"run_id"`
	Selections    int                   `json:"selections"`
	Contributions []points.Contribution `json:"contributions"`
	SkippedSlots  int                   `json:"skipped_slots"`
	StoreErrors   int                   `json:"store_errors"`
	Duration      time.Duration         `json:"duration"`
}
