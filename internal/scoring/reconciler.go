package scoring

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mkrogh/fantasyliga/internal/calendar"
	"github.com/mkrogh/fantasyliga/internal/lineup"
	"github.com/mkrogh/fantasyliga/internal/metrics"
	"github.com/mkrogh/fantasyliga/internal/names"
	"github.com/mkrogh/fantasyliga/internal/notifier"
	"github.com/mkrogh/fantasyliga/internal/performance"
	"github.com/mkrogh/fantasyliga/internal/points"
	"github.com/mkrogh/fantasyliga/internal/pubsub"
)

// New creates a new Reconciler.
func New(
	lineups LineupSource,
	performances PerformanceSource,
	cat CatalogSource,
	pts PointsStore,
	cal *calendar.Calendar,
	n notifier.Notifier,
	m metrics.Metrics,
	ps pubsub.PubSubClient,
) *Reconciler {
	return &Reconciler{
		lineups:      lineups,
		performances: performances,
		catalog:      cat,
		points:       pts,
		cal:          cal,
		notifier:     n,
		metrics:      m,
		pubsub:       ps,
	}
}

// scoredRecord is one performance record with its match date parsed into the
// calendar's reference zone, ready for week-window checks.
type scoredRecord struct {
	date  time.Time
	score float64
}

// Reconcile recomputes all cumulative points from scratch: every validated
// selection is scored against the stored performance records and the results
// are upserted, so running it twice over the same inputs converges to the
// same rows. Slot-level problems (unknown player, no matches in the week)
// skip the slot and the run keeps going; only failing to read a source fails
// the run. With dryRun set nothing is written or published.
func (r *Reconciler) Reconcile(dryRun bool) (*RunReport, error) {
	start := time.Now()
	report := &RunReport{RunID: uuid.NewString()}
	log.Info("Starting points reconciliation", "run_id", report.RunID, "dry_run", dryRun)

	records, err := r.performances.GetAllRecords()
	if err != nil {
		return nil, fmt.Errorf("failed to load performance records: %w", err)
	}
	selections, err := r.lineups.GetValidatedSelections()
	if err != nil {
		return nil, fmt.Errorf("failed to load validated selections: %w", err)
	}
	players, err := r.catalog.GetAllPlayers()
	if err != nil {
		return nil, fmt.Errorf("failed to load player catalog: %w", err)
	}
	report.Selections = len(selections)

	resolver := names.NewResolver(players)
	recordsByName, lifetime := r.indexRecords(records)
	latestWeek := latestWeekByUser(selections)

	now := time.Now().Unix()
	rowsByUser := make(map[string]map[string]*points.PlayerPoints)
	contributionsByUser := make(map[string][]points.Contribution)

	for _, sel := range selections {
		week, err := r.cal.WeekOfKey(sel.WeekStart)
		if err != nil {
			log.Error("Skipping selection with invalid week key", "user", sel.UserID, "week_start", sel.WeekStart, "error", err)
			report.SkippedSlots += len(sel.Slots())
			continue
		}
		isLatest := sel.WeekStart == latestWeek[sel.UserID]

		for _, slot := range sel.Slots() {
			player, ok := resolver.ResolveExact(slot.PlayerName)
			if !ok {
				log.Warn("Skipping lineup slot: player not in catalog", "user", sel.UserID, "week_start", sel.WeekStart, "player", slot.PlayerName)
				report.SkippedSlots++
				continue
			}

			if rowsByUser[sel.UserID] == nil {
				rowsByUser[sel.UserID] = make(map[string]*points.PlayerPoints)
			}
			row := rowsByUser[sel.UserID][player.NormalizedName]
			if row == nil {
				row = &points.PlayerPoints{
					UserID:     sel.UserID,
					PlayerName: player.NormalizedName,
					Total:      lifetime[player.NormalizedName],
					UpdatedAt:  now,
				}
				rowsByUser[sel.UserID][player.NormalizedName] = row
			}

			rawScore, matchCount := sumInWindow(recordsByName[player.NormalizedName], week)
			if matchCount == 0 {
				continue
			}

			average := rawScore / float64(matchCount)
			useful := average * slot.Role.Multiplier()
			row.TotalUseful += useful
			if isLatest {
				row.LastWeek = rawScore
				row.LastWeekUseful = useful
			}

			contribution := points.Contribution{
				UserID:       sel.UserID,
				PlayerName:   player.NormalizedName,
				WeekStart:    sel.WeekStart,
				RawScore:     rawScore,
				MatchCount:   matchCount,
				Average:      average,
				Multiplier:   slot.Role.Multiplier(),
				UsefulPoints: useful,
			}
			contributionsByUser[sel.UserID] = append(contributionsByUser[sel.UserID], contribution)
			report.Contributions = append(report.Contributions, contribution)
		}
	}

	if !dryRun {
		report.StoreErrors = r.persist(rowsByUser, contributionsByUser)
	}

	report.Duration = time.Since(start)
	r.metrics.IncReconcileRuns()
	r.metrics.AddContributions(len(report.Contributions))
	r.metrics.ObserveReconcileDuration(report.Duration.Seconds())

	summary := notifier.RunSummary{
		RunID:         report.RunID,
		Selections:    report.Selections,
		Contributions: len(report.Contributions),
		SkippedSlots:  report.SkippedSlots,
		StoreErrors:   report.StoreErrors,
		Duration:      report.Duration,
	}
	if err := r.notifier.SendReconcileSummary(summary, dryRun); err != nil {
		log.Error("Failed to send reconcile summary notification", "run_id", report.RunID, "error", err)
	}
	if !dryRun {
		if err := r.pubsub.SendMessage(pubsub.EventReconcileCompleted, summary); err != nil {
			log.Error("Failed to publish reconcile-completed event", "run_id", report.RunID, "error", err)
		}
	}

	log.Info("Finished points reconciliation",
		"run_id", report.RunID,
		"selections", report.Selections,
		"contributions", len(report.Contributions),
		"skipped_slots", report.SkippedSlots,
		"store_errors", report.StoreErrors,
		"duration", report.Duration)
	return report, nil
}

// indexRecords groups records by stored player name with parsed match dates,
// and sums each player's lifetime score across all seasons.
func (r *Reconciler) indexRecords(records []performance.Record) (map[string][]scoredRecord, map[string]float64) {
	byName := make(map[string][]scoredRecord)
	lifetime := make(map[string]float64)
	for _, rec := range records {
		date, err := time.ParseInLocation(performance.DateLayout, rec.MatchDate, r.cal.Location())
		if err != nil {
			log.Warn("Skipping performance record with invalid date", "player", rec.PlayerName, "match_date", rec.MatchDate)
			continue
		}
		byName[rec.PlayerName] = append(byName[rec.PlayerName], scoredRecord{date: date, score: rec.Score})
		lifetime[rec.PlayerName] += rec.Score
	}
	return byName, lifetime
}

// latestWeekByUser finds each user's most recent validated week. Week keys
// are ISO dates, so string comparison orders them correctly.
func latestWeekByUser(selections []*lineup.Selection) map[string]string {
	latest := make(map[string]string, len(selections))
	for _, sel := range selections {
		if sel.WeekStart > latest[sel.UserID] {
			latest[sel.UserID] = sel.WeekStart
		}
	}
	return latest
}

// sumInWindow sums the scores of the records falling inside the week.
func sumInWindow(records []scoredRecord, week calendar.Week) (float64, int) {
	var sum float64
	count := 0
	for _, rec := range records {
		if week.Contains(rec.date) {
			sum += rec.score
			count++
		}
	}
	return sum, count
}

// persist writes one user's rows at a time so a failing user does not block
// the rest of the batch.
func (r *Reconciler) persist(rowsByUser map[string]map[string]*points.PlayerPoints, contributionsByUser map[string][]points.Contribution) int {
	storeErrors := 0
	for userID, rows := range rowsByUser {
		batch := make([]points.PlayerPoints, 0, len(rows))
		for _, row := range rows {
			batch = append(batch, *row)
		}
		if err := r.points.UpsertPlayerPoints(batch); err != nil {
			log.Error("Failed to upsert player points", "user", userID, "error", err)
			storeErrors++
			continue
		}
		if err := r.points.UpsertContributions(contributionsByUser[userID]); err != nil {
			log.Error("Failed to upsert weekly contributions", "user", userID, "error", err)
			storeErrors++
		}
	}
	return storeErrors
}
