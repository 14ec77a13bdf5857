package notifier

import (
	"time"

	"github.com/mkrogh/fantasyliga/internal/leaderboard"
)

// RunSummary is the condensed outcome of one reconciliation run, shaped for
// human-facing notifications.
type RunSummary struct {
	RunID         string
	Selections    int
	Contributions int
	SkippedSlots  int
	StoreErrors   int
	Duration      time.Duration
}

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	SendReconcileSummary(summary RunSummary, dryRun bool) error
	SendLeaderboard(entries []leaderboard.Entry, dryRun bool) error
}
