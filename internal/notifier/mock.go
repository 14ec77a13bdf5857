package notifier

import (
	"sync"

	"github.com/mkrogh/fantasyliga/internal/leaderboard"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendReconcileSummaryFunc func(summary RunSummary, dryRun bool) error
	SendLeaderboardFunc      func(entries []leaderboard.Entry, dryRun bool) error

	// Call records
	SendReconcileSummaryCalls []RunSummary
	SendLeaderboardCalls      [][]leaderboard.Entry
}

// NewMock creates a new mock notifier.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SendReconcileSummary(summary RunSummary, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendReconcileSummaryCalls = append(m.SendReconcileSummaryCalls, summary)
	if m.SendReconcileSummaryFunc != nil {
		return m.SendReconcileSummaryFunc(summary, dryRun)
	}
	return nil
}

func (m *Mock) SendLeaderboard(entries []leaderboard.Entry, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, entries)
	if m.SendLeaderboardFunc != nil {
		return m.SendLeaderboardFunc(entries, dryRun)
	}
	return nil
}
