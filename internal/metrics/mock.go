package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                 sync.Mutex
	ingestRuns         int
	rowsAccepted       int
	rowsRejected       int
	filesUnresolved    int
	reconcileRuns      int
	contributions      int
	reconcileDurations []float64
	slackNotifSent     int
	slackNotifFailed   int
	startupTime        float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		reconcileDurations: make([]float64, 0),
	}
}

func (m *Mock) IncIngestRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ingestRuns++
}

func (m *Mock) AddRowsAccepted(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rowsAccepted += n
}

func (m *Mock) AddRowsRejected(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rowsRejected += n
}

func (m *Mock) IncFilesUnresolved() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.filesUnresolved++
}

func (m *Mock) IncReconcileRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reconcileRuns++
}

func (m *Mock) AddContributions(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contributions += n
}

func (m *Mock) ObserveReconcileDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reconcileDurations = append(m.reconcileDurations, seconds)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// IngestRuns returns the number of times IncIngestRuns was called.
func (m *Mock) IngestRuns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ingestRuns
}

// RowsAccepted returns the accumulated accepted-row count.
func (m *Mock) RowsAccepted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rowsAccepted
}

// RowsRejected returns the accumulated rejected-row count.
func (m *Mock) RowsRejected() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rowsRejected
}

// FilesUnresolved returns the number of times IncFilesUnresolved was called.
func (m *Mock) FilesUnresolved() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.filesUnresolved
}

// ReconcileRuns returns the number of times IncReconcileRuns was called.
func (m *Mock) ReconcileRuns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reconcileRuns
}

// Contributions returns the accumulated contribution count.
func (m *Mock) Contributions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.contributions
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
