package performance

import "sync"

// Mock is a mock implementation of the performance Store for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	UpsertRecordsFunc       func(records []Record) error
	GetRecordsForPlayerFunc func(playerName string) ([]Record, error)
	GetAllRecordsFunc       func() ([]Record, error)

	// Call records
	UpsertRecordsCalls [][]Record
}

// NewMock creates a new mock performance store.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) UpsertRecords(records []Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertRecordsCalls = append(m.UpsertRecordsCalls, records)
	if m.UpsertRecordsFunc != nil {
		return m.UpsertRecordsFunc(records)
	}
	return nil
}

func (m *Mock) GetRecordsForPlayer(playerName string) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetRecordsForPlayerFunc != nil {
		return m.GetRecordsForPlayerFunc(playerName)
	}
	return nil, nil
}

func (m *Mock) GetAllRecords() ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllRecordsFunc != nil {
		return m.GetAllRecordsFunc()
	}
	return nil, nil
}

func (m *Mock) Clear() error {
	return nil
}
