package lineup

import "sync"

// Mock is a mock implementation of the lineup Store for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	UpsertSelectionFunc        func(selection *Selection) error
	GetSelectionFunc           func(userID, weekStart string) (*Selection, error)
	GetValidatedSelectionsFunc func() ([]*Selection, error)
	GetSelectionsForWeekFunc   func(weekStart string) ([]*Selection, error)

	// Call records
	UpsertSelectionCalls []*Selection
	ValidateCalls        []string
}

// NewMock creates a new mock lineup store.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) UpsertSelection(selection *Selection) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertSelectionCalls = append(m.UpsertSelectionCalls, selection)
	if m.UpsertSelectionFunc != nil {
		return m.UpsertSelectionFunc(selection)
	}
	return nil
}

func (m *Mock) ValidateSelection(userID, weekStart string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ValidateCalls = append(m.ValidateCalls, userID+"/"+weekStart)
	return nil
}

func (m *Mock) GetSelection(userID, weekStart string) (*Selection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetSelectionFunc != nil {
		return m.GetSelectionFunc(userID, weekStart)
	}
	return nil, nil
}

func (m *Mock) GetValidatedSelections() ([]*Selection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetValidatedSelectionsFunc != nil {
		return m.GetValidatedSelectionsFunc()
	}
	return nil, nil
}

func (m *Mock) GetSelectionsForWeek(weekStart string) ([]*Selection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetSelectionsForWeekFunc != nil {
		return m.GetSelectionsForWeekFunc(weekStart)
	}
	return nil, nil
}

func (m *Mock) Clear() error {
	return nil
}
