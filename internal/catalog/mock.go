package catalog

import "sync"

// Mock is a mock implementation of the catalog Store for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	UpsertPlayersFunc             func(players []Player) error
	GetAllPlayersFunc             func() ([]Player, error)
	GetPlayerByNormalizedNameFunc func(normalizedName string) (*Player, error)
	AddPlaceholderFunc            func(name, normalizedName string) (Player, error)

	// Call records
	UpsertPlayersCalls  [][]Player
	AddPlaceholderCalls []string
}

// NewMock creates a new mock catalog store.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) UpsertPlayers(players []Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertPlayersCalls = append(m.UpsertPlayersCalls, players)
	if m.UpsertPlayersFunc != nil {
		return m.UpsertPlayersFunc(players)
	}
	return nil
}

func (m *Mock) GetAllPlayers() ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllPlayersFunc != nil {
		return m.GetAllPlayersFunc()
	}
	return nil, nil
}

func (m *Mock) GetPlayerByNormalizedName(normalizedName string) (*Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayerByNormalizedNameFunc != nil {
		return m.GetPlayerByNormalizedNameFunc(normalizedName)
	}
	return nil, nil
}

func (m *Mock) AddPlaceholder(name, normalizedName string) (Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddPlaceholderCalls = append(m.AddPlaceholderCalls, name)
	if m.AddPlaceholderFunc != nil {
		return m.AddPlaceholderFunc(name, normalizedName)
	}
	return Player{ID: "placeholder", Name: name, NormalizedName: normalizedName, Placeholder: true}, nil
}

func (m *Mock) Clear() error {
	return nil
}
