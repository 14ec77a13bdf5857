package points

import "sync"

// Mock is a mock implementation of the points Store for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	UpsertTeamsFunc             func(teams []Team) error
	UpsertPlayerPointsFunc      func(rows []PlayerPoints) error
	UpsertContributionsFunc     func(contributions []Contribution) error
	GetPlayerPointsFunc         func(userID string) ([]PlayerPoints, error)
	GetContributionsForWeekFunc func(weekStart string) ([]Contribution, error)
	GetTeamStandingsFunc        func() ([]TeamStanding, error)

	// Call records
	UpsertPlayerPointsCalls  [][]PlayerPoints
	UpsertContributionsCalls [][]Contribution
}

// NewMock creates a new mock points store.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) UpsertTeams(teams []Team) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpsertTeamsFunc != nil {
		return m.UpsertTeamsFunc(teams)
	}
	return nil
}

func (m *Mock) UpsertPlayerPoints(rows []PlayerPoints) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertPlayerPointsCalls = append(m.UpsertPlayerPointsCalls, rows)
	if m.UpsertPlayerPointsFunc != nil {
		return m.UpsertPlayerPointsFunc(rows)
	}
	return nil
}

func (m *Mock) UpsertContributions(contributions []Contribution) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertContributionsCalls = append(m.UpsertContributionsCalls, contributions)
	if m.UpsertContributionsFunc != nil {
		return m.UpsertContributionsFunc(contributions)
	}
	return nil
}

func (m *Mock) GetPlayerPoints(userID string) ([]PlayerPoints, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayerPointsFunc != nil {
		return m.GetPlayerPointsFunc(userID)
	}
	return nil, nil
}

func (m *Mock) GetContributionsForWeek(weekStart string) ([]Contribution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetContributionsForWeekFunc != nil {
		return m.GetContributionsForWeekFunc(weekStart)
	}
	return nil, nil
}

func (m *Mock) GetTeamStandings() ([]TeamStanding, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetTeamStandingsFunc != nil {
		return m.GetTeamStandingsFunc()
	}
	return nil, nil
}

func (m *Mock) Clear() error {
	return nil
}
