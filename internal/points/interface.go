package points

// Store defines the interface for the cumulative points tables.
type Store interface {
	UpsertTeams(teams []Team) error
	UpsertPlayerPoints(rows []PlayerPoints) error
	UpsertContributions(contributions []Contribution) error
	GetPlayerPoints(userID string) ([]PlayerPoints, error)
	GetContributionsForWeek(weekStart string) ([]Contribution, error)
	GetTeamStandings() ([]TeamStanding, error)
	Clear() error
}
