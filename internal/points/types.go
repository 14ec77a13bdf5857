package points

import (
	"database/sql"
	"sync"
)

// store handles all database operations for cumulative points.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// PlayerPoints is one user's cumulative points for one player, upsert-keyed
// on (user, player). total is the player's lifetime sum of canonical match
// scores; totalUseful only grows for weeks the player was part of the user's
// validated lineup, discounted for substitutes. The last-week columns are
// overwritten snapshots, never accumulated into.
type PlayerPoints struct {
	UserID         string  `json:"user_id"`
	PlayerName     string  `json:"player_name"`
	Total          float64 `json:"total_points"`
	TotalUseful    float64 `json:"total_points_useful"`
	LastWeek       float64 `json:"last_week_points"`
	LastWeekUseful float64 `json:"last_week_points_useful"`
	UpdatedAt      int64   `json:"updated_at"`
}

// Contribution is the derived weekly result for one (user, player, week):
// the raw in-window score, its average over the week's matches, and the
// useful points after the role multiplier.
type Contribution struct {
	UserID       string  `json:"user_id"`
	PlayerName   string  `json:"player_name"`
	WeekStart    string  `json:"week_start"`
	RawScore     float64 `json:"raw_score"`
	MatchCount   int     `json:"match_count"`
	Average      float64 `json:"average"`
	Multiplier   float64 `json:"multiplier"`
	UsefulPoints float64 `json:"useful_points"`
}

// Team is one user's fantasy team: display name and the budget spent
// assembling the roster.
type Team struct {
	UserID   string  `json:"user_id"`
	TeamName string  `json:"team_name"`
	Budget   float64 `json:"budget"`
}

// TeamStanding is the leaderboard read model: a team plus its summed useful
// points across the roster.
type TeamStanding struct {
	UserID      string  `json:"user_id"`
	TeamName    string  `json:"team_name"`
	Budget      float64 `json:"budget"`
	TotalUseful float64 `json:"total_points_useful"`
}
