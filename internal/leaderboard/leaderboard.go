// Package leaderboard derives the cost-efficiency ranking over all teams.
package leaderboard

import (
	"sort"

	"github.com/mkrogh/fantasyliga/internal/points"
)

// Entry is one ranked row of the leaderboard.
type Entry struct {
	UserID       string  `json:"user_id"`
	TeamName     string  `json:"team_name"`
	Budget       float64 `json:"budget"`
	Points       float64 `json:"points"`
	CostPerPoint float64 `json:"cost_per_point"`
	Rank         int     `json:"rank"`
}

// Rank orders teams by cost efficiency: ascending budget-per-useful-point,
// cheaper team winning ties. Teams with zero accumulated useful points have
// not scored and are not ranked, so no infinity ever enters the comparison.
// Negative totals are excluded too: a negative cost-per-point would sort
// above every scoring team, rewarding sub-zero output with first place.
// Pure and stateless; the input is not modified.
func Rank(standings []points.TeamStanding) []Entry {
	entries := make([]Entry, 0, len(standings))
	for _, st := range standings {
		if st.TotalUseful <= 0 {
			continue
		}
		entries = append(entries, Entry{
			UserID:       st.UserID,
			TeamName:     st.TeamName,
			Budget:       st.Budget,
			Points:       st.TotalUseful,
			CostPerPoint: st.Budget / st.TotalUseful,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].CostPerPoint != entries[j].CostPerPoint {
			return entries[i].CostPerPoint < entries[j].CostPerPoint
		}
		return entries[i].Budget < entries[j].Budget
	})

	// Dense 1-based ranks: teams with an identical sort key share a rank.
	rank := 0
	for i := range entries {
		if i == 0 || entries[i].CostPerPoint != entries[i-1].CostPerPoint || entries[i].Budget != entries[i-1].Budget {
			rank++
		}
		entries[i].Rank = rank
	}
	return entries
}
