package leaderboard_test

import (
	"testing"

	"github.com/mkrogh/fantasyliga/internal/leaderboard"
	"github.com/mkrogh/fantasyliga/internal/points"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	standings := []points.TeamStanding{
		{UserID: "u1", TeamName: "Dyre Drenge", Budget: 100, TotalUseful: 10},  // 10 per point
		{UserID: "u2", TeamName: "Kuponklubben", Budget: 40, TotalUseful: 10}, // 4 per point
		{UserID: "u3", TeamName: "Benchwarmers", Budget: 80, TotalUseful: 0},  // never scored
		{UserID: "u4", TeamName: "Midtbanen", Budget: 60, TotalUseful: 10},    // 6 per point
	}

	ranked := leaderboard.Rank(standings)
	require.Len(t, ranked, 3, "teams with zero useful points are not ranked")
	assert.Equal(t, "u2", ranked[0].UserID)
	assert.Equal(t, "u4", ranked[1].UserID)
	assert.Equal(t, "u1", ranked[2].UserID)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, 3, ranked[2].Rank)
	assert.InDelta(t, 4.0, ranked[0].CostPerPoint, 0.001)
}

func TestRankTieBreak(t *testing.T) {
	standings := []points.TeamStanding{
		{UserID: "expensive", Budget: 100, TotalUseful: 20}, // 5 per point
		{UserID: "cheap", Budget: 50, TotalUseful: 10},      // 5 per point
	}

	ranked := leaderboard.Rank(standings)
	require.Len(t, ranked, 2)
	assert.Equal(t, "cheap", ranked[0].UserID, "cheaper team wins the tie")
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 2, ranked[1].Rank)
}

func TestRankDenseRanks(t *testing.T) {
	standings := []points.TeamStanding{
		{UserID: "a", Budget: 50, TotalUseful: 10},
		{UserID: "b", Budget: 50, TotalUseful: 10},
		{UserID: "c", Budget: 90, TotalUseful: 10},
	}

	ranked := leaderboard.Rank(standings)
	require.Len(t, ranked, 3)
	assert.Equal(t, ranked[0].Rank, ranked[1].Rank, "identical key shares a rank")
	assert.Equal(t, ranked[0].Rank+1, ranked[2].Rank)
}

func TestRankEmpty(t *testing.T) {
	assert.Empty(t, leaderboard.Rank(nil))
	assert.Empty(t, leaderboard.Rank([]points.TeamStanding{{UserID: "u1", Budget: 10, TotalUseful: 0}}))
}

func TestRankNegativePointsExcluded(t *testing.T) {
	standings := []points.TeamStanding{
		{UserID: "scorer", Budget: 50, TotalUseful: 10},
		{UserID: "subzero", Budget: 50, TotalUseful: -3}, // would sort first on negative cost-per-point
	}

	ranked := leaderboard.Rank(standings)
	require.Len(t, ranked, 1)
	assert.Equal(t, "scorer", ranked[0].UserID)
}
