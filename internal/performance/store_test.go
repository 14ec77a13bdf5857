package performance_test

import (
	"testing"

	"github.com/mkrogh/fantasyliga/internal/database"
	"github.com/mkrogh/fantasyliga/internal/performance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (performance.Store, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	return performance.New(db), dbTeardown
}

func TestUpsertRecords(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	records := []performance.Record{
		{PlayerName: "viktor fischer", MatchDate: "2025-03-04", Season: "2024-2025", Score: 6.0},
		{PlayerName: "viktor fischer", MatchDate: "2025-03-06", Season: "2024-2025", Score: 8.0},
	}
	require.NoError(t, store.UpsertRecords(records))

	got, err := store.GetRecordsForPlayer("viktor fischer")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.InDelta(t, 6.0, got[0].Score, 0.001)

	t.Run("replaying the same batch leaves the row set unchanged", func(t *testing.T) {
		require.NoError(t, store.UpsertRecords(records))

		got, err := store.GetRecordsForPlayer("viktor fischer")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("re-ingestion overwrites the score", func(t *testing.T) {
		records[0].Score = 7.5
		require.NoError(t, store.UpsertRecords(records))

		got, err := store.GetRecordsForPlayer("viktor fischer")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.InDelta(t, 7.5, got[0].Score, 0.001)
	})

	t.Run("same date in another season is a distinct row", func(t *testing.T) {
		require.NoError(t, store.UpsertRecords([]performance.Record{
			{PlayerName: "viktor fischer", MatchDate: "2025-03-04", Season: "2025-2026", Score: 4.0},
		}))

		got, err := store.GetRecordsForPlayer("viktor fischer")
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})
}

func TestGetAllRecords(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.UpsertRecords([]performance.Record{
		{PlayerName: "pione sisto", MatchDate: "2025-03-05", Season: "2024-2025", Score: 5.0},
		{PlayerName: "viktor fischer", MatchDate: "2025-03-04", Season: "2024-2025", Score: 6.0},
	}))

	all, err := store.GetAllRecords()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "pione sisto", all[0].PlayerName)
}
