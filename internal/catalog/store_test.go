package catalog_test

import (
	"testing"

	"github.com/mkrogh/fantasyliga/internal/catalog"
	"github.com/mkrogh/fantasyliga/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (catalog.Store, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	return catalog.New(db), dbTeardown
}

func TestUpsertPlayers(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	players := []catalog.Player{
		{ID: "p1", Name: "Viktor Fischer", NormalizedName: "viktor fischer", Position: "Striker", Club: "FCK", MarketValue: 4.5},
		{ID: "p2", Name: "Lasse Schöne", NormalizedName: "lasse schone", Position: "Midfielder", Club: "NEC"},
	}
	require.NoError(t, store.UpsertPlayers(players))

	all, err := store.GetAllPlayers()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Viktor Fischer", all[0].Name)
	assert.InDelta(t, 4.5, all[0].MarketValue, 0.001)

	// Re-upserting with changed fields updates, never duplicates.
	players[0].Club = "Middelfart"
	require.NoError(t, store.UpsertPlayers(players))

	all, err = store.GetAllPlayers()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Middelfart", all[0].Club)
}

func TestGetPlayerByNormalizedName(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.UpsertPlayers([]catalog.Player{
		{ID: "p1", Name: "Pione Sisto", NormalizedName: "pione sisto"},
	}))

	t.Run("finds a known name", func(t *testing.T) {
		p, err := store.GetPlayerByNormalizedName("pione sisto")
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "p1", p.ID)
	})

	t.Run("returns nil for an unknown name", func(t *testing.T) {
		p, err := store.GetPlayerByNormalizedName("nobody")
		require.NoError(t, err)
		assert.Nil(t, p)
	})
}

func TestAddPlaceholder(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	p, err := store.AddPlaceholder("Unknown Player", "unknown player")
	require.NoError(t, err)
	assert.True(t, p.Placeholder)
	assert.NotEmpty(t, p.ID)

	found, err := store.GetPlayerByNormalizedName("unknown player")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, found.Placeholder)

	// Adding the same placeholder twice must not duplicate.
	_, err = store.AddPlaceholder("Unknown Player", "unknown player")
	require.NoError(t, err)

	all, err := store.GetAllPlayers()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
