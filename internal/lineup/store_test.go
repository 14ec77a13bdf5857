package lineup_test

import (
	"testing"

	"github.com/mkrogh/fantasyliga/internal/database"
	"github.com/mkrogh/fantasyliga/internal/lineup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (lineup.Store, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	return lineup.New(db), dbTeardown
}

func TestUpsertAndGetSelection(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	selection := &lineup.Selection{
		UserID:      "u1",
		WeekStart:   "2025-03-04",
		Tactic:      "4-4-2",
		Starters:    []string{"viktor fischer", "pione sisto"},
		Substitutes: []string{"kasper schmeichel"},
	}
	require.NoError(t, store.UpsertSelection(selection))

	got, err := store.GetSelection("u1", "2025-03-04")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, lineup.StatusDraft, got.Status)
	assert.Equal(t, []string{"viktor fischer", "pione sisto"}, got.Starters)

	t.Run("missing selection returns nil", func(t *testing.T) {
		got, err := store.GetSelection("u1", "2025-03-11")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("draft selections are overwritten", func(t *testing.T) {
		selection.Tactic = "3-5-2"
		require.NoError(t, store.UpsertSelection(selection))

		got, err := store.GetSelection("u1", "2025-03-04")
		require.NoError(t, err)
		assert.Equal(t, "3-5-2", got.Tactic)
	})
}

func TestValidateSelection(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	selection := &lineup.Selection{
		UserID:    "u1",
		WeekStart: "2025-03-04",
		Tactic:    "4-4-2",
		Starters:  []string{"viktor fischer"},
	}
	require.NoError(t, store.UpsertSelection(selection))
	require.NoError(t, store.ValidateSelection("u1", "2025-03-04"))

	got, err := store.GetSelection("u1", "2025-03-04")
	require.NoError(t, err)
	assert.Equal(t, lineup.StatusValidated, got.Status)

	t.Run("validated selections are immutable", func(t *testing.T) {
		selection.Tactic = "5-3-2"
		require.NoError(t, store.UpsertSelection(selection))

		got, err := store.GetSelection("u1", "2025-03-04")
		require.NoError(t, err)
		assert.Equal(t, "4-4-2", got.Tactic)
	})

	t.Run("validating a missing selection fails", func(t *testing.T) {
		err := store.ValidateSelection("u2", "2025-03-04")
		assert.Error(t, err)
	})
}

func TestGetValidatedSelections(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	for _, sel := range []*lineup.Selection{
		{UserID: "u1", WeekStart: "2025-03-04", Starters: []string{"a"}},
		{UserID: "u2", WeekStart: "2025-03-04", Starters: []string{"b"}},
		{UserID: "u1", WeekStart: "2025-03-11", Starters: []string{"c"}},
	} {
		require.NoError(t, store.UpsertSelection(sel))
	}
	require.NoError(t, store.ValidateSelection("u1", "2025-03-04"))
	require.NoError(t, store.ValidateSelection("u1", "2025-03-11"))

	validated, err := store.GetValidatedSelections()
	require.NoError(t, err)
	assert.Len(t, validated, 2, "drafts are not scoreable")

	forWeek, err := store.GetSelectionsForWeek("2025-03-04")
	require.NoError(t, err)
	assert.Len(t, forWeek, 2)
}

func TestLoosePayloadDecoding(t *testing.T) {
	// Simulate a legacy payload mixing plain strings and player objects.
	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	defer dbTeardown()
	legacyStore := lineup.New(db)
	_, err = db.Exec(`
		INSERT INTO lineups (user_id, week_start, status, starters_json, substitutes_json)
		VALUES ('u1', '2025-03-04', 'VALIDATED', '["viktor fischer", {"name": "pione sisto"}, {"player_name": "lasse schone"}]', '[]')
	`)
	require.NoError(t, err)

	got, err := legacyStore.GetSelection("u1", "2025-03-04")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"viktor fischer", "pione sisto", "lasse schone"}, got.Starters)
}

func TestSelectionSlots(t *testing.T) {
	selection := &lineup.Selection{
		Starters:    []string{"a", "b"},
		Substitutes: []string{"c", "a"}, // "a" duplicated in both lists
	}

	slots := selection.Slots()
	require.Len(t, slots, 3)
	assert.Equal(t, lineup.Slot{PlayerName: "a", Role: lineup.RoleStarter}, slots[0])
	assert.Equal(t, lineup.Slot{PlayerName: "b", Role: lineup.RoleStarter}, slots[1])
	assert.Equal(t, lineup.Slot{PlayerName: "c", Role: lineup.RoleSubstitute}, slots[2])
}

func TestSelectionSlotsSpellingVariants(t *testing.T) {
	// The same player under different spellings is one identity: the slot
	// list dedupes on the normalized name, starter role winning.
	selection := &lineup.Selection{
		Starters:    []string{"Lasse Schöne"},
		Substitutes: []string{"Lasse Schone", "  lasse   schöne "},
	}

	slots := selection.Slots()
	require.Len(t, slots, 1)
	assert.Equal(t, lineup.RoleStarter, slots[0].Role)
	assert.Equal(t, "Lasse Schöne", slots[0].PlayerName)
}

func TestRoleMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, lineup.RoleStarter.Multiplier())
	assert.Equal(t, 0.5, lineup.RoleSubstitute.Multiplier())
}
