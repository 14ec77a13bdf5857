package names_test

import (
	"testing"

	"github.com/mkrogh/fantasyliga/internal/catalog"
	"github.com/mkrogh/fantasyliga/internal/names"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Viktor Fischer ", "viktor fischer"},
		{"LASSE   SCHÖNE", "lasse schone"},
		{"Søren Kjærgaard", "soren kjaergaard"},
		{"Müller", "muller"},
		{"Großkreutz", "grosskreutz"},
		{"Łukasz Piszczek", "lukasz piszczek"},
		{"Þórður Guðjónsson", "thordur gudjonsson"},
		{"N'Golo  Kanté", "n'golo kante"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, names.Normalize(c.in), "Normalize(%q)", c.in)
	}
}

func testResolver() *names.Resolver {
	return names.NewResolver([]catalog.Player{
		{ID: "p1", Name: "Viktor Fischer", NormalizedName: "viktor fischer"},
		{ID: "p2", Name: "Lasse Schöne", NormalizedName: "lasse schone"},
		{ID: "p3", Name: "Pione Sisto", NormalizedName: "pione sisto"},
		{ID: "p4", Name: "Kasper Schmeichel", NormalizedName: "kasper schmeichel"},
	})
}

func TestResolveExactMatch(t *testing.T) {
	r := testResolver()

	m, err := r.Resolve("Viktor Fischer")
	require.NoError(t, err)
	assert.Equal(t, "p1", m.Player.ID)
	assert.Equal(t, names.ConfidenceExact, m.Confidence)

	// Accented and cased variants of a known name resolve identically.
	m2, err := r.Resolve("  LASSE schöne ")
	require.NoError(t, err)
	assert.Equal(t, "p2", m2.Player.ID)
	assert.Equal(t, names.ConfidenceExact, m2.Confidence)
}

func TestResolvePartialMatch(t *testing.T) {
	r := testResolver()

	t.Run("raw name contained in canonical name", func(t *testing.T) {
		m, err := r.Resolve("Sisto")
		require.NoError(t, err)
		assert.Equal(t, "p3", m.Player.ID)
		assert.Equal(t, names.ConfidencePartial, m.Confidence)
	})

	t.Run("canonical name contained in raw name", func(t *testing.T) {
		m, err := r.Resolve("Pione Sisto Jr")
		require.NoError(t, err)
		assert.Equal(t, "p3", m.Player.ID)
		assert.Equal(t, names.ConfidencePartial, m.Confidence)
	})

	t.Run("first catalog-order match wins", func(t *testing.T) {
		// "sch" is contained in both Schöne and Schmeichel; Schöne comes first.
		m, err := r.Resolve("schöne")
		require.NoError(t, err)
		assert.Equal(t, "p2", m.Player.ID)
	})
}

func TestResolveUnresolved(t *testing.T) {
	r := testResolver()

	_, err := r.Resolve("Zanka")
	require.Error(t, err)
	var unresolved *names.UnresolvedError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, "Zanka", unresolved.Raw)

	t.Run("nearest candidates are reported", func(t *testing.T) {
		_, err := r.Resolve("Kasper Schmeichl")
		require.ErrorAs(t, err, &unresolved)
		require.NotEmpty(t, unresolved.Candidates)
		assert.Equal(t, "Kasper Schmeichel", unresolved.Candidates[0])
	})

	t.Run("empty input is unresolved", func(t *testing.T) {
		_, err := r.Resolve("   ")
		assert.Error(t, err)
	})
}

func TestResolveExact(t *testing.T) {
	r := testResolver()

	p, ok := r.ResolveExact("VIKTOR FISCHER")
	require.True(t, ok)
	assert.Equal(t, "p1", p.ID)

	// Substring matches are not good enough for scoring joins.
	_, ok = r.ResolveExact("Fischer")
	assert.False(t, ok)
}
