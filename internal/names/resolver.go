package names

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mkrogh/fantasyliga/internal/catalog"
)

// Confidence grades how a raw name matched a catalog identity.
type Confidence string

const (
	// ConfidenceExact means the normalized raw name equals a normalized
	// canonical name. The only grade accepted for scoring-critical joins.
	ConfidenceExact Confidence = "EXACT"
	// ConfidencePartial means a substring containment match. Diagnostics
	// grade: acceptable for ingest tooling, never for scoring.
	ConfidencePartial Confidence = "PARTIAL"
)

// Match is a successful resolution of a raw name to a catalog identity.
type Match struct {
	Player     catalog.Player
	Confidence Confidence
}

// UnresolvedError reports a raw name that matched nothing, with a small set
// of nearest-looking candidates for diagnostics.
type UnresolvedError struct {
	Raw        string
	Candidates []string
}

func (e *UnresolvedError) Error() string {
	if len(e.Candidates) == 0 {
		return fmt.Sprintf("unresolved player name %q", e.Raw)
	}
	return fmt.Sprintf("unresolved player name %q (closest: %s)", e.Raw, strings.Join(e.Candidates, ", "))
}

// Resolver resolves free-text player names against a fixed candidate list.
// It is a pure lookup over the supplied players and has no side effects;
// callers decide what to do with unresolved names.
type Resolver struct {
	players []catalog.Player
	byNorm  map[string]int
}

// NewResolver builds a Resolver over the given candidate list, preserving
// catalog order for the substring fallback.
func NewResolver(players []catalog.Player) *Resolver {
	byNorm := make(map[string]int, len(players))
	for i, p := range players {
		key := p.NormalizedName
		if key == "" {
			key = Normalize(p.Name)
		}
		if _, ok := byNorm[key]; !ok {
			byNorm[key] = i
		}
	}
	return &Resolver{players: players, byNorm: byNorm}
}

// Resolve maps a raw name to a catalog identity: exact normalized match
// first, then substring containment in either direction taking the first
// candidate in catalog order. Partial matches are logged since they are a
// known source of misattribution.
func (r *Resolver) Resolve(raw string) (Match, error) {
	normalized := Normalize(raw)
	if normalized == "" {
		return Match{}, &UnresolvedError{Raw: raw}
	}

	if i, ok := r.byNorm[normalized]; ok {
		return Match{Player: r.players[i], Confidence: ConfidenceExact}, nil
	}

	for i, p := range r.players {
		candidate := r.normalizedNameOf(i)
		if candidate == "" {
			continue
		}
		if strings.Contains(candidate, normalized) || strings.Contains(normalized, candidate) {
			log.Warn("Resolved player name by partial match", "raw", raw, "matched", p.Name)
			return Match{Player: p, Confidence: ConfidencePartial}, nil
		}
	}

	return Match{}, &UnresolvedError{Raw: raw, Candidates: r.nearest(normalized, 3)}
}

// ResolveExact maps a raw name to a catalog identity by exact normalized
// match only. Used for scoring-critical joins where a fuzzy match would
// silently credit the wrong player.
func (r *Resolver) ResolveExact(raw string) (catalog.Player, bool) {
	i, ok := r.byNorm[Normalize(raw)]
	if !ok {
		return catalog.Player{}, false
	}
	return r.players[i], true
}

func (r *Resolver) normalizedNameOf(i int) string {
	if r.players[i].NormalizedName != "" {
		return r.players[i].NormalizedName
	}
	return Normalize(r.players[i].Name)
}

// nearest picks up to n candidates sharing the longest common prefix with the
// unresolved name. A cheap heuristic, only ever surfaced in diagnostics.
func (r *Resolver) nearest(normalized string, n int) []string {
	type scored struct {
		name   string
		prefix int
	}
	var ranked []scored
	for i, p := range r.players {
		l := commonPrefixLen(normalized, r.normalizedNameOf(i))
		if l > 0 {
			ranked = append(ranked, scored{name: p.Name, prefix: l})
		}
	}
	// Insertion sort by prefix length descending; candidate pools are small.
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].prefix > ranked[j-1].prefix; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	out := make([]string, len(ranked))
	for i, s := range ranked {
		out[i] = s.name
	}
	return out
}

func commonPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
