package lineup

import (
	"database/sql"
	"encoding/json"
	"sync"

	"github.com/mkrogh/fantasyliga/internal/names"
)

// store handles all database operations for lineup selections.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Role is a player's role in a weekly lineup.
type Role string

const (
	RoleStarter    Role = "STARTER"
	RoleSubstitute Role = "SUBSTITUTE"
)

// Multiplier returns the scoring multiplier for the role: starters earn the
// full weekly average, substitutes half of it.
func (r Role) Multiplier() float64 {
	if r == RoleSubstitute {
		return 0.5
	}
	return 1.0
}

// Status is the lifecycle state of a selection. Only validated selections
// are scoreable.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusValidated Status = "VALIDATED"
)

// Slot is one (player, role) entry of a lineup.
type Slot struct {
	PlayerName string `json:"player_name"`
	Role       Role   `json:"role"`
}

// Selection is one user's lineup for one scoring week: ordered starters
// (fixed-size, formation-dependent) plus five substitutes and the tactic
// used. Keyed by (user, week-start date); overwritten while the week is
// open, immutable once validated.
type Selection struct {
	UserID      string   `json:"user_id"`
	WeekStart   string   `json:"week_start"`
	Tactic      string   `json:"tactic"`
	Status      Status   `json:"status"`
	Starters    []string `json:"starters"`
	Substitutes []string `json:"substitutes"`
}

// Slots flattens the selection into (player, role) pairs, deduplicated by
// normalized name so spelling variants of one player collapse into a single
// slot. A player listed both as starter and substitute keeps the starter role.
func (s *Selection) Slots() []Slot {
	seen := make(map[string]bool, len(s.Starters)+len(s.Substitutes))
	slots := make([]Slot, 0, len(s.Starters)+len(s.Substitutes))
	add := func(name string, role Role) {
		key := names.Normalize(name)
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		slots = append(slots, Slot{PlayerName: name, Role: role})
	}
	for _, name := range s.Starters {
		add(name, RoleStarter)
	}
	for _, name := range s.Substitutes {
		add(name, RoleSubstitute)
	}
	return slots
}

// playerRef decodes one entry of a stored player list. Legacy payloads mix
// plain name strings with player objects; both normalize to a name here so
// nothing downstream has to branch on the shape.
type playerRef struct {
	Name string
}

func (p *playerRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.Name = s
		return nil
	}
	var obj struct {
		Name       string `json:"name"`
		PlayerName string `json:"player_name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if obj.Name != "" {
		p.Name = obj.Name
	} else {
		p.Name = obj.PlayerName
	}
	return nil
}

// decodePlayerList turns a stored JSON array of strings and/or player
// objects into a flat list of names.
func decodePlayerList(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var refs []playerRef
	if err := json.Unmarshal([]byte(raw), &refs); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.Name)
	}
	return names, nil
}
