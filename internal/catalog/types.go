package catalog

import (
	"database/sql"
	"sync"
)

// store handles all database operations for the player catalog.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Player is a canonical player identity. The catalog is owned by an external
// system; the engine reads identities and resolves free-text names against
// them. Placeholder identities are created by ingest tooling for names the
// catalog does not know yet.
type Player struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	NormalizedName string  `json:"normalized_name"`
	Position       string  `json:"position"`
	Club           string  `json:"club"`
	League         string  `json:"league"`
	MarketValue    float64 `json:"market_value"`
	Placeholder    bool    `json:"placeholder"`
}
