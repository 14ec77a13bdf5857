package performance

import (
	"database/sql"
	"sync"
)

// DateLayout is the storage format of a record's match date.
const DateLayout = "2006-01-02"

// store handles all database operations for performance records.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Record is one player's canonical performance in one real match. The score
// is a single numeric value that already encodes the upstream stat-to-point
// rules. At most one record exists per (normalized player name, match date,
// season); re-ingestion overwrites, never duplicates.
type Record struct {
	PlayerName string  `json:"player_name"`
	MatchDate  string  `json:"match_date"`
	Season     string  `json:"season"`
	Score      float64 `json:"score"`
}
