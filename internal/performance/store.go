package performance

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
)

// New creates a new performance Store.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

// UpsertRecords inserts or overwrites a batch of records in one transaction,
// keyed by (player name, match date, season). Replaying the same feed
// converges to the same stored rows.
func (s *store) UpsertRecords(records []Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO performances (player_name, match_date, season, score)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(player_name, match_date, season) DO UPDATE SET
			score = excluded.score;
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(r.PlayerName, r.MatchDate, r.Season, r.Score); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to upsert performance for %s on %s: %w", r.PlayerName, r.MatchDate, err)
		}
	}

	return tx.Commit()
}

// GetRecordsForPlayer retrieves every record for one normalized player name,
// ordered by match date.
func (s *store) GetRecordsForPlayer(playerName string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT player_name, match_date, season, score
		FROM performances WHERE player_name = ? ORDER BY match_date
	`, playerName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

// GetAllRecords retrieves every stored performance record.
func (s *store) GetAllRecords() ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT player_name, match_date, season, score
		FROM performances ORDER BY player_name, match_date
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

// Clear removes every performance record. Used by admin tooling and tests.
func (s *store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM performances")
	return err
}

func collectRecords(rows *sql.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.PlayerName, &r.MatchDate, &r.Season, &r.Score); err != nil {
			log.Error("Failed to scan performance row", "error", err)
			continue
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
