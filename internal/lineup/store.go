package lineup

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
)

// New creates a new lineup Store.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

// UpsertSelection inserts or overwrites a selection keyed by
// (user, week-start). A validated selection is never downgraded back to
// draft by a late upsert.
func (s *store) UpsertSelection(selection *Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	startersJSON, err := json.Marshal(selection.Starters)
	if err != nil {
		return err
	}
	substitutesJSON, err := json.Marshal(selection.Substitutes)
	if err != nil {
		return err
	}
	if selection.Status == "" {
		selection.Status = StatusDraft
	}

	_, err = s.db.Exec(`
		INSERT INTO lineups (user_id, week_start, tactic, status, starters_json, substitutes_json)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, week_start) DO UPDATE SET
			tactic = excluded.tactic,
			starters_json = excluded.starters_json,
			substitutes_json = excluded.substitutes_json
		WHERE lineups.status != ?;
	`, selection.UserID, selection.WeekStart, selection.Tactic, selection.Status, startersJSON, substitutesJSON, StatusValidated)
	return err
}

// ValidateSelection locks a selection for scoring.
func (s *store) ValidateSelection(userID, weekStart string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		UPDATE lineups SET status = ? WHERE user_id = ? AND week_start = ?
	`, StatusValidated, userID, weekStart)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("no selection found for user %s, week %s", userID, weekStart)
	}
	return nil
}

// GetSelection retrieves one selection. Returns nil when the user has no
// selection for the week.
func (s *store) GetSelection(userID, weekStart string) (*Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT user_id, week_start, tactic, status, starters_json, substitutes_json
		FROM lineups WHERE user_id = ? AND week_start = ?
	`, userID, weekStart)

	selection, err := scanSelection(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return selection, nil
}

// GetValidatedSelections retrieves every validated selection across all
// users and weeks, the reconciliation engine's input.
func (s *store) GetValidatedSelections() ([]*Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT user_id, week_start, tactic, status, starters_json, substitutes_json
		FROM lineups WHERE status = ? ORDER BY user_id, week_start
	`, StatusValidated)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSelections(rows)
}

// GetSelectionsForWeek retrieves every selection for one week.
func (s *store) GetSelectionsForWeek(weekStart string) ([]*Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT user_id, week_start, tactic, status, starters_json, substitutes_json
		FROM lineups WHERE week_start = ? ORDER BY user_id
	`, weekStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSelections(rows)
}

// Clear removes every selection. Used by admin tooling and tests.
func (s *store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM lineups")
	return err
}

func collectSelections(rows *sql.Rows) ([]*Selection, error) {
	var selections []*Selection
	for rows.Next() {
		selection, err := scanSelection(rows)
		if err != nil {
			log.Error("Failed to scan lineup row", "error", err)
			continue
		}
		selections = append(selections, selection)
	}
	return selections, rows.Err()
}

func scanSelection(scanner interface{ Scan(...any) error }) (*Selection, error) {
	var selection Selection
	var startersJSON, substitutesJSON string

	err := scanner.Scan(&selection.UserID, &selection.WeekStart, &selection.Tactic, &selection.Status, &startersJSON, &substitutesJSON)
	if err != nil {
		return nil, err
	}

	if selection.Starters, err = decodePlayerList(startersJSON); err != nil {
		return nil, fmt.Errorf("failed to decode starters for user %s: %w", selection.UserID, err)
	}
	if selection.Substitutes, err = decodePlayerList(substitutesJSON); err != nil {
		return nil, fmt.Errorf("failed to decode substitutes for user %s: %w", selection.UserID, err)
	}
	return &selection, nil
}
