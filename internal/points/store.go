package points

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
)

// New creates a new points Store.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

// UpsertTeams inserts or updates fantasy teams keyed by user.
func (s *store) UpsertTeams(teams []Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(teams) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`
		INSERT INTO teams (user_id, team_name, budget)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			team_name = excluded.team_name,
			budget = excluded.budget;
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, t := range teams {
		if _, err := stmt.Exec(t.UserID, t.TeamName, t.Budget); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to upsert team for user %s: %w", t.UserID, err)
		}
	}
	return tx.Commit()
}

// UpsertPlayerPoints overwrites cumulative point rows keyed on
// (user, player). The reconciler recomputes from source, so the stored
// values are replaced wholesale rather than accumulated into.
func (s *store) UpsertPlayerPoints(rows []PlayerPoints) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(rows) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`
		INSERT INTO user_player_points (user_id, player_name, total_points, total_points_useful, last_week_points, last_week_points_useful, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, player_name) DO UPDATE SET
			total_points = excluded.total_points,
			total_points_useful = excluded.total_points_useful,
			last_week_points = excluded.last_week_points,
			last_week_points_useful = excluded.last_week_points_useful,
			updated_at = excluded.updated_at;
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.Exec(row.UserID, row.PlayerName, row.Total, row.TotalUseful, row.LastWeek, row.LastWeekUseful, row.UpdatedAt); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to upsert points for user %s, player %s: %w", row.UserID, row.PlayerName, err)
		}
	}
	return tx.Commit()
}

// UpsertContributions overwrites weekly contributions keyed on
// (user, player, week).
func (s *store) UpsertContributions(contributions []Contribution) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(contributions) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`
		INSERT INTO weekly_contributions (user_id, player_name, week_start, raw_score, match_count, average, multiplier, useful_points)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, player_name, week_start) DO UPDATE SET
			raw_score = excluded.raw_score,
			match_count = excluded.match_count,
			average = excluded.average,
			multiplier = excluded.multiplier,
			useful_points = excluded.useful_points;
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, c := range contributions {
		if _, err := stmt.Exec(c.UserID, c.PlayerName, c.WeekStart, c.RawScore, c.MatchCount, c.Average, c.Multiplier, c.UsefulPoints); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to upsert contribution for user %s, player %s, week %s: %w", c.UserID, c.PlayerName, c.WeekStart, err)
		}
	}
	return tx.Commit()
}

// GetPlayerPoints retrieves one user's cumulative point rows.
func (s *store) GetPlayerPoints(userID string) ([]PlayerPoints, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT user_id, player_name, total_points, total_points_useful, last_week_points, last_week_points_useful, updated_at
		FROM user_player_points WHERE user_id = ? ORDER BY player_name
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []PlayerPoints
	for rows.Next() {
		var row PlayerPoints
		if err := rows.Scan(&row.UserID, &row.PlayerName, &row.Total, &row.TotalUseful, &row.LastWeek, &row.LastWeekUseful, &row.UpdatedAt); err != nil {
			log.Error("Failed to scan player points row", "error", err)
			continue
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetContributionsForWeek retrieves every contribution for one week.
func (s *store) GetContributionsForWeek(weekStart string) ([]Contribution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT user_id, player_name, week_start, raw_score, match_count, average, multiplier, useful_points
		FROM weekly_contributions WHERE week_start = ? ORDER BY user_id, player_name
	`, weekStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Contribution
	for rows.Next() {
		var c Contribution
		if err := rows.Scan(&c.UserID, &c.PlayerName, &c.WeekStart, &c.RawScore, &c.MatchCount, &c.Average, &c.Multiplier, &c.UsefulPoints); err != nil {
			log.Error("Failed to scan contribution row", "error", err)
			continue
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// GetTeamStandings retrieves every team with its summed useful points, the
// leaderboard's bulk read.
func (s *store) GetTeamStandings() ([]TeamStanding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT
			t.user_id,
			t.team_name,
			t.budget,
			COALESCE(SUM(upp.total_points_useful), 0)
		FROM teams t
		LEFT JOIN user_player_points upp ON t.user_id = upp.user_id
		GROUP BY t.user_id, t.team_name, t.budget
		ORDER BY t.user_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var standings []TeamStanding
	for rows.Next() {
		var st TeamStanding
		if err := rows.Scan(&st.UserID, &st.TeamName, &st.Budget, &st.TotalUseful); err != nil {
			log.Error("Failed to scan standing row", "error", err)
			continue
		}
		standings = append(standings, st)
	}
	return standings, rows.Err()
}

// Clear removes all teams, points and contributions. Used by admin tooling
// and tests.
func (s *store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	for _, table := range []string{"weekly_contributions", "user_player_points", "teams"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
