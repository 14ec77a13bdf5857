package catalog

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a new catalog Store.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

// UpsertPlayers inserts or updates a batch of player identities in a single
// transaction, keyed by id.
func (s *store) UpsertPlayers(players []Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(players) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO players (id, name, normalized_name, position, club, league, market_value, placeholder)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			normalized_name = excluded.normalized_name,
			position = excluded.position,
			club = excluded.club,
			league = excluded.league,
			market_value = excluded.market_value,
			placeholder = excluded.placeholder;
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, p := range players {
		if _, err := stmt.Exec(p.ID, p.Name, p.NormalizedName, p.Position, p.Club, p.League, p.MarketValue, p.Placeholder); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to upsert player %s: %w", p.ID, err)
		}
	}

	return tx.Commit()
}

// GetAllPlayers retrieves every player identity in catalog order.
func (s *store) GetAllPlayers() ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, name, normalized_name, position, club, league, market_value, placeholder
		FROM players ORDER BY rowid
	`)
	if err != nil {
		log.Error("Failed to query all players", "error", err)
		return nil, err
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// GetPlayerByNormalizedName looks up a single identity by its normalized
// canonical name. Returns nil when the catalog does not know the name.
func (s *store) GetPlayerByNormalizedName(normalizedName string) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, name, normalized_name, position, club, league, market_value, placeholder
		FROM players WHERE normalized_name = ?
	`, normalizedName)

	p, err := scanPlayer(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query player by normalized name: %w", err)
	}
	return &p, nil
}

// AddPlaceholder creates a placeholder identity for a name the catalog does
// not know. Used by ingest tooling; scoring never creates identities.
func (s *store) AddPlaceholder(name, normalizedName string) (Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := Player{
		ID:             uuid.NewString(),
		Name:           name,
		NormalizedName: normalizedName,
		Placeholder:    true,
	}
	_, err := s.db.Exec(`
		INSERT INTO players (id, name, normalized_name, placeholder)
		VALUES (?, ?, ?, 1)
		ON CONFLICT(normalized_name) DO NOTHING
	`, p.ID, p.Name, p.NormalizedName)
	if err != nil {
		return Player{}, fmt.Errorf("failed to add placeholder player: %w", err)
	}
	log.Info("Created placeholder player identity", "name", name)
	return p, nil
}

// Clear removes every player identity. Used by admin tooling and tests.
func (s *store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM players")
	return err
}

func scanPlayer(scanner interface{ Scan(...any) error }) (Player, error) {
	var p Player
	var position, club, league sql.NullString
	var marketValue sql.NullFloat64

	err := scanner.Scan(&p.ID, &p.Name, &p.NormalizedName, &position, &club, &league, &marketValue, &p.Placeholder)
	if err != nil {
		return Player{}, err
	}
	p.Position = position.String
	p.Club = club.String
	p.League = league.String
	p.MarketValue = marketValue.Float64
	return p, nil
}
