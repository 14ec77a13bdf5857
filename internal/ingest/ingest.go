package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mkrogh/fantasyliga/internal/catalog"
	"github.com/mkrogh/fantasyliga/internal/metrics"
	"github.com/mkrogh/fantasyliga/internal/names"
	"github.com/mkrogh/fantasyliga/internal/performance"
)

// dateLayouts are the date formats accepted in feed rows, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"02.01.2006",
	"2.1.2006",
	time.RFC3339,
}

// New creates a new ingest Service.
func New(store performance.Store, catalogStore catalog.Store, layout Layout, m metrics.Metrics, opts ...Option) *Service {
	s := &Service{
		store:   store,
		catalog: catalogStore,
		layout:  layout,
		metrics: m,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IngestFile parses one player's per-season performance feed and upserts the
// accepted rows keyed by (normalized player name, match date, season), so
// replaying the same file converges to the same stored rows.
//
// The player name is resolved once for the whole file. An unresolved name
// rejects the file wholesale: silently ingesting under the wrong identity
// would corrupt a different player's totals.
func (s *Service) IngestFile(rawName, season string, r io.Reader) (Result, error) {
	s.metrics.IncIngestRuns()
	result := Result{Player: rawName, Season: season}

	playerName, err := s.resolvePlayer(rawName)
	if err != nil {
		log.Error("Rejecting feed file: player name unresolved", "player", rawName, "error", err)
		s.metrics.IncFilesUnresolved()
		result.Unresolved = true
		return result, err
	}

	reader := csv.NewReader(r)
	reader.Comma = s.layout.Delimiter
	reader.FieldsPerRecord = -1 // feeds are arbitrary-width
	reader.TrimLeadingSpace = true

	var records []performance.Record
	line := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			log.Warn("Dropping malformed feed row", "player", rawName, "line", line, "error", err)
			result.Rejected++
			continue
		}
		if s.layout.HasHeader && line == 1 {
			continue
		}

		record, ok := s.parseRow(row, playerName, season)
		if !ok {
			log.Debug("Dropping unparseable feed row", "player", rawName, "line", line)
			result.Rejected++
			continue
		}
		records = append(records, record)
		result.Accepted++
	}

	if err := s.store.UpsertRecords(records); err != nil {
		return result, fmt.Errorf("failed to upsert performance records for %s: %w", rawName, err)
	}

	s.metrics.AddRowsAccepted(result.Accepted)
	s.metrics.AddRowsRejected(result.Rejected)
	log.Info("Ingested feed file", "player", playerName, "season", season, "accepted", result.Accepted, "rejected", result.Rejected)
	return result, nil
}

// resolvePlayer resolves the feed's player name against the catalog,
// returning the normalized canonical name to store rows under.
func (s *Service) resolvePlayer(rawName string) (string, error) {
	players, err := s.catalog.GetAllPlayers()
	if err != nil {
		return "", fmt.Errorf("failed to load player catalog: %w", err)
	}

	resolver := names.NewResolver(players)
	match, err := resolver.Resolve(rawName)
	if err == nil {
		return match.Player.NormalizedName, nil
	}

	if s.createMissing {
		normalized := names.Normalize(rawName)
		if normalized == "" {
			return "", err
		}
		if _, placeholderErr := s.catalog.AddPlaceholder(strings.TrimSpace(rawName), normalized); placeholderErr != nil {
			return "", fmt.Errorf("failed to create placeholder for %q: %w", rawName, placeholderErr)
		}
		return normalized, nil
	}
	return "", err
}

// parseRow converts one feed row into a canonical record. A missing or
// unparseable date, or a missing or non-numeric score, drops the row. An
// empty score on an otherwise valid row counts as 0.
func (s *Service) parseRow(row []string, playerName, season string) (performance.Record, bool) {
	if s.layout.DateColumn >= len(row) || s.layout.ScoreColumn >= len(row) {
		return performance.Record{}, false
	}

	matchDate, ok := parseDate(row[s.layout.DateColumn])
	if !ok {
		return performance.Record{}, false
	}

	score, ok := parseScore(row[s.layout.ScoreColumn])
	if !ok {
		return performance.Record{}, false
	}

	return performance.Record{
		PlayerName: playerName,
		MatchDate:  matchDate.Format(performance.DateLayout),
		Season:     season,
		Score:      score,
	}, true
}

func parseDate(field string) (time.Time, bool) {
	field = strings.TrimSpace(field)
	if field == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, field); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseScore(field string) (float64, bool) {
	field = strings.TrimSpace(field)
	if field == "" {
		return 0, true
	}
	// Feeds from some sources use decimal commas.
	field = strings.ReplaceAll(field, ",", ".")
	score, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, false
	}
	return score, true
}
