package ingest

import (
	"github.com/mkrogh/fantasyliga/internal/catalog"
	"github.com/mkrogh/fantasyliga/internal/metrics"
	"github.com/mkrogh/fantasyliga/internal/performance"
)

// Layout describes the shape of an inbound performance feed. The date and
// score columns sit at source-stable ordinal positions; everything else in a
// row is ignored.
type Layout struct {
	Delimiter   rune
	DateColumn  int
	ScoreColumn int
	HasHeader   bool
}

// Result summarizes one ingested feed file. Row-level failures are absorbed
// and counted; an unresolved player name rejects the whole file.
type Result struct {
	Player     string `json:"player"`
	Season     string `json:"season"`
	Accepted   int    `json:"accepted"`
	Rejected   int    `json:"rejected"`
	Unresolved bool   `json:"unresolved"`
}

// Service parses raw performance feeds into canonical records and upserts
// them into the performance store.
type Service struct {
	store   performance.Store
	catalog catalog.Store
	layout  Layout
	metrics metrics.Metrics

	// createMissing makes the service upsert a placeholder identity for an
	// unresolved name instead of rejecting the file. Ingest tooling mode;
	// never enabled for scoring-critical paths.
	createMissing bool
}

// Option configures a Service.
type Option func(*Service)

// WithCreateMissing enables placeholder identity creation for unresolved names.
func WithCreateMissing() Option {
	return func(s *Service) {
		s.createMissing = true
	}
}
