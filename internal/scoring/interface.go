package scoring

import (
	"github.com/mkrogh/fantasyliga/internal/catalog"
	"github.com/mkrogh/fantasyliga/internal/lineup"
	"github.com/mkrogh/fantasyliga/internal/performance"
	"github.com/mkrogh/fantasyliga/internal/points"
)

// LineupSource provides the validated selections the reconciler scores.
type LineupSource interface {
	GetValidatedSelections() ([]*lineup.Selection, error)
}

// PerformanceSource provides the canonical performance records.
type PerformanceSource interface {
	GetAllRecords() ([]performance.Record, error)
}

// CatalogSource provides the player identities selections are joined against.
type CatalogSource interface {
	GetAllPlayers() ([]catalog.Player, error)
}

// PointsStore defines the write operations required by the reconciler.
type PointsStore interface {
	UpsertPlayerPoints(rows []points.PlayerPoints) error
	UpsertContributions(contributions []points.Contribution) error
}
