package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mkrogh/fantasyliga/internal/catalog"
	"github.com/mkrogh/fantasyliga/internal/database"
	"github.com/mkrogh/fantasyliga/internal/lineup"
	"github.com/mkrogh/fantasyliga/internal/names"
	"github.com/mkrogh/fantasyliga/internal/performance"
	"github.com/mkrogh/fantasyliga/internal/points"
)

// Simplified config loading for the script
func loadConfig() (dbName, migrationsDir string) {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	dbName = os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "fantasyliga.db"
	}
	migrationsDir = os.Getenv("MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "migrations"
	}
	return dbName, migrationsDir
}

func main() {
	log.Info("Starting database seeder...")
	dbName, migrationsDir := loadConfig()

	db, teardown, err := database.InitDB(dbName, "", "", migrationsDir)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()
	defer db.Close()

	catalogStore := catalog.New(db)
	performanceStore := performance.New(db)
	lineupStore := lineup.New(db)
	pointsStore := points.New(db)

	demoNames := []string{
		"Mads Hansen", "Jens Jensen", "Lasse Schöne", "Viktor Fischer",
		"Pione Sisto", "Kasper Dolberg", "Mathias Jensen", "Robert Skov",
		"Joakim Mæhle", "Andreas Christensen", "Kasper Schmeichel",
		"Yussuf Poulsen", "Thomas Delaney", "Pierre-Emile Højbjerg",
		"Christian Nørgaard", "Rasmus Falk",
	}
	players := make([]catalog.Player, 0, len(demoNames))
	for _, name := range demoNames {
		players = append(players, catalog.Player{
			ID:             uuid.NewString(),
			Name:           name,
			NormalizedName: names.Normalize(name),
			Position:       "Midfielder",
			Club:           "Seeded FC",
			League:         "Superligaen",
			MarketValue:    5.0,
		})
	}
	if err := catalogStore.UpsertPlayers(players); err != nil {
		log.Fatalf("Failed to seed players: %s", err)
	}
	log.Info("Seeded demo players.", "count", len(players))

	records := []performance.Record{
		{PlayerName: "mads hansen", MatchDate: "2025-03-04", Season: "2024-2025", Score: 6},
		{PlayerName: "mads hansen", MatchDate: "2025-03-06", Season: "2024-2025", Score: 8},
		{PlayerName: "jens jensen", MatchDate: "2025-03-05", Season: "2024-2025", Score: 4},
		{PlayerName: "lasse schone", MatchDate: "2025-03-08", Season: "2024-2025", Score: 10},
	}
	if err := performanceStore.UpsertRecords(records); err != nil {
		log.Fatalf("Failed to seed performance records: %s", err)
	}
	log.Info("Seeded demo performance records.", "count", len(records))

	teams := []points.Team{
		{UserID: "demo-user", TeamName: "Kuponklubben", Budget: 42.5},
	}
	if err := pointsStore.UpsertTeams(teams); err != nil {
		log.Fatalf("Failed to seed teams: %s", err)
	}

	selection := &lineup.Selection{
		UserID:      "demo-user",
		WeekStart:   "2025-03-04",
		Tactic:      "4-4-2",
		Status:      lineup.StatusDraft,
		Starters:    demoNames[:11],
		Substitutes: demoNames[11:],
	}
	if err := lineupStore.UpsertSelection(selection); err != nil {
		log.Fatalf("Failed to seed lineup: %s", err)
	}
	if err := lineupStore.ValidateSelection(selection.UserID, selection.WeekStart); err != nil {
		log.Fatalf("Failed to validate seeded lineup: %s", err)
	}
	log.Info("Seeded and validated demo lineup.", "user", selection.UserID, "week_start", selection.WeekStart)

	log.Info("Seeding complete. Run a reconcile to compute points.")
}
