package config

import (
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// delimiterRune reads the feed delimiter from its env value: the first rune
// of a non-empty string.
func delimiterRune(value string) (rune, bool) {
	if value == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(value)
	return r, true
}

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}
	getEnvOr := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fallback
	}
	getEnvInt := func(key string, fallback int) int {
		value, ok := os.LookupEnv(key)
		if !ok {
			return fallback
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			log.Fatalf("Error: Environment variable %s must be an integer, got %q.", key, value)
		}
		return n
	}

	delim, ok := delimiterRune(getEnvOr("FEED_DELIMITER", ";"))
	if !ok {
		log.Fatalf("Error: Environment variable FEED_DELIMITER must not be empty.")
	}
	cfg := Config{
		DBName:        getEnv("DB_NAME"),
		MigrationsDir: getEnvOr("MIGRATIONS_DIR", "./migrations"),
		Port:          getEnv("PORT"),
		Season:        getEnvOr("SEASON", "2025-2026"),
		Timezone:      getEnvOr("TIMEZONE", "Europe/Copenhagen"),
		Feed: FeedConfig{
			Delimiter:   delim,
			DateColumn:  getEnvInt("FEED_DATE_COL", 0),
			ScoreColumn: getEnvInt("FEED_SCORE_COL", 7),
			HasHeader:   getEnvOr("FEED_HAS_HEADER", "true") == "true",
		},
		Slack: SlackConfig{
			Token:     getEnv("SLACK_BOT_TOKEN"),
			ChannelID: getEnv("SLACK_CHANNEL_ID"),
		},
		Turso: TursoConfig{
			PrimaryURL: getEnvOr("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvOr("TURSO_AUTH_TOKEN", ""),
		},
		ProjectID: getEnv("GCP_PROJECT"),
	}
	return cfg
}
