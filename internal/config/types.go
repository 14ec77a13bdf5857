package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	Season        string
	Timezone      string
	Feed          FeedConfig
	Slack         SlackConfig
	Turso         TursoConfig
	ProjectID     string
}

// FeedConfig describes the layout of the inbound performance feed.
// The date and score columns sit at source-stable ordinal positions.
type FeedConfig struct {
	Delimiter   rune
	DateColumn  int
	ScoreColumn int
	HasHeader   bool
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
