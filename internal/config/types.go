package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	ImportToken   string
	Standings     StandingsConfig
	Turso         TursoConfig
}

// StandingsConfig describes the upstream spreadsheet feed.
type StandingsConfig struct {
	URL       string
	UserAgent string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
