package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/shimbeld/bsdl/internal/database"
	"github.com/shimbeld/bsdl/internal/league"
	"github.com/shimbeld/bsdl/internal/tables"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":           "bsdl.db",
		"TURSO_PRIMARY_URL": "",
		"TURSO_AUTH_TOKEN":  "",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	return config
}

var teams = []string{"Wombles", "Arrows", "Bullshooters", "Kilkenny"}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"], "./migrations")
	if err != nil {
		log.Fatalf("Failed to open database: %s", err)
	}
	defer teardown()

	store := league.New(db)
	if err := store.EnsurePlayersTable(); err != nil {
		log.Fatalf("Failed to create players table: %s", err)
	}
	if err := store.ClearPlayers(); err != nil {
		log.Fatalf("Failed to clear players table: %s", err)
	}

	inserted := 0
	for t, team := range teams {
		for i := 1; i <= 8; i++ {
			// Keys use the loose spellings the site exports, the alias
			// table folds them onto the canonical columns.
			record := map[string]any{
				"Pos":        fmt.Sprintf("%d", i),
				"Team":       team,
				"Player":     fmt.Sprintf("%s Player %d", team, i),
				"WP":         fmt.Sprintf("%d", 12-i),
				"GP":         "12",
				"GW":         fmt.Sprintf("%d", (12-i+t)%13),
				"Win %":      fmt.Sprintf("%.2f", float64(100-(i*7+t*3)%60)),
				"Finish %":   fmt.Sprintf("%.2f", float64((i*11+t*5)%40)),
				"High_Score": fmt.Sprintf("%d", 100+(i*13+t*17)%81),
				"Bust":       fmt.Sprintf("%d", (i+t)%9),
			}
			normalized := tables.NormalizeStatsRow(record)

			row := make([]any, league.NumColumns)
			for c := 0; c < league.NumColumns; c++ {
				row[c] = normalized.Value(c)
			}
			if err := store.InsertPlayer(row); err != nil {
				log.Fatalf("Failed to insert seed player: %s", err)
			}
			inserted++
		}
	}

	log.Info("Seeding complete", "players", inserted, "teams", len(teams))
}
