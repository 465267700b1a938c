package league

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// New creates a new LeagueStore.
func New(db *sql.DB) LeagueStore {
	return &store{
		db: db,
	}
}

// createPlayersSQL builds the legacy players table: a surrogate key plus one
// column per canonical label. Labels contain spaces and punctuation, so every
// identifier is quoted.
func createPlayersSQL() string {
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS \"players\" (\n")
	b.WriteString("  \"id\" INTEGER PRIMARY KEY AUTOINCREMENT")
	for _, col := range Columns {
		fmt.Fprintf(&b, ",\n  %q %s", col.Label, col.SQLType)
	}
	b.WriteString("\n)")
	return b.String()
}

// insertPlayerSQL is the prepared-once insert across all 21 columns.
var insertPlayerSQL = func() string {
	cols := make([]string, len(Columns))
	marks := make([]string, len(Columns))
	for i, col := range Columns {
		cols[i] = fmt.Sprintf("%q", col.Label)
		marks[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO \"players\" (%s) VALUES (%s)",
		strings.Join(cols, ","), strings.Join(marks, ","))
}()

// EnsurePlayersTable creates the legacy players table if it does not exist.
func (s *store) EnsurePlayersTable() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(createPlayersSQL()); err != nil {
		return fmt.Errorf("create table failed: %w", err)
	}
	return nil
}

// ClearPlayers deletes every imported row. Used by replace-mode imports.
func (s *store) ClearPlayers() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM "players"`); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	// Reset the surrogate key sequence so a fresh import starts at 1. The
	// sequence table only exists once an AUTOINCREMENT insert has happened.
	if _, err := s.db.Exec(`DELETE FROM sqlite_sequence WHERE name = 'players'`); err != nil {
		log.Debug("Could not reset players sequence", "error", err)
	}
	return nil
}

// InsertPlayer inserts a single cleaned row. All values are bound as provided
// (strings or nil) and left for the database to coerce into the declared
// column types.
func (s *store) InsertPlayer(values []any) error {
	if len(values) != NumColumns {
		return fmt.Errorf("expected %d values, got %d", NumColumns, len(values))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(insertPlayerSQL, values...); err != nil {
		return err
	}
	return nil
}

// CountPlayers returns the number of imported rows.
func (s *store) CountPlayers() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM "players"`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// RecordImportRun appends one row to the import audit trail.
func (s *store) RecordImportRun(run ImportRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO import_runs (id, mode, inserted, skipped, error_count, started_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.ID, run.Mode, run.Inserted, run.Skipped, run.ErrorCount, run.StartedAt)
	return err
}

// ListImportRuns returns the audit trail, most recent first.
func (s *store) ListImportRuns() ([]ImportRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, mode, inserted, skipped, error_count, started_at
		FROM import_runs
		ORDER BY started_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := []ImportRun{}
	for rows.Next() {
		var run ImportRun
		if err := rows.Scan(&run.ID, &run.Mode, &run.Inserted, &run.Skipped, &run.ErrorCount, &run.StartedAt); err != nil {
			log.Error("Failed to scan import run row", "error", err)
			continue
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
