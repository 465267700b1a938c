package league

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// statsSource is one way of satisfying a stats query. Sources are tried in
// fixed priority order; the first that succeeds wins. A source that cannot
// answer (missing table, renamed column) returns an error and the next one is
// consulted.
type statsSource interface {
	name() string
	query(db *sql.DB, filters Filters) ([]StatsRow, error)
}

// preferredSource reads the snake_case players_stats table, aliasing every
// column back to its display label.
type preferredSource struct{}

func (preferredSource) name() string { return "players_stats" }

func (preferredSource) query(db *sql.DB, filters Filters) ([]StatsRow, error) {
	selects := make([]string, len(Columns))
	for i, col := range Columns {
		selects[i] = fmt.Sprintf("%s AS %q", col.Snake, col.Label)
	}
	sql := "SELECT " + strings.Join(selects, ", ") + " FROM players_stats"
	where, args := statsWhere("team", "player", filters)
	sql += where + ` ORDER BY "Team" ASC, "Pos" ASC, "Player" ASC`
	return runStatsQuery(db, sql, args)
}

// legacySource reads the display-label players table populated by the CSV
// importer.
type legacySource struct{}

func (legacySource) name() string { return "players" }

func (legacySource) query(db *sql.DB, filters Filters) ([]StatsRow, error) {
	selects := make([]string, len(Columns))
	for i, col := range Columns {
		selects[i] = fmt.Sprintf("%q", col.Label)
	}
	sql := "SELECT " + strings.Join(selects, ", ") + ` FROM "players"`
	where, args := statsWhere(`"Team"`, `"Player"`, filters)
	sql += where + ` ORDER BY "Team" ASC, "Pos" ASC, "Player" ASC`
	return runStatsQuery(db, sql, args)
}

// statsWhere builds the optional filter clause. Filters are containment
// matches, ANDed together when both are present.
func statsWhere(teamCol, playerCol string, filters Filters) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if strings.TrimSpace(filters.Team) != "" {
		conds = append(conds, teamCol+" LIKE ?")
		args = append(args, "%"+strings.TrimSpace(filters.Team)+"%")
	}
	if strings.TrimSpace(filters.Player) != "" {
		conds = append(conds, playerCol+" LIKE ?")
		args = append(args, "%"+strings.TrimSpace(filters.Player)+"%")
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func runStatsQuery(db *sql.DB, query string, args []any) ([]StatsRow, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	out := []StatsRow{}
	for rows.Next() {
		row := NewStatsRow()
		dest := make([]any, NumColumns)
		for i := range dest {
			dest[i] = new(any)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		for i, d := range dest {
			v := *(d.(*any))
			// Drivers may hand TEXT back as raw bytes.
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row.Set(i, v)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// statsSources is the fixed priority order for the schema fallback.
var statsSources = []statsSource{preferredSource{}, legacySource{}}

// QueryStats reads player rows, preferring the new schema and falling back to
// the legacy one with identical filter and ordering semantics. When every
// source fails the returned error is a *QueryFailure carrying both causes.
func (s *store) QueryStats(filters Filters) ([]StatsRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	errs := make([]error, 0, len(statsSources))
	for _, src := range statsSources {
		rows, err := src.query(s.db, filters)
		if err == nil {
			return rows, nil
		}
		log.Debug("Stats source failed, trying next", "source", src.name(), "error", err)
		errs = append(errs, err)
	}
	return nil, &QueryFailure{NewSchemaErr: errs[0], OldSchemaErr: errs[1]}
}
