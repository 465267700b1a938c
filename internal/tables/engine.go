package tables

import (
	"sort"
	"strings"

	"github.com/shimbeld/bsdl/internal/league"
	"github.com/shimbeld/bsdl/internal/standings"
)

// SortStats returns a copy of the player rows ordered by the state's sort
// column. Rows that compare equal keep their incoming order.
func SortStats(rows []league.StatsRow, state ViewState) []league.StatsRow {
	column := state.Column
	if column == "" {
		column = "Team"
	}
	idx := league.IndexOf(column)
	if idx < 0 {
		return append([]league.StatsRow(nil), rows...)
	}
	out := append([]league.StatsRow(nil), rows...)
	c := newCollator()
	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareValues(c, out[i].Value(idx), out[j].Value(idx))
		if state.Ascending {
			return cmp < 0
		}
		return cmp > 0
	})
	return out
}

// FilterStats keeps the rows whose player or team name contains the search
// text, case-insensitively. A blank query returns the full set.
func FilterStats(rows []league.StatsRow, query string) []league.StatsRow {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]league.StatsRow(nil), rows...)
	}
	out := make([]league.StatsRow, 0, len(rows))
	for _, row := range rows {
		player := strings.ToLower(asString(row.ValueByLabel("Player")))
		team := strings.ToLower(asString(row.ValueByLabel("Team")))
		if strings.Contains(player, q) || strings.Contains(team, q) {
			out = append(out, row)
		}
	}
	return out
}

// Paginate slices rows down to the requested page. Pages are one-based and
// out-of-range pages clamp to the nearest valid one. An empty set still
// reports a single page.
func Paginate[T any](rows []T, page int) (pageRows []T, totalPages int) {
	totalPages = (len(rows) + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(rows) {
		start = len(rows)
	}
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], totalPages
}

// ClampPage normalizes a page number against the row count.
func ClampPage(page, rowCount int) int {
	totalPages := (rowCount + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// FilterStandings keeps the teams whose name contains the search text,
// case-insensitively.
func FilterStandings(rows []standings.TeamStanding, query string) []standings.TeamStanding {
	q := strings.ToLower(query)
	if q == "" {
		return append([]standings.TeamStanding(nil), rows...)
	}
	out := make([]standings.TeamStanding, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Team), q) {
			out = append(out, row)
		}
	}
	return out
}

// SortStandings returns a copy of the team rows ordered by the state's sort
// field. When sorting by anything other than position, positions are
// renumbered to reflect the new order.
func SortStandings(rows []standings.TeamStanding, state ViewState) []standings.TeamStanding {
	field := standings.Field(state.Column)
	if state.Column == "" {
		field = standings.FieldPos
	}
	out := append([]standings.TeamStanding(nil), rows...)
	c := newCollator()
	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareValues(c, out[i].FieldValue(field), out[j].FieldValue(field))
		if state.Ascending {
			return cmp < 0
		}
		return cmp > 0
	})
	if field != standings.FieldPos {
		for i := range out {
			out[i].Pos = i + 1
		}
	}
	return out
}
