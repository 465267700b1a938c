package tables

import "github.com/shimbeld/bsdl/internal/league"

// NormalizeStatsRow converts a loosely keyed record into a fixed-width row,
// mapping legacy field names onto their display labels. Keys that resolve
// to no known column are dropped.
func NormalizeStatsRow(record map[string]any) league.StatsRow {
	row := league.NewStatsRow()
	for key, value := range record {
		label := league.CanonicalLabel(key)
		idx := league.IndexOf(label)
		if idx < 0 {
			continue
		}
		row.Set(idx, value)
	}
	return row
}

// NormalizeStatsRows converts a batch of records.
func NormalizeStatsRows(records []map[string]any) []league.StatsRow {
	rows := make([]league.StatsRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, NormalizeStatsRow(record))
	}
	return rows
}
