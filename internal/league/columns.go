package league

import "strings"

// Column describes one of the 21 player-stat columns shared by the CSV import
// contract, both table schemas, and the rendered stats table.
type Column struct {
	Label   string // display label; also the legacy table's column name
	Snake   string // preferred-schema column name
	Numeric bool   // cleaned on import and right-aligned when finite
	SQLType string // declared type in the legacy table
}

// Columns is the canonical column order. The CSV header must match the labels
// exactly, in this order.
var Columns = []Column{
	{"Pos", "pos", true, "INTEGER"},
	{"Team", "team", false, "VARCHAR(128) NOT NULL"},
	{"Player", "player", false, "VARCHAR(128) NOT NULL"},
	{"WP", "wp", true, "DECIMAL(6,2)"},
	{"GP", "gp", true, "INTEGER"},
	{"GW", "gw", true, "INTEGER"},
	{"DBL IN", "dbl_in", true, "INTEGER"},
	{"GF", "gf", true, "INTEGER"},
	{"Win %", "win_pct", true, "DECIMAL(6,2)"},
	{"Finish %", "finish_pct", true, "DECIMAL(6,2)"},
	{"Skunk Win", "skunk_win", true, "INTEGER"},
	{"B. Open", "b_open", true, "INTEGER"},
	{"B. Fin.", "b_fin", true, "INTEGER"},
	{"High Start", "high_start", true, "INTEGER"},
	{"High Finish", "high_finish", true, "INTEGER"},
	{"High Score", "high_score", true, "INTEGER"},
	{"4 Fin.", "four_fin", true, "INTEGER"},
	{"5 Fin.", "five_fin", true, "INTEGER"},
	{"Busts", "busts", true, "INTEGER"},
	{"Fewest Darts", "fewest_darts", true, "INTEGER"},
	{"LFT FIN", "lft_fin", true, "INTEGER"},
}

// NumColumns is the width of every player row.
var NumColumns = len(Columns)

var labelIndex = func() map[string]int {
	m := make(map[string]int, len(Columns))
	for i, c := range Columns {
		m[c.Label] = i
	}
	return m
}()

// Labels returns the display labels in canonical order.
func Labels() []string {
	labels := make([]string, len(Columns))
	for i, c := range Columns {
		labels[i] = c.Label
	}
	return labels
}

// IndexOf returns the canonical position of a display label, or -1.
func IndexOf(label string) int {
	if i, ok := labelIndex[label]; ok {
		return i
	}
	return -1
}

// columnAliases maps naming variants seen in older feeds and exports to the
// canonical display labels uniformly used everywhere else.
var columnAliases = map[string]string{
	"High_Score":   "High Score",
	"HighScore":    "High Score",
	"HighFinish":   "High Finish",
	"High_Finish":  "High Finish",
	"4Fin":         "4 Fin.",
	"FourFin":      "4 Fin.",
	"4_Fin":        "4 Fin.",
	"5Fin":         "5 Fin.",
	"FiveFin":      "5 Fin.",
	"5_Fin":        "5 Fin.",
	"Bust":         "Busts",
	"Fewest_Darts": "Fewest Darts",
	"FewestDarts":  "Fewest Darts",
	"LFT_FIN":      "LFT FIN",
	"LftFin":       "LFT FIN",
	"BOpen":        "B. Open",
	"B_Open":       "B. Open",
	"BFin":         "B. Fin.",
	"B_Fin":        "B. Fin.",
}

// CanonicalLabel resolves a possibly aliased field name to its canonical
// display label. Unknown names pass through unchanged.
func CanonicalLabel(name string) string {
	if label, ok := columnAliases[strings.TrimSpace(name)]; ok {
		return label
	}
	return name
}
