package tables

import (
	"strconv"

	"github.com/shimbeld/bsdl/internal/league"
)

// StatCell is a player table cell ready for rendering.
type StatCell struct {
	Text    string
	Numeric bool
}

var percentColumns = map[string]bool{
	"Win %":    true,
	"Finish %": true,
}

// FormatStatCell renders one player cell. Percent columns show two decimal
// places, other numbers drop trailing zeros, and numeric cells are flagged
// so templates can right-align them.
func FormatStatCell(colIndex int, v any) StatCell {
	col := league.Columns[colIndex]
	n, isNum := asNumber(v)
	if v == nil || asString(v) == "" {
		return StatCell{Text: ""}
	}
	if !col.Numeric || !isNum {
		return StatCell{Text: asString(v)}
	}
	if percentColumns[col.Label] {
		return StatCell{Text: strconv.FormatFloat(n, 'f', 2, 64), Numeric: true}
	}
	return StatCell{Text: strconv.FormatFloat(n, 'f', -1, 64), Numeric: true}
}

// FormatStatRow renders a full player row in column order.
func FormatStatRow(row league.StatsRow) []StatCell {
	cells := make([]StatCell, league.NumColumns)
	for i := range cells {
		cells[i] = FormatStatCell(i, row.Value(i))
	}
	return cells
}

// FormatWinPercentage renders a standings win percentage with three decimal
// places, defaulting to 0.000 when the value is missing.
func FormatWinPercentage(v *float64) string {
	if v == nil {
		return "0.000"
	}
	return strconv.FormatFloat(*v, 'f', 3, 64)
}
