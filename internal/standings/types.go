package standings

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Field identifies one canonical standings column.
type Field string

const (
	FieldPos           Field = "Pos"
	FieldTeam          Field = "Team"
	FieldNightsPlayed  Field = "Nights Played"
	FieldNightsWon     Field = "Nights Won"
	FieldNightsLost    Field = "Nights Lost"
	FieldGamesWon      Field = "Games Won"
	FieldGamesLost     Field = "Games Lost"
	FieldWinPercentage Field = "Win Percentage"
	FieldSkunkW        Field = "Skunk W"
	FieldSkunkL        Field = "Skunk L"
)

// DisplayFields is the rendered column order for the standings table.
var DisplayFields = []Field{
	FieldPos, FieldTeam, FieldNightsPlayed, FieldNightsWon, FieldNightsLost,
	FieldGamesWon, FieldGamesLost, FieldWinPercentage, FieldSkunkW, FieldSkunkL,
}

// headerAliases tolerates header variations coming from the sheet. Resolved
// once when the raw table is parsed; the rest of the code only ever sees
// canonical fields.
var headerAliases = map[string]Field{
	"Pos":           FieldPos,
	"Team":          FieldTeam,
	"Nights Played": FieldNightsPlayed,
	"Nights Won":    FieldNightsWon,
	"Nights Lost":   FieldNightsLost,
	"Games Won":     FieldGamesWon,
	"Games Lost":    FieldGamesLost,
	"Win %":         FieldWinPercentage,
	"Win%":          FieldWinPercentage,
	"Skunk W":       FieldSkunkW,
	"Skunks W":      FieldSkunkW,
	"Skunk Wins":    FieldSkunkW,
	"Skunk L":       FieldSkunkL,
	"Skunks L":      FieldSkunkL,
	"Skunk Losses":  FieldSkunkL,
}

// Cell is a spreadsheet value: a number when the source was finite, else the
// original text. The zero Cell is empty.
type Cell struct {
	Num   float64
	Text  string
	IsNum bool
}

// NumCell returns a numeric cell.
func NumCell(n float64) Cell { return Cell{Num: n, IsNum: true} }

// TextCell returns a textual cell.
func TextCell(s string) Cell { return Cell{Text: s} }

// String renders the cell the way the table shows it.
func (c Cell) String() string {
	if c.IsNum {
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	}
	return c.Text
}

// MarshalJSON keeps the number-or-string duality on the wire.
func (c Cell) MarshalJSON() ([]byte, error) {
	if c.IsNum {
		return json.Marshal(c.Num)
	}
	return json.Marshal(c.Text)
}

// TeamStanding is one team's aggregate record for the current season.
// Pos is assigned client-of-the-sheet side: 1-based rank in current order.
type TeamStanding struct {
	Pos           int     `json:"Pos"`
	Team          string  `json:"Team"`
	NightsPlayed  Cell    `json:"Nights Played"`
	NightsWon     Cell    `json:"Nights Won"`
	NightsLost    Cell    `json:"Nights Lost"`
	GamesWon      Cell    `json:"Games Won"`
	GamesLost     Cell    `json:"Games Lost"`
	WinPercentage *float64 `json:"Win Percentage"`
	SkunkW        Cell    `json:"Skunk W"`
	SkunkL        Cell    `json:"Skunk L"`
}

// FieldValue returns the sortable value for a canonical field.
func (t TeamStanding) FieldValue(f Field) any {
	switch f {
	case FieldPos:
		return float64(t.Pos)
	case FieldTeam:
		return t.Team
	case FieldNightsPlayed:
		return cellValue(t.NightsPlayed)
	case FieldNightsWon:
		return cellValue(t.NightsWon)
	case FieldNightsLost:
		return cellValue(t.NightsLost)
	case FieldGamesWon:
		return cellValue(t.GamesWon)
	case FieldGamesLost:
		return cellValue(t.GamesLost)
	case FieldWinPercentage:
		if t.WinPercentage == nil {
			return ""
		}
		return *t.WinPercentage
	case FieldSkunkW:
		return cellValue(t.SkunkW)
	case FieldSkunkL:
		return cellValue(t.SkunkL)
	default:
		return ""
	}
}

func cellValue(c Cell) any {
	if c.IsNum {
		return c.Num
	}
	return c.Text
}

// UpstreamError describes a standings fetch the upstream refused or answered
// with something other than JSON.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}
