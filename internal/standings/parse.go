package standings

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ignoredColumnIndexes are source columns dropped on ingestion regardless of
// their header content (sheet columns I and J hold scratch formulas).
var ignoredColumnIndexes = map[int]bool{8: true, 9: true}

// ParseTable turns the upstream grid (header row + data rows) into typed
// standings. Header variants are canonicalized, the two scratch columns are
// discarded, and rows without a team name are dropped. Pos is assigned as the
// 1-based rank in arrival order.
func ParseTable(raw []byte) ([]TeamStanding, error) {
	var grid [][]any
	if err := json.Unmarshal(raw, &grid); err != nil {
		return nil, fmt.Errorf("failed to decode standings grid: %w", err)
	}
	if len(grid) == 0 {
		return nil, errors.New("standings grid is empty")
	}

	headers := grid[0]
	out := []TeamStanding{}
	for _, row := range grid[1:] {
		var t TeamStanding
		for i, rawHeader := range headers {
			if ignoredColumnIndexes[i] {
				continue
			}
			field, ok := headerAliases[strings.TrimSpace(anyToString(rawHeader))]
			if !ok {
				continue
			}
			var val any
			if i < len(row) {
				val = row[i]
			}
			setField(&t, field, val)
		}
		if strings.TrimSpace(t.Team) == "" {
			continue
		}
		out = append(out, t)
	}

	for i := range out {
		out[i].Pos = i + 1
	}
	return out, nil
}

func setField(t *TeamStanding, field Field, val any) {
	switch field {
	case FieldPos:
		// Pos is always reassigned from row order; the sheet's own value,
		// if any, is ignored.
	case FieldTeam:
		t.Team = anyToString(val)
	case FieldWinPercentage:
		t.WinPercentage = parseWinPercentage(val)
	case FieldNightsPlayed:
		t.NightsPlayed = coerceCell(val)
	case FieldNightsWon:
		t.NightsWon = coerceCell(val)
	case FieldNightsLost:
		t.NightsLost = coerceCell(val)
	case FieldGamesWon:
		t.GamesWon = coerceCell(val)
	case FieldGamesLost:
		t.GamesLost = coerceCell(val)
	case FieldSkunkW:
		t.SkunkW = coerceCell(val)
	case FieldSkunkL:
		t.SkunkL = coerceCell(val)
	}
}

// parseWinPercentage always strips a trailing percent sign and coerces to a
// number; a non-finite result stays empty.
func parseWinPercentage(val any) *float64 {
	switch v := val.(type) {
	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return nil
		}
		return &v
	case string:
		s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "%"))
		n, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
			return nil
		}
		return &n
	default:
		return nil
	}
}

// coerceCell converts a sheet value to a number when finite, else keeps the
// original string.
func coerceCell(val any) Cell {
	switch v := val.(type) {
	case nil:
		return TextCell("")
	case float64:
		return NumCell(v)
	case string:
		if strings.TrimSpace(v) == "" {
			return TextCell("")
		}
		if n, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && !math.IsInf(n, 0) && !math.IsNaN(n) {
			return NumCell(n)
		}
		return TextCell(v)
	case bool:
		if v {
			return TextCell("true")
		}
		return TextCell("false")
	default:
		return TextCell(fmt.Sprintf("%v", v))
	}
}

func anyToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
