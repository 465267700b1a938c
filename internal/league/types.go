package league

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
)

// store handles all database operations for the league.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Filters narrows a stats query. Empty fields match everything; both set
// means both must match.
type Filters struct {
	Team   string
	Player string
}

// StatsRow is one player's row, holding one value per canonical column.
// Values are whatever the database produced: int64, float64, string or nil.
type StatsRow struct {
	values []any
}

// NewStatsRow returns an empty row sized to the canonical column count.
func NewStatsRow() StatsRow {
	return StatsRow{values: make([]any, NumColumns)}
}

// Value returns the cell for a canonical column index.
func (r StatsRow) Value(i int) any {
	if i < 0 || i >= len(r.values) {
		return nil
	}
	return r.values[i]
}

// ValueByLabel returns the cell for a display label, nil when unknown.
func (r StatsRow) ValueByLabel(label string) any {
	return r.Value(IndexOf(label))
}

// Set stores a cell at a canonical column index.
func (r *StatsRow) Set(i int, v any) {
	if i >= 0 && i < len(r.values) {
		r.values[i] = v
	}
}

// MarshalJSON renders the row as an object keyed by the display labels, in
// canonical column order.
func (r StatsRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.Value(i))
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ImportRun records one CSV import for the audit trail.
type ImportRun struct {
	ID         string `json:"id"`
	Mode       string `json:"mode"`
	Inserted   int    `json:"inserted"`
	Skipped    int    `json:"skipped"`
	ErrorCount int    `json:"error_count"`
	StartedAt  int64  `json:"started_at"`
}

// QueryFailure is returned when both the preferred and the legacy stats
// queries fail. Callers serve it to clients so the dual failure is visible.
type QueryFailure struct {
	NewSchemaErr error
	OldSchemaErr error
}

func (e *QueryFailure) Error() string {
	return fmt.Sprintf("both queries failed: new schema: %v; old schema: %v", e.NewSchemaErr, e.OldSchemaErr)
}

// MarshalJSON matches the wire shape clients distinguish from the success
// array: an object with an "error" field.
func (e *QueryFailure) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		"error":            "Both queries failed",
		"new_schema_error": e.NewSchemaErr.Error(),
		"old_schema_error": e.OldSchemaErr.Error(),
	})
}
