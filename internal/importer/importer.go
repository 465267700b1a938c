package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/shimbeld/bsdl/internal/league"
	"github.com/shimbeld/bsdl/internal/metrics"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Importer turns CSV payloads exported from the league sheet into player
// rows. Imports are best effort: a bad row is recorded and skipped, never
// aborting the rest of the payload.
type Importer struct {
	store   league.LeagueStore
	metrics metrics.Metrics
}

// New creates an Importer backed by the given store.
func New(store league.LeagueStore, metricsSvc metrics.Metrics) *Importer {
	return &Importer{
		store:   store,
		metrics: metricsSvc,
	}
}

// Import validates and loads one CSV payload.
//
// Request-fatal conditions (empty payload, missing or mismatched header,
// table creation, replace-mode delete) return an error and nothing is
// reported inserted. Row-level failures are accumulated in the Result
// instead; callers must inspect Result.Errors to detect partial failure.
func (imp *Importer) Import(mode Mode, payload []byte) (*Result, error) {
	started := time.Now()
	imp.metrics.IncImportRuns()

	payload = bytes.TrimPrefix(payload, utf8BOM)
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}

	reader := csv.NewReader(bytes.NewReader(payload))
	// Rows are padded or truncated to the expected width later, so let the
	// parser hand back whatever each line holds.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, ErrMissingHeader
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	want := league.Labels()
	if !equalHeaders(header, want) {
		return nil, &HeaderMismatchError{Got: header, Want: want}
	}

	if err := imp.store.EnsurePlayersTable(); err != nil {
		return nil, &StorageError{Op: "create table failed", Err: err}
	}

	if mode == ModeReplace {
		if err := imp.store.ClearPlayers(); err != nil {
			return nil, &StorageError{Op: "delete failed", Err: err}
		}
	}

	result := &Result{
		OK:     true,
		Mode:   mode,
		Errors: []RowError{},
	}

	lineNo := 1 // header consumed
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		lineNo++
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, RowError{
				Line:  lineNo,
				Error: fmt.Sprintf("parse: %v", err),
				Row:   nil,
			})
			continue
		}

		if blankRow(record) {
			continue
		}

		row := cleanRow(record)
		if err := imp.store.InsertPlayer(row); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, RowError{
				Line:  lineNo,
				Error: err.Error(),
				Row:   row,
			})
			continue
		}
		result.Inserted++
	}

	imp.metrics.AddImportRowsInserted(result.Inserted)
	imp.metrics.AddImportRowsSkipped(result.Skipped)
	imp.metrics.ObserveImportDuration(time.Since(started).Seconds())

	// The audit trail is best effort and never fails the import.
	if err := imp.store.RecordImportRun(league.ImportRun{
		ID:         uuid.NewString(),
		Mode:       string(mode),
		Inserted:   result.Inserted,
		Skipped:    result.Skipped,
		ErrorCount: len(result.Errors),
		StartedAt:  started.Unix(),
	}); err != nil {
		log.Error("Failed to record import run", "error", err)
	}

	log.Info("Import finished", "mode", mode, "inserted", result.Inserted, "skipped", result.Skipped)
	return result, nil
}

// IsRequestFatal reports whether an import error should abort the request
// with a client error (as opposed to a storage failure).
func IsRequestFatal(err error) bool {
	var mismatch *HeaderMismatchError
	return errors.Is(err, ErrEmptyPayload) || errors.Is(err, ErrMissingHeader) || errors.As(err, &mismatch)
}

func equalHeaders(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// blankRow reports whether every cell is empty after trimming. Blank rows
// are skipped without counting as errors.
func blankRow(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// cleanRow pads or truncates a record to the canonical width and cleans the
// numeric-designated cells. Team and Player pass through untouched.
func cleanRow(record []string) []any {
	row := make([]any, league.NumColumns)
	for i, col := range league.Columns {
		var cell string
		if i < len(record) {
			cell = record[i]
		}
		if col.Numeric {
			row[i] = cleanNumeric(cell)
		} else {
			row[i] = cell
		}
	}
	return row
}

// cleanNumeric trims a numeric-ish cell and strips percent signs and
// thousands-separator commas. An empty result becomes NULL; everything else
// stays a string for the database to coerce.
func cleanNumeric(v string) any {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	v = strings.ReplaceAll(v, "%", "")
	v = strings.ReplaceAll(v, ",", "")
	if v == "" {
		return nil
	}
	return v
}
