package importer

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects what happens to rows already in the table.
type Mode string

const (
	// ModeReplace deletes all existing rows before inserting new ones.
	ModeReplace Mode = "replace"
	// ModeAppend inserts new rows without deleting existing ones.
	ModeAppend Mode = "append"
)

// ErrBadMode is returned for any mode other than replace or append.
var ErrBadMode = errors.New("bad mode (use replace|append)")

// ErrEmptyPayload is returned when the request body carries no CSV at all.
var ErrEmptyPayload = errors.New("no csv payload")

// ErrMissingHeader is returned when the CSV has no header row.
var ErrMissingHeader = errors.New("csv header missing")

// ParseMode normalizes a raw mode parameter. An empty value defaults to
// replace, matching the upstream sheet exporter.
func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return ModeReplace, nil
	case ModeReplace:
		return ModeReplace, nil
	case ModeAppend:
		return ModeAppend, nil
	default:
		return "", ErrBadMode
	}
}

// HeaderMismatchError reports the full expected and actual header lists so
// the sheet side can be diagnosed without guessing.
type HeaderMismatchError struct {
	Got  []string `json:"got"`
	Want []string `json:"want"`
}

func (e *HeaderMismatchError) Error() string {
	return fmt.Sprintf("header mismatch: got %v, want %v", e.Got, e.Want)
}

// RowError records one data row that could not be inserted. The line number
// is 1-based and counts the header.
type RowError struct {
	Line  int    `json:"line"`
	Error string `json:"error"`
	Row   []any  `json:"row"`
}

// Result summarizes an import. Errors is empty, never null, on full success.
type Result struct {
	OK       bool       `json:"ok"`
	Mode     Mode       `json:"mode"`
	Inserted int        `json:"inserted"`
	Skipped  int        `json:"skipped"`
	Errors   []RowError `json:"errors"`
}

// StorageError marks a request-fatal storage failure (table creation or the
// replace-mode delete), as opposed to per-row failures which are recorded
// and skipped.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
