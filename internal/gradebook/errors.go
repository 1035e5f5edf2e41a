package gradebook

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGradebook is returned by statistics requested on a
	// gradebook with zero records.
	ErrEmptyGradebook = errors.New("gradebook is empty")

	// ErrEmptyName rejects records with a blank student name.
	ErrEmptyName = errors.New("student name is empty")

	errShortRow = errors.New("row has fewer than 2 fields")
)

// ParseError describes a roster row that could not be turned into a
// record. Rows that fail to parse are skipped, not fatal.
type ParseError struct {
	Line  int
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: invalid record %q: %v", e.Line, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
