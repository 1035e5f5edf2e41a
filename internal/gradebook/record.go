// Package gradebook implements the in-memory record store and the pure
// operations over it: statistics, letter grading, pass/fail filtering,
// and CSV import/export.
package gradebook

import "strings"

// Record is a single student's name and numeric mark.
type Record struct {
	Name string
	Mark float64
}

// Gradebook is the ordered collection of records for one session.
// Identity is positional; duplicate names are distinct records.
type Gradebook struct {
	records []Record
}

// New returns an empty gradebook.
func New() *Gradebook {
	return &Gradebook{}
}

// Add appends a record for name with the given mark. Names are trimmed
// and must be non-empty.
func (b *Gradebook) Add(name string, mark float64) (Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Record{}, ErrEmptyName
	}
	rec := Record{Name: name, Mark: mark}
	b.records = append(b.records, rec)
	return rec, nil
}

// Append appends an already-built record without validation.
func (b *Gradebook) Append(rec Record) {
	b.records = append(b.records, rec)
}

// Len returns the number of records.
func (b *Gradebook) Len() int {
	return len(b.records)
}

// Records returns a copy of the records in insertion order. Mutating
// the returned slice does not affect the gradebook.
func (b *Gradebook) Records() []Record {
	out := make([]Record, len(b.records))
	copy(out, b.records)
	return out
}

// Clear removes every record.
func (b *Gradebook) Clear() {
	b.records = b.records[:0]
}
