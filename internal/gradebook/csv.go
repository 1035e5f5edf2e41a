package gradebook

// csv.go - roster import and report export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads a roster file: a header row, then one name,mark row per
// student. Rows that fail to parse are skipped and returned as
// ParseErrors; a missing file is returned as a wrapped fs.ErrNotExist.
func LoadCSV(path string) (*Gradebook, []*ParseError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open roster: %w", err)
	}
	defer func() { _ = f.Close() }()

	book, skipped, err := ReadCSV(f)
	if err != nil {
		return nil, nil, fmt.Errorf("read roster %s: %w", path, err)
	}
	return book, skipped, nil
}

// ReadCSV parses roster rows from r. The first row is treated as a
// header and discarded.
func ReadCSV(r io.Reader) (*Gradebook, []*ParseError, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row width checked per record below
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, errors.New("roster has no header row")
		}
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	book := New()
	var skipped []*ParseError
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read row %d: %w", line, err)
		}
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}
		if len(row) < 2 {
			skipped = append(skipped, &ParseError{Line: line, Value: strings.Join(row, ","), Err: errShortRow})
			continue
		}

		name := strings.TrimSpace(row[0])
		mark, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			skipped = append(skipped, &ParseError{Line: line, Value: row[1], Err: err})
			continue
		}
		if _, err := book.Add(name, mark); err != nil {
			skipped = append(skipped, &ParseError{Line: line, Value: name, Err: err})
		}
	}

	return book, skipped, nil
}

// ExportCSV writes the report (name,mark,grade) to path, one row per
// record in insertion order. The in-memory gradebook is never touched;
// a write failure leaves it intact.
func ExportCSV(path string, b *Gradebook, scale Scale) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}

	werr := WriteCSV(f, b, scale)
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("write report %s: %w", path, werr)
	}
	if cerr != nil {
		return fmt.Errorf("write report %s: %w", path, cerr)
	}
	return nil
}

// WriteCSV serializes the report rows to w with a name,mark,grade
// header. Grades are re-derived from scale, not read from input.
func WriteCSV(w io.Writer, b *Gradebook, scale Scale) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "mark", "grade"}); err != nil {
		return err
	}
	for _, row := range ReportRows(b, scale) {
		rec := []string{row.Name, FormatMark(row.Mark), string(row.Grade)}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FormatMark renders a mark without a spurious trailing ".00" for
// integral values.
func FormatMark(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}
