package gradebook

// ReportRow is the derived projection rendered by reports. Rows are
// computed on demand and never stored back into the gradebook.
type ReportRow struct {
	Name  string
	Mark  float64
	Grade Grade
}

// ReportRows derives a row for every record in insertion order, with
// the letter grade computed from scale.
func ReportRows(b *Gradebook, scale Scale) []ReportRow {
	rows := make([]ReportRow, 0, b.Len())
	for _, r := range b.records {
		rows = append(rows, ReportRow{
			Name:  r.Name,
			Mark:  r.Mark,
			Grade: scale.Grade(r.Mark),
		})
	}
	return rows
}
