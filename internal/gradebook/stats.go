package gradebook

import "sort"

// Summary bundles the classroom statistics computed in one pass.
type Summary struct {
	Count   int
	Average float64
	Median  float64
	Highest Record
	Lowest  Record
}

// Average returns the arithmetic mean of all marks.
func Average(b *Gradebook) (float64, error) {
	if b.Len() == 0 {
		return 0, ErrEmptyGradebook
	}
	var sum float64
	for _, r := range b.records {
		sum += r.Mark
	}
	return sum / float64(b.Len()), nil
}

// Median returns the middle mark: the central value for an odd count,
// the mean of the two central values for an even count.
func Median(b *Gradebook) (float64, error) {
	if b.Len() == 0 {
		return 0, ErrEmptyGradebook
	}
	marks := make([]float64, 0, b.Len())
	for _, r := range b.records {
		marks = append(marks, r.Mark)
	}
	sort.Float64s(marks)
	mid := len(marks) / 2
	if len(marks)%2 == 1 {
		return marks[mid], nil
	}
	return (marks[mid-1] + marks[mid]) / 2, nil
}

// Highest returns the record with the maximum mark. Ties resolve to the
// first record in insertion order.
func Highest(b *Gradebook) (Record, error) {
	if b.Len() == 0 {
		return Record{}, ErrEmptyGradebook
	}
	best := b.records[0]
	for _, r := range b.records[1:] {
		if r.Mark > best.Mark {
			best = r
		}
	}
	return best, nil
}

// Lowest returns the record with the minimum mark. Ties resolve to the
// first record in insertion order.
func Lowest(b *Gradebook) (Record, error) {
	if b.Len() == 0 {
		return Record{}, ErrEmptyGradebook
	}
	worst := b.records[0]
	for _, r := range b.records[1:] {
		if r.Mark < worst.Mark {
			worst = r
		}
	}
	return worst, nil
}

// Summarize computes every statistic over the gradebook.
func Summarize(b *Gradebook) (Summary, error) {
	avg, err := Average(b)
	if err != nil {
		return Summary{}, err
	}
	med, err := Median(b)
	if err != nil {
		return Summary{}, err
	}
	hi, err := Highest(b)
	if err != nil {
		return Summary{}, err
	}
	lo, err := Lowest(b)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Count:   b.Len(),
		Average: avg,
		Median:  med,
		Highest: hi,
		Lowest:  lo,
	}, nil
}
