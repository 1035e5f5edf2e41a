package gradebook

// DefaultPassThreshold is the mark separating passing from failing.
const DefaultPassThreshold = 40.0

// Passing returns the records with mark >= threshold, in insertion
// order. The boundary is inclusive.
func Passing(b *Gradebook, threshold float64) []Record {
	out := make([]Record, 0, b.Len())
	for _, r := range b.records {
		if r.Mark >= threshold {
			out = append(out, r)
		}
	}
	return out
}

// Failing returns the records with mark < threshold, in insertion order.
func Failing(b *Gradebook, threshold float64) []Record {
	out := make([]Record, 0, b.Len())
	for _, r := range b.records {
		if r.Mark < threshold {
			out = append(out, r)
		}
	}
	return out
}
