package gradebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPassingInclusiveBoundary(t *testing.T) {
	b := New()
	b.Append(Record{"Alice", 95})
	b.Append(Record{"Bob", 82})
	b.Append(Record{"Cara", 40})

	pass := Passing(b, 40)
	fail := Failing(b, 40)

	assert.Len(t, pass, 3, "threshold boundary is inclusive")
	assert.Empty(t, fail)
}

func TestFilterPreservesOrder(t *testing.T) {
	b := New()
	for _, r := range []Record{
		{"Alice", 95}, {"Bob", 20}, {"Cara", 60}, {"Dan", 10},
	} {
		b.Append(r)
	}

	pass := Passing(b, 40)
	fail := Failing(b, 40)

	assert.Equal(t, []Record{{"Alice", 95}, {"Cara", 60}}, pass)
	assert.Equal(t, []Record{{"Bob", 20}, {"Dan", 10}}, fail)
}

// passing(t) and failing(t) partition the gradebook exactly for any
// threshold: no overlap, no omission.
func TestFilterPartitions(t *testing.T) {
	b := New()
	for _, r := range []Record{
		{"Alice", 95}, {"Bob", 40}, {"Cara", 39.9}, {"Dan", 0}, {"Eve", 100},
	} {
		b.Append(r)
	}

	for _, threshold := range []float64{0, 39.9, 40, 50, 100, 101} {
		pass := Passing(b, threshold)
		fail := Failing(b, threshold)

		assert.Equal(t, b.Len(), len(pass)+len(fail), "threshold %v", threshold)
		for _, r := range pass {
			assert.GreaterOrEqual(t, r.Mark, threshold)
		}
		for _, r := range fail {
			assert.Less(t, r.Mark, threshold)
		}
	}
}

func TestFilterEmptyGradebook(t *testing.T) {
	b := New()
	assert.Empty(t, Passing(b, DefaultPassThreshold))
	assert.Empty(t, Failing(b, DefaultPassThreshold))
}
