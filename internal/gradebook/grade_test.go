package gradebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultScale(t *testing.T) {
	tests := []struct {
		mark float64
		want Grade
	}{
		{100, GradeA},
		{95, GradeA},
		{90, GradeA},
		{89.9, GradeB},
		{80, GradeB},
		{79, GradeC},
		{70, GradeC},
		{69.5, GradeD},
		{60, GradeD},
		{59.9, GradeF},
		{40, GradeF},
		{0, GradeF},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultScale.Grade(tt.mark), "mark %v", tt.mark)
	}
}

// A higher mark never earns a lower grade.
func TestScaleMonotonic(t *testing.T) {
	prev := DefaultScale.Grade(0)
	for mark := 0.5; mark <= 100; mark += 0.5 {
		g := DefaultScale.Grade(mark)
		assert.GreaterOrEqual(t, g.Rank(), prev.Rank(), "grade dropped at mark %v", mark)
		prev = g
	}
}

func TestGradeRankOrdering(t *testing.T) {
	for i := 1; i < len(Grades); i++ {
		assert.Greater(t, Grades[i-1].Rank(), Grades[i].Rank())
	}
}

func TestDistribution(t *testing.T) {
	b := New()
	for _, r := range []Record{
		{"Alice", 95}, {"Bob", 91}, {"Cara", 85}, {"Dan", 72}, {"Eve", 15},
	} {
		b.Append(r)
	}

	dist := Distribution(b, DefaultScale)
	assert.Equal(t, []GradeCount{
		{GradeA, 2},
		{GradeB, 1},
		{GradeC, 1},
		{GradeD, 0},
		{GradeF, 1},
	}, dist)
}

func TestDistributionEmpty(t *testing.T) {
	dist := Distribution(New(), DefaultScale)
	assert.Len(t, dist, len(Grades))
	for _, gc := range dist {
		assert.Zero(t, gc.Count)
	}
}
