package gradebook

// Grade is the coarse letter category for a numeric mark.
type Grade string

// Letter grades from best to worst.
const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Grades lists every letter from best to worst.
var Grades = []Grade{GradeA, GradeB, GradeC, GradeD, GradeF}

// Rank orders grades for comparison: A=4 down to F=0.
func (g Grade) Rank() int {
	switch g {
	case GradeA:
		return 4
	case GradeB:
		return 3
	case GradeC:
		return 2
	case GradeD:
		return 1
	default:
		return 0
	}
}

// Cutoff maps a minimum mark to a letter grade.
type Cutoff struct {
	Min   float64
	Grade Grade
}

// Scale is an ordered list of cutoffs, highest minimum first. Marks
// below every cutoff earn GradeF.
type Scale []Cutoff

// DefaultScale is the standard ten-point scale.
var DefaultScale = Scale{
	{Min: 90, Grade: GradeA},
	{Min: 80, Grade: GradeB},
	{Min: 70, Grade: GradeC},
	{Min: 60, Grade: GradeD},
}

// Grade returns the letter for mark.
func (s Scale) Grade(mark float64) Grade {
	for _, c := range s {
		if mark >= c.Min {
			return c.Grade
		}
	}
	return GradeF
}

// GradeCount pairs a letter with the number of students who earned it.
type GradeCount struct {
	Grade Grade
	Count int
}

// Distribution counts students per letter grade, ordered A through F.
func Distribution(b *Gradebook, scale Scale) []GradeCount {
	counts := make(map[Grade]int, len(Grades))
	for _, r := range b.records {
		counts[scale.Grade(r.Mark)]++
	}
	out := make([]GradeCount, 0, len(Grades))
	for _, g := range Grades {
		out = append(out, GradeCount{Grade: g, Count: counts[g]})
	}
	return out
}
