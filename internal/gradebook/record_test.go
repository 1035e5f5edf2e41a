package gradebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	b := New()

	rec, err := b.Add("Alice", 95)
	require.NoError(t, err)
	assert.Equal(t, Record{Name: "Alice", Mark: 95}, rec)
	assert.Equal(t, 1, b.Len())

	// Names are trimmed
	rec, err = b.Add("  Bob  ", 82)
	require.NoError(t, err)
	assert.Equal(t, "Bob", rec.Name)

	// Duplicate names are distinct records
	_, err = b.Add("Alice", 40)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Len())
}

func TestAddEmptyName(t *testing.T) {
	b := New()

	_, err := b.Add("", 50)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = b.Add("   ", 50)
	assert.ErrorIs(t, err, ErrEmptyName)

	assert.Equal(t, 0, b.Len(), "rejected records must not be stored")
}

func TestRecordsIsACopy(t *testing.T) {
	b := New()
	_, err := b.Add("Alice", 95)
	require.NoError(t, err)

	recs := b.Records()
	recs[0].Name = "Mallory"

	assert.Equal(t, "Alice", b.Records()[0].Name)
}

func TestClear(t *testing.T) {
	b := New()
	_, err := b.Add("Alice", 95)
	require.NoError(t, err)

	b.Clear()
	assert.Equal(t, 0, b.Len())
}

// Statistics, grading, and filtering are pure reads: the gradebook
// length must be stable across all of them.
func TestReadOperationsDoNotMutate(t *testing.T) {
	b := New()
	for _, r := range []Record{{"Alice", 95}, {"Bob", 82}, {"Cara", 40}} {
		b.Append(r)
	}

	_, _ = Average(b)
	_, _ = Median(b)
	_, _ = Highest(b)
	_, _ = Lowest(b)
	_ = Distribution(b, DefaultScale)
	_ = Passing(b, DefaultPassThreshold)
	_ = Failing(b, DefaultPassThreshold)
	_ = ReportRows(b, DefaultScale)

	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []Record{{"Alice", 95}, {"Bob", 82}, {"Cara", 40}}, b.Records())
}
