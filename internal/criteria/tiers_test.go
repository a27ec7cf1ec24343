package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalaryTierCodeTable(t *testing.T) {
	expected := map[int]string{
		1: "1", 2000: "2", 3000: "3", 4000: "4", 5000: "5",
		6000: "6", 7000: "7", 8000: "8", 9000: "9", 10000: "10",
		15000: "11", 20000: "12", 25000: "13", 30000: "14",
		40000: "15", 50000: "16", 100000: "17",
	}
	for value, want := range expected {
		code, err := SalaryTierCode(&value)
		require.NoError(t, err)
		assert.Equal(t, want, code, "value %d", value)
	}
}

func TestSalaryTierCodeAbsent(t *testing.T) {
	code, err := SalaryTierCode(nil)
	require.NoError(t, err)
	assert.Equal(t, "0", code)
}

func TestSalaryTierCodeRejectsUnknownValues(t *testing.T) {
	for _, value := range []int{0, 1999, 12345, 60000, -1} {
		_, err := SalaryTierCode(&value)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr, "value %d", value)
	}
}

func TestSalaryValuesOrdered(t *testing.T) {
	values := SalaryValues()
	require.Len(t, values, 17)
	assert.Equal(t, 1, values[0])
	assert.Equal(t, 100000, values[16])
	for i := 1; i < len(values); i++ {
		assert.Greater(t, values[i], values[i-1])
	}
}

// Band boundaries are inclusive on both sides: an exact boundary value
// activates the bands on either side of it.
func TestExperienceBandsOverlap(t *testing.T) {
	tests := []struct {
		years float64
		want  []ExperienceBand
	}{
		{0, []ExperienceBand{BandNone}},
		{0.5, []ExperienceBand{BandUpToOneYear}},
		{1, []ExperienceBand{BandUpToOneYear, BandOneToTwoYears}},
		{1.5, []ExperienceBand{BandOneToTwoYears}},
		{2, []ExperienceBand{BandOneToTwoYears, BandTwoToFiveYears}},
		{5, []ExperienceBand{BandTwoToFiveYears, BandFiveToTenYears}},
		{7, []ExperienceBand{BandFiveToTenYears}},
		{10, []ExperienceBand{BandFiveToTenYears, BandTenPlusYears}},
		{25, []ExperienceBand{BandTenPlusYears}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExperienceBands(tt.years), "years %v", tt.years)
	}
}
