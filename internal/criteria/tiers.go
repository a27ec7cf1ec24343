package criteria

import "sort"

// salaryTiers maps the admissible salary values (UAH) to the filter codes
// work.ua's salary selects accept. A value outside this table is rejected at
// validation, not rounded to the nearest tier.
var salaryTiers = map[int]string{
	1:      "1",
	2000:   "2",
	3000:   "3",
	4000:   "4",
	5000:   "5",
	6000:   "6",
	7000:   "7",
	8000:   "8",
	9000:   "9",
	10000:  "10",
	15000:  "11",
	20000:  "12",
	25000:  "13",
	30000:  "14",
	40000:  "15",
	50000:  "16",
	100000: "17",
}

// SalaryTierCode translates a salary bound into the site filter code.
// A nil bound means "not limited" and maps to code "0".
func SalaryTierCode(v *int) (string, error) {
	if v == nil {
		return "0", nil
	}
	code, ok := salaryTiers[*v]
	if !ok {
		return "", &ValidationError{Field: "salary", Reason: "is not one of the admissible values"}
	}
	return code, nil
}

// SalaryValues returns the admissible salary values in ascending order,
// used to build operator prompts.
func SalaryValues() []int {
	values := make([]int, 0, len(salaryTiers))
	for v := range salaryTiers {
		values = append(values, v)
	}
	sort.Ints(values)
	return values
}

// ExperienceBand is one of the discrete experience buckets the site filter
// UIs expose as checkboxes.
type ExperienceBand int

const (
	BandNone ExperienceBand = iota
	BandUpToOneYear
	BandOneToTwoYears
	BandTwoToFiveYears
	BandFiveToTenYears
	BandTenPlusYears
)

// ExperienceBands returns every band a value of years activates. Band
// boundaries are inclusive on both sides, so an exact boundary value selects
// two checkboxes (1 year activates both "up to one year" and "one to two").
func ExperienceBands(years float64) []ExperienceBand {
	var bands []ExperienceBand
	if years == 0 {
		bands = append(bands, BandNone)
	}
	if years > 0 && years <= 1 {
		bands = append(bands, BandUpToOneYear)
	}
	if years >= 1 && years <= 2 {
		bands = append(bands, BandOneToTwoYears)
	}
	if years >= 2 && years <= 5 {
		bands = append(bands, BandTwoToFiveYears)
	}
	if years >= 5 && years <= 10 {
		bands = append(bands, BandFiveToTenYears)
	}
	if years >= 10 {
		bands = append(bands, BandTenPlusYears)
	}
	return bands
}
