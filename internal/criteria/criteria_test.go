package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequiresPosition(t *testing.T) {
	tests := []struct {
		name  string
		in    Input
		field string
	}{
		{name: "empty input", in: Input{}, field: "position"},
		{name: "blank position", in: Input{Position: "   "}, field: "position"},
		{name: "negative experience", in: Input{Position: "Developer", Experience: "-1"}, field: "experience"},
		{name: "experience not a number", in: Input{Position: "Developer", Experience: "two"}, field: "experience"},
		{name: "salary not a number", in: Input{Position: "Developer", SalaryFrom: "lots"}, field: "salary_from"},
		{name: "salary outside the table", in: Input{Position: "Developer", SalaryFrom: "12345"}, field: "salary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestParseFullCriteria(t *testing.T) {
	c, err := Parse(Input{
		Position:   "Developer",
		Location:   "Харків",
		SalaryFrom: "10000",
		SalaryTo:   "100000",
		Experience: "2",
		Keywords:   "python, selenium, rpa",
	})
	require.NoError(t, err)

	assert.Equal(t, "Developer", c.Position)
	assert.Equal(t, "Харків", c.Location)
	require.NotNil(t, c.SalaryFrom)
	assert.Equal(t, 10000, *c.SalaryFrom)
	require.NotNil(t, c.SalaryTo)
	assert.Equal(t, 100000, *c.SalaryTo)
	require.NotNil(t, c.Experience)
	assert.Equal(t, 2.0, *c.Experience)
	assert.Equal(t, []string{"python", "selenium", "rpa"}, c.Keywords)
}

func TestParseOptionalFieldsAbsent(t *testing.T) {
	c, err := Parse(Input{Position: "Developer"})
	require.NoError(t, err)

	assert.Nil(t, c.SalaryFrom)
	assert.Nil(t, c.SalaryTo)
	assert.Nil(t, c.Experience)
	assert.Nil(t, c.Keywords)
}

func TestSplitKeywords(t *testing.T) {
	assert.Nil(t, SplitKeywords(""))
	assert.Nil(t, SplitKeywords("  "))
	assert.Equal(t, []string{"python"}, SplitKeywords("python"))
	assert.Equal(t, []string{"python", "git flow", "rpa"}, SplitKeywords("python, git flow ,rpa,"))
}
