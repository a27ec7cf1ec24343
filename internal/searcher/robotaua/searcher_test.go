package robotaua

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-resume-finder/internal/searcher"
)

func TestResumesAvailable(t *testing.T) {
	tests := []struct {
		counter string
		wantErr error
	}{
		{"154", nil},
		{" 1 ", nil},
		{"0", searcher.ErrResumeNotFound},
		{"  0\n", searcher.ErrResumeNotFound},
	}

	for _, tt := range tests {
		err := resumesAvailable(tt.counter)
		if tt.wantErr == nil {
			assert.NoError(t, err, "counter %q", tt.counter)
		} else {
			assert.ErrorIs(t, err, tt.wantErr, "counter %q", tt.counter)
		}
	}
}

func TestResumesAvailableUnparseableCounter(t *testing.T) {
	err := resumesAvailable("кандидатів")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, searcher.ErrResumeNotFound)
}

func TestCheckboxes(t *testing.T) {
	tests := []struct {
		years float64
		want  []int
	}{
		{0, []int{1}},
		{0.5, []int{2}},
		{1, []int{2, 3}},
		{2, []int{3, 4}},
		{5, []int{4, 5}},
		{10, []int{5, 6}},
		{25, []int{6}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Checkboxes(tt.years), "years %v", tt.years)
	}
}

func TestAbsoluteURL(t *testing.T) {
	assert.Equal(t, "https://robota.ua/candidates/123", absoluteURL("/candidates/123"))
	assert.Equal(t, "https://robota.ua/candidates/123", absoluteURL("https://robota.ua/candidates/123"))
}
