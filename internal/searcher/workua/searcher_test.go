package workua

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

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
		// work.ua folds five-to-ten and ten-plus into one checkbox;
		// the searcher clicks it once.
		{10, []int{5, 5}},
		{25, []int{5}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Checkboxes(tt.years), "years %v", tt.years)
	}
}

func TestAbsoluteURL(t *testing.T) {
	assert.Equal(t, "https://www.work.ua/resumes/123/", absoluteURL("/resumes/123/"))
	assert.Equal(t, "https://www.work.ua/resumes/123/", absoluteURL("https://www.work.ua/resumes/123/"))
}
