package parser

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"go-resume-finder/internal/resume"
)

// The resumes are mostly Ukrainian; plain ASCII lowering is not enough.
var lowercase = cases.Lower(language.Ukrainian)

// Lower folds text for matching.
func Lower(s string) string {
	return lowercase.String(s)
}

// MatchKeywords collects the required keywords that occur as substrings of
// the resume description text, case-insensitively. No keywords and no
// matches are distinct status outcomes, not empty sets.
func MatchKeywords(text string, keywords []string) resume.Matches {
	if len(keywords) == 0 {
		return resume.NoMatches(resume.KeywordsNotProvided)
	}

	lowered := Lower(text)
	matched := mapset.NewSet[string]()
	for _, keyword := range keywords {
		if strings.Contains(lowered, Lower(keyword)) {
			matched.Add(keyword)
		}
	}

	if matched.Cardinality() == 0 {
		return resume.NoMatches(resume.NoKeywordMatches)
	}
	return resume.MatchSet(matched)
}
