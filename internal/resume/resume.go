// Scored resume records produced by the per-site parsers.

package resume

import (
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Operator-facing status strings substituted for structured values that
// could not be extracted or matched.
const (
	EducationProvided     = "Освіта вказана"
	EducationNotProvided  = "Освіта не вказана"
	ExperienceProvided    = "Досвід роботи вказаний"
	ExperienceNotProvided = "Досвід роботи не вказаний"
	SkillsSectionEmpty    = "Розділ навичок не заповнений"
	ResumeAsFile          = "Резюме розміщено у вигляді файлу"
	NoSkillMatches        = "Збігів у розділі навичок не знайдено"
	ResumeNotFilled       = "Резюме не заповнено"
	NoKeywordMatches      = "Збігів з ключовими словами у резюме не знайдено"
	KeywordsNotProvided   = "Ключові слова не вказані"
)

// Matches is either a set of matched strings or a status explaining why
// there is no set. Exactly one side is populated.
type Matches struct {
	Items  mapset.Set[string]
	Status string
}

func MatchSet(items mapset.Set[string]) Matches {
	return Matches{Items: items}
}

func NoMatches(status string) Matches {
	return Matches{Status: status}
}

// Matched reports whether any matches were found.
func (m Matches) Matched() bool {
	return m.Items != nil
}

// Count is the match cardinality, zero for the status side.
func (m Matches) Count() int {
	if m.Items == nil {
		return 0
	}
	return m.Items.Cardinality()
}

// IsZero reports whether the field was never computed at all (file-upload
// resumes, sites without a skills section).
func (m Matches) IsZero() bool {
	return m.Items == nil && m.Status == ""
}

// String renders the matches for an operator report: either the sorted set
// or the status message.
func (m Matches) String() string {
	if m.Items == nil {
		return m.Status
	}
	items := m.Items.ToSlice()
	sort.Strings(items)
	return strings.Join(items, ", ")
}

// Record holds everything extracted from one resume page. Skills,
// Experience and Education stay zero for resumes uploaded as a file.
type Record struct {
	Position   string
	Keywords   Matches
	Skills     Matches
	Experience string
	Education  string
	IsFile     bool
	Points     int
}

// Score is the relevance points formula: keyword-set cardinality plus one
// for each of the experience and education sections being present. Skill
// matches intentionally do not contribute.
func (r *Record) Score() int {
	points := r.Keywords.Count()
	if r.Experience == ExperienceProvided {
		points++
	}
	if r.Education == EducationProvided {
		points++
	}
	return points
}

// Ranked pairs a record with the reference it was fetched from.
type Ranked struct {
	Ref    string
	Record *Record
}

func (r Ranked) String() string {
	return fmt.Sprintf("%s (%d points)", r.Ref, r.Record.Points)
}
