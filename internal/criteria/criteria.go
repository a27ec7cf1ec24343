// Search criteria shared by the site searchers and the resume parsers.
// Built once per search request, read-only afterwards.

package criteria

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError reports criteria that fail basic shape rules. It is raised
// before any site interaction happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid criteria: %s %s", e.Field, e.Reason)
}

type SearchCriteria struct {
	Position   string
	Location   string
	SalaryFrom *int
	SalaryTo   *int
	Experience *float64
	Keywords   []string
}

// Input carries raw operator-supplied values as the bot collects them,
// everything still a string. Parse does the coercion.
type Input struct {
	Position   string
	Location   string
	SalaryFrom string
	SalaryTo   string
	Experience string
	Keywords   string
}

// Parse converts raw input into validated SearchCriteria.
func Parse(in Input) (*SearchCriteria, error) {
	c := &SearchCriteria{
		Position: strings.TrimSpace(in.Position),
		Location: strings.TrimSpace(in.Location),
		Keywords: SplitKeywords(in.Keywords),
	}

	var err error
	if c.SalaryFrom, err = parseSalary("salary_from", in.SalaryFrom); err != nil {
		return nil, err
	}
	if c.SalaryTo, err = parseSalary("salary_to", in.SalaryTo); err != nil {
		return nil, err
	}

	if s := strings.TrimSpace(in.Experience); s != "" {
		years, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, &ValidationError{Field: "experience", Reason: "is not a number"}
		}
		c.Experience = &years
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks an already-typed criteria record. Entry points that bind
// typed payloads (the HTTP API) call it directly.
func (c *SearchCriteria) Validate() error {
	if strings.TrimSpace(c.Position) == "" {
		return &ValidationError{Field: "position", Reason: "is required"}
	}
	if c.Experience != nil && *c.Experience < 0 {
		return &ValidationError{Field: "experience", Reason: "must be nonnegative"}
	}
	if _, err := SalaryTierCode(c.SalaryFrom); err != nil {
		return err
	}
	if _, err := SalaryTierCode(c.SalaryTo); err != nil {
		return err
	}
	return nil
}

// SplitKeywords parses the comma-separated keyword form into the ordered
// sequence the parsers consume.
func SplitKeywords(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var keywords []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			keywords = append(keywords, part)
		}
	}
	return keywords
}

func parseSalary(field, raw string) (*int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, &ValidationError{Field: field, Reason: "is not a number"}
	}
	return &v, nil
}
