// Parser defines the contract every resume extraction engine implements.

package parser

import (
	"context"

	"go-resume-finder/internal/criteria"
	"go-resume-finder/internal/resume"
)

// Parser fetches resume documents one by one, extracts and scores them,
// and answers the relevance query over everything collected. A reference
// that fails to fetch is skipped and never appears in the results.
type Parser interface {
	ParseResumes(ctx context.Context, links []string, params *criteria.SearchCriteria)

	// Relevant returns up to max of the collected records, most relevant
	// first.
	Relevant(max int) []resume.Ranked
}
