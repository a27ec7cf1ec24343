// Searcher defines the contract every site search provider implements.

package searcher

import (
	"context"
	"errors"

	"github.com/playwright-community/playwright-go"

	"go-resume-finder/internal/criteria"
)

// ErrResumeNotFound means the site reported zero matches for the criteria,
// or a filter control the search needs is missing or disabled.
var ErrResumeNotFound = errors.New("resume candidates were not found for the query or search parameters")

// Searcher drives one site's search UI and collects resume links in the
// site's display order, following pagination to the end.
type Searcher interface {
	Search(ctx context.Context, page playwright.Page, params *criteria.SearchCriteria) ([]string, error)

	// Name is the site name (work.ua, robota.ua).
	Name() string
}

// Locate resolves a required interactive element. A missing or disabled
// element means the filter cannot be applied.
func Locate(page playwright.Page, selector string) (playwright.Locator, error) {
	loc := page.Locator(selector).First()
	count, err := loc.Count()
	if err != nil {
		return nil, ErrResumeNotFound
	}
	enabled := count > 0
	if enabled {
		if enabled, err = loc.IsEnabled(); err != nil {
			return nil, ErrResumeNotFound
		}
	}
	if err := usable(count, enabled); err != nil {
		return nil, err
	}
	return loc, nil
}

// usable reduces an element's observed state to the shared error.
func usable(count int, enabled bool) error {
	if count == 0 || !enabled {
		return ErrResumeNotFound
	}
	return nil
}

// SelectByValue picks a dropdown option by its value attribute. An option
// the select does not carry surfaces like a missing element.
func SelectByValue(loc playwright.Locator, value string) error {
	selected, err := loc.SelectOption(playwright.SelectOptionValues{Values: &[]string{value}})
	if err != nil || len(selected) == 0 {
		return ErrResumeNotFound
	}
	return nil
}
