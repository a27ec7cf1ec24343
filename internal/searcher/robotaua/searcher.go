package robotaua

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"go-resume-finder/internal/browser"
	"go-resume-finder/internal/criteria"
	"go-resume-finder/internal/searcher"
)

// robota.ua is an Angular application without stable ids or classes, so the
// selectors follow the component tree the way the markup nests it.
const (
	baseURL = "https://robota.ua"

	homeSearch = "xpath=/html/body/app-root/div/alliance-employer-home-page/div/main/div[2]/" +
		"alliance-employer-home-page-growth/alliance-employer-home-page-search/section/"

	positionInput = homeSearch + "santa-suggest-input/santa-drop-down/div/div[1]/santa-input/div/input"
	cityDropdown  = homeSearch + "santa-suggest-input/santa-drop-down/div/div[1]/santa-input/div/div[2]/" +
		"alliance-employer-home-page-filter-city/santa-drop-down"
	cityInput = cityDropdown + "/div/div[2]/div/div[1]/santa-input/div/input"
	cityFirst = cityDropdown + "/div/div[2]/div/div[2]/div/ul/li[1]"

	searchButton = homeSearch + "santa-button"

	resultCounter = "xpath=/html/body/app-root/div/alliance-cv-list-page/main/article/div[1]/" +
		"alliance-employer-cvdb-search-header/section/div/p/span"

	filtersPanel = "xpath=/html/body/app-root/div/alliance-cv-list-page/main/article/div[2]/" +
		"alliance-employer-cvdb-vertical-filters-sidebar/div/alliance-employer-cvdb-vertical-filters-panel/div/"

	experienceList = filtersPanel + "div[5]/div[2]/alliance-employer-cvdb-simple-experience/lib-checkbox-recursive-list/"
	salaryRange    = filtersPanel + "div[4]/alliance-employer-cvdb-simple-salary/lib-input-range/div/"

	keywordApply = "xpath=/html/body/div/div[3]/div/div/alliance-employer-cvdb-header-filters/section/div/" +
		"alliance-employer-cvdb-desktop-filter-keyword/santa-suggest-input/santa-drop-down/" +
		"div/div[1]/santa-input/div/div[2]/div/santa-button/button"

	cvList     = "xpath=/html/body/app-root/div/alliance-cv-list-page/main/article/div[1]/div/alliance-employer-cvdb-cv-list/div/"
	cvCards    = cvList + "div"
	pagination = cvList + "nav/santa-pagination-with-links/div"
)

type Searcher struct {
	log   *zap.SugaredLogger
	shots *browser.ScreenshotDebugger
}

func New(log *zap.SugaredLogger, shots *browser.ScreenshotDebugger) *Searcher {
	return &Searcher{log: log, shots: shots}
}

func (s *Searcher) Name() string {
	return "robota.ua"
}

func (s *Searcher) Search(ctx context.Context, page playwright.Page, params *criteria.SearchCriteria) ([]string, error) {
	links, err := s.search(ctx, page, params)
	if errors.Is(err, searcher.ErrResumeNotFound) && s.shots != nil {
		s.shots.Capture(page, "robotaua-not-found")
	}
	return links, err
}

func (s *Searcher) search(ctx context.Context, page playwright.Page, params *criteria.SearchCriteria) ([]string, error) {
	if _, err := page.Goto(baseURL+"/employer/", playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return nil, err
	}
	browser.Settle(page, 5*time.Second)

	if err := page.Fill(positionInput, params.Position); err != nil {
		return nil, err
	}
	browser.Settle(page, time.Second)

	if params.Location != "" {
		if err := s.setLocation(page, params.Location); err != nil {
			return nil, err
		}
	}

	if err := page.Click(searchButton); err != nil {
		return nil, err
	}
	browser.Settle(page, 5*time.Second)

	// The site reports the match count right after the position filter is
	// applied. Zero here means nothing to narrow further.
	counter, err := searcher.Locate(page, resultCounter)
	if err != nil {
		return nil, err
	}
	text, err := counter.TextContent()
	if err != nil {
		return nil, err
	}
	if err := resumesAvailable(text); err != nil {
		return nil, err
	}

	if err := s.setExperience(page, params.Experience); err != nil {
		return nil, err
	}

	if err := s.setSalary(page, params.SalaryFrom, params.SalaryTo); err != nil {
		return nil, err
	}

	if err := page.Click(keywordApply); err != nil {
		return nil, err
	}
	browser.Settle(page, 2*time.Second)

	return s.collectLinks(ctx, page)
}

func (s *Searcher) setLocation(page playwright.Page, location string) error {
	if err := page.Click(cityDropdown); err != nil {
		return err
	}
	browser.Settle(page, time.Second)

	if err := page.Fill(cityInput, location); err != nil {
		return err
	}
	browser.Settle(page, time.Second)

	// The first suggestion is the match; no suggestion means the city is
	// unknown to the site.
	first, err := searcher.Locate(page, cityFirst)
	if err != nil {
		return err
	}
	return first.Click()
}

// resumesAvailable reads the search header counter text. A zero count ends
// the search with ErrResumeNotFound before any filter is applied.
func resumesAvailable(text string) error {
	count, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return fmt.Errorf("unexpected resume counter %q: %w", text, err)
	}
	if count == 0 {
		return searcher.ErrResumeNotFound
	}
	return nil
}

func (s *Searcher) setExperience(page playwright.Page, years *float64) error {
	if years == nil {
		return nil
	}

	// The experience filter sits below the fold.
	if _, err := page.Evaluate("window.scrollTo(0, 1000)"); err != nil {
		return err
	}
	browser.Settle(page, time.Second)

	for _, n := range Checkboxes(*years) {
		box, err := searcher.Locate(page, fmt.Sprintf("%sdiv[%d]/santa-checkbox", experienceList, n))
		if err != nil {
			return err
		}
		if err := box.Click(); err != nil {
			return err
		}
		browser.Settle(page, time.Second)
	}
	return nil
}

// Checkboxes maps activated experience bands onto robota.ua's six
// checkboxes, one per band.
func Checkboxes(years float64) []int {
	bands := criteria.ExperienceBands(years)
	boxes := make([]int, len(bands))
	for i, band := range bands {
		boxes[i] = int(band) + 1
	}
	return boxes
}

func (s *Searcher) setSalary(page playwright.Page, from, to *int) error {
	// robota.ua takes raw amounts, not tier codes.
	if from != nil {
		input, err := searcher.Locate(page, salaryRange+"div[1]/santa-input/div/input")
		if err != nil {
			return err
		}
		if err := input.Fill(strconv.Itoa(*from)); err != nil {
			return err
		}
		browser.Settle(page, time.Second)
	}

	if to != nil {
		input, err := searcher.Locate(page, salaryRange+"div[2]/santa-input/div/input")
		if err != nil {
			return err
		}
		if err := input.Click(); err != nil {
			return err
		}
		if err := input.Fill(strconv.Itoa(*to)); err != nil {
			return err
		}
	}

	browser.Settle(page, time.Second)
	return nil
}

func (s *Searcher) collectLinks(ctx context.Context, page playwright.Page) ([]string, error) {
	var links []string
	for {
		if ctx.Err() != nil {
			return links, ctx.Err()
		}

		list, err := searcher.Locate(page, cvCards)
		if err != nil {
			return nil, err
		}
		cards, err := list.Locator("alliance-employer-cvdb-cv-list-card").All()
		if err != nil {
			return nil, err
		}
		for _, card := range cards {
			href, err := card.Locator("a").First().GetAttribute("href")
			if err != nil || href == "" {
				continue
			}
			links = append(links, absoluteURL(href))
		}
		s.log.Debugw("resume page collected", "site", s.Name(), "total", len(links))

		nav := page.Locator(pagination)
		if count, err := nav.Count(); err != nil || count == 0 {
			return links, nil
		}
		current, err := nav.Locator(".active").First().TextContent()
		if err != nil {
			return links, nil
		}
		cur, err := strconv.Atoi(strings.TrimSpace(current))
		if err != nil {
			return links, nil
		}

		next := nav.GetByText(strconv.Itoa(cur+1), playwright.LocatorGetByTextOptions{
			Exact: playwright.Bool(true),
		})
		if count, err := next.Count(); err != nil || count == 0 {
			return links, nil
		}
		if err := next.First().Click(); err != nil {
			return links, nil
		}
		browser.Settle(page, time.Second)
	}
}

func absoluteURL(href string) string {
	if strings.HasPrefix(href, "/") {
		return baseURL + href
	}
	return href
}
