package workua

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"go-resume-finder/internal/browser"
	"go-resume-finder/internal/criteria"
	"go-resume-finder/internal/searcher"
)

const (
	baseURL = "https://www.work.ua"

	positionInput = "#search"
	locationInput = "xpath=//*[@id='searchform']/div/div/div[2]/input[1]"
	searchButton  = "#sm-but"
	salaryFrom    = "#salaryfrom_selection"
	salaryTo      = "#salaryto_selection"
	resumeList    = "#pjax-resume-list"
	nextPageLink  = "#pjax-resume-list nav ul .add-left-default a"
)

// experienceCheckbox addresses the n-th checkbox of the experience filter.
// work.ua folds everything above five years into one checkbox.
func experienceCheckbox(n int) string {
	return fmt.Sprintf("xpath=//*[@id='experience_selection']/div[%d]/label/input", n)
}

type Searcher struct {
	log   *zap.SugaredLogger
	shots *browser.ScreenshotDebugger
}

func New(log *zap.SugaredLogger, shots *browser.ScreenshotDebugger) *Searcher {
	return &Searcher{log: log, shots: shots}
}

func (s *Searcher) Name() string {
	return "work.ua"
}

func (s *Searcher) Search(ctx context.Context, page playwright.Page, params *criteria.SearchCriteria) ([]string, error) {
	links, err := s.search(ctx, page, params)
	if errors.Is(err, searcher.ErrResumeNotFound) && s.shots != nil {
		s.shots.Capture(page, "workua-not-found")
	}
	return links, err
}

func (s *Searcher) search(ctx context.Context, page playwright.Page, params *criteria.SearchCriteria) ([]string, error) {
	if _, err := page.Goto(baseURL+"/resumes/", playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return nil, err
	}
	browser.Settle(page, 2*time.Second)

	if err := s.setPositionAndLocation(page, params.Position, params.Location); err != nil {
		return nil, err
	}

	if err := s.setSalary(page, params.SalaryFrom, params.SalaryTo); err != nil {
		return nil, err
	}
	browser.Settle(page, time.Second)

	if err := s.setExperience(page, params.Experience); err != nil {
		return nil, err
	}
	browser.Settle(page, time.Second)

	return s.collectLinks(ctx, page)
}

func (s *Searcher) setPositionAndLocation(page playwright.Page, position, location string) error {
	if err := page.Fill(positionInput, position); err != nil {
		return err
	}

	// The location box is prefilled with the account's default city, so it
	// is cleared before typing.
	loc := page.Locator(locationInput)
	if _, err := loc.Evaluate("el => el.value = ''", nil); err != nil {
		return err
	}
	if err := loc.Fill(location); err != nil {
		return err
	}

	if err := page.Click(searchButton); err != nil {
		return err
	}
	browser.Settle(page, 3*time.Second)
	return nil
}

func (s *Searcher) setSalary(page playwright.Page, from, to *int) error {
	fromCode, err := criteria.SalaryTierCode(from)
	if err != nil {
		return err
	}
	toCode, err := criteria.SalaryTierCode(to)
	if err != nil {
		return err
	}

	fromSelect, err := searcher.Locate(page, salaryFrom)
	if err != nil {
		return err
	}
	if err := searcher.SelectByValue(fromSelect, fromCode); err != nil {
		return err
	}
	browser.Settle(page, time.Second)

	toSelect, err := searcher.Locate(page, salaryTo)
	if err != nil {
		return err
	}
	return searcher.SelectByValue(toSelect, toCode)
}

func (s *Searcher) setExperience(page playwright.Page, years *float64) error {
	if years == nil {
		return nil
	}

	checked := make(map[int]bool)
	for _, n := range Checkboxes(*years) {
		if checked[n] {
			continue
		}
		checked[n] = true

		box, err := searcher.Locate(page, experienceCheckbox(n))
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

// Checkboxes maps the experience bands a value activates onto work.ua's
// five checkboxes. The five-to-ten and ten-plus bands share the last one.
func Checkboxes(years float64) []int {
	var boxes []int
	for _, band := range criteria.ExperienceBands(years) {
		switch band {
		case criteria.BandNone:
			boxes = append(boxes, 1)
		case criteria.BandUpToOneYear:
			boxes = append(boxes, 2)
		case criteria.BandOneToTwoYears:
			boxes = append(boxes, 3)
		case criteria.BandTwoToFiveYears:
			boxes = append(boxes, 4)
		case criteria.BandFiveToTenYears, criteria.BandTenPlusYears:
			boxes = append(boxes, 5)
		}
	}
	return boxes
}

func (s *Searcher) collectLinks(ctx context.Context, page playwright.Page) ([]string, error) {
	var links []string
	for {
		if ctx.Err() != nil {
			return links, ctx.Err()
		}

		list, err := searcher.Locate(page, resumeList)
		if err != nil {
			return nil, err
		}
		anchors, err := list.Locator(".resume-link a").All()
		if err != nil {
			return nil, err
		}
		for _, a := range anchors {
			href, err := a.GetAttribute("href")
			if err != nil || href == "" {
				continue
			}
			links = append(links, absoluteURL(href))
		}
		s.log.Debugw("resume page collected", "site", s.Name(), "total", len(links))

		next := page.Locator(nextPageLink)
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
