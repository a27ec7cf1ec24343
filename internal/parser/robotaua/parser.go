// robota.ua resume extraction. The employer API serves the structured
// resume as JSON, addressed by the numeric id taken from the resume URL.

package robotaua

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"go-resume-finder/internal/criteria"
	"go-resume-finder/internal/parser"
	"go-resume-finder/internal/resume"
)

const defaultAPIURL = "https://employer-api.robota.ua"

type Parser struct {
	fetcher *parser.Fetcher
	log     *zap.SugaredLogger
	results *resume.Results

	// APIURL is swapped for a test server in tests.
	APIURL string
}

func NewParser(log *zap.SugaredLogger) *Parser {
	return &Parser{
		fetcher: parser.NewFetcher(),
		log:     log,
		results: resume.NewResults(),
		APIURL:  defaultAPIURL,
	}
}

// resumeDoc is the slice of the employer API payload the engine reads.
type resumeDoc struct {
	Speciality   string `json:"speciality"`
	Salary       string `json:"salary"`
	CurrencySign string `json:"currencySign"`
	Skills       []struct {
		Description string `json:"description"`
	} `json:"skills"`
	Experiences []struct {
		Description string `json:"description"`
	} `json:"experiences"`
	Educations []struct {
		Comment string `json:"comment"`
	} `json:"educations"`
	Additionals []struct {
		Description string `json:"description"`
	} `json:"additionals"`
}

// ParseResumes fetches every resume in order and stores a scored record per
// link. Fetch and decode failures skip the link entirely.
func (p *Parser) ParseResumes(ctx context.Context, links []string, params *criteria.SearchCriteria) {
	for _, link := range links {
		url := fmt.Sprintf("%s/resume/%s?markView=true", p.APIURL, resumeID(link))
		body, err := p.fetcher.Get(ctx, url)
		if err != nil {
			p.log.Debugw("skipping resume", "link", link, "error", err)
			continue
		}

		var doc resumeDoc
		if err := json.Unmarshal(body, &doc); err != nil {
			p.log.Debugw("skipping resume", "link", link, "error", err)
			continue
		}

		rec := &resume.Record{
			Position:   position(doc),
			Keywords:   parser.MatchKeywords(description(doc), params.Keywords),
			Experience: presence(len(doc.Experiences) > 0, resume.ExperienceProvided, resume.ExperienceNotProvided),
			Education:  presence(len(doc.Educations) > 0, resume.EducationProvided, resume.EducationNotProvided),
		}
		rec.Points = rec.Score()
		p.results.Add(link, rec)
	}
}

func (p *Parser) Relevant(max int) []resume.Ranked {
	return p.results.Top(max)
}

func (p *Parser) Results() *resume.Results {
	return p.results
}

// resumeID is the last path segment of the resume URL.
func resumeID(link string) string {
	return link[strings.LastIndexByte(link, '/')+1:]
}

// position is the declared speciality, annotated with the expected salary
// when the candidate stated a nonzero figure.
func position(doc resumeDoc) string {
	pos := doc.Speciality
	if salary, err := strconv.Atoi(doc.Salary); err == nil && salary != 0 {
		pos += ", " + doc.Salary + doc.CurrencySign
	}
	return pos
}

// description concatenates the free-text sections in a fixed order: the
// primary skills-block description, then each experience description, each
// education comment and each additional-section description.
func description(doc resumeDoc) string {
	var b strings.Builder
	if len(doc.Skills) > 0 {
		b.WriteString(doc.Skills[0].Description)
	}
	for _, experience := range doc.Experiences {
		b.WriteString(" " + experience.Description)
	}
	for _, education := range doc.Educations {
		b.WriteString(" " + education.Comment)
	}
	for _, additional := range doc.Additionals {
		b.WriteString(" " + additional.Description)
	}
	return b.String()
}

func presence(ok bool, provided, notProvided string) string {
	if ok {
		return provided
	}
	return notProvided
}
