// work.ua resume extraction. Resume pages are plain server-rendered HTML;
// the interesting content lives in the direct children of the single
// div.wordwrap block: [2] opens the free-text sections and [3] carries the
// skills tags.

package workua

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"

	"go-resume-finder/internal/criteria"
	"go-resume-finder/internal/parser"
	"go-resume-finder/internal/resume"
)

type Parser struct {
	fetcher *parser.Fetcher
	log     *zap.SugaredLogger
	results *resume.Results
}

func NewParser(log *zap.SugaredLogger) *Parser {
	return &Parser{
		fetcher: parser.NewFetcher(),
		log:     log,
		results: resume.NewResults(),
	}
}

// ParseResumes fetches every link in order and stores a scored record per
// resume. A failed fetch or an unparseable page skips that link entirely.
func (p *Parser) ParseResumes(ctx context.Context, links []string, params *criteria.SearchCriteria) {
	for _, link := range links {
		body, err := p.fetcher.Get(ctx, link)
		if err != nil {
			p.log.Debugw("skipping resume", "link", link, "error", err)
			continue
		}
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
		if err != nil {
			p.log.Debugw("skipping resume", "link", link, "error", err)
			continue
		}

		rec := extract(doc, params.Keywords)
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

func extract(doc *goquery.Document, keywords []string) *resume.Record {
	rec := &resume.Record{
		Position: position(doc),
		Keywords: matchKeywords(doc, keywords),
		IsFile:   isFile(doc),
	}
	if !rec.IsFile {
		rec.Skills = matchSkills(doc, keywords)
		rec.Experience = sectionStatus(doc, "Досвід роботи", resume.ExperienceProvided, resume.ExperienceNotProvided)
		rec.Education = sectionStatus(doc, "Освіта", resume.EducationProvided, resume.EducationNotProvided)
	}
	return rec
}

// isFile reports whether the candidate uploaded a document instead of
// filling the structured form. Such pages carry a violet badge and no
// skills, experience or education markup.
func isFile(doc *goquery.Document) bool {
	return doc.Find("div.flex span.label-violet-light").Length() > 0
}

func position(doc *goquery.Document) string {
	return strings.ReplaceAll(doc.Find("h2").First().Text(), " ", "")
}

// contentBlocks are the direct child divs of the wordwrap container.
func contentBlocks(doc *goquery.Document) *goquery.Selection {
	return doc.Find("div.wordwrap").First().ChildrenFiltered("div")
}

// matchKeywords matches the required keywords against the free-text blocks
// following the resume header.
func matchKeywords(doc *goquery.Document, keywords []string) resume.Matches {
	if len(keywords) == 0 {
		return resume.NoMatches(resume.KeywordsNotProvided)
	}

	blocks := contentBlocks(doc)
	if blocks.Length() < 3 {
		return resume.NoMatches(resume.ResumeNotFilled)
	}
	sections := blocks.Eq(2).NextAll()
	if sections.Length() == 0 {
		return resume.NoMatches(resume.ResumeNotFilled)
	}

	var texts []string
	sections.Each(func(_ int, sel *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(sel.Text()))
	})
	return parser.MatchKeywords(strings.Join(texts, "\n"), keywords)
}

// matchSkills collects the declared skill tags whose text contains a
// required keyword. Unlike keyword matching this collects the skill
// strings, so the operator sees what the candidate actually declared.
func matchSkills(doc *goquery.Document, keywords []string) resume.Matches {
	if len(keywords) == 0 {
		return resume.NoMatches(resume.KeywordsNotProvided)
	}

	blocks := contentBlocks(doc)
	if blocks.Length() < 4 {
		return resume.NoMatches(resume.SkillsSectionEmpty)
	}
	tags := blocks.Eq(3).ChildrenFiltered("span")
	if tags.Length() == 0 {
		return resume.NoMatches(resume.ResumeAsFile)
	}

	var skills []string
	tags.Each(func(_ int, sel *goquery.Selection) {
		skills = append(skills, parser.Lower(strings.TrimSpace(sel.Text())))
	})

	matched := mapset.NewSet[string]()
	for _, keyword := range keywords {
		lowered := parser.Lower(keyword)
		for _, skill := range skills {
			if strings.Contains(skill, lowered) {
				matched.Add(skill)
			}
		}
	}

	if matched.Cardinality() == 0 {
		return resume.NoMatches(resume.NoSkillMatches)
	}
	return resume.MatchSet(matched)
}

// sectionStatus reports whether the page carries a section heading with the
// exact title, not whether the section has content. Prose that merely
// mentions the word does not count.
func sectionStatus(doc *goquery.Document, title, provided, notProvided string) string {
	found := false
	doc.Find("h2").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if strings.TrimSpace(strings.ReplaceAll(h.Text(), " ", " ")) == title {
			found = true
			return false
		}
		return true
	})
	if found {
		return provided
	}
	return notProvided
}
