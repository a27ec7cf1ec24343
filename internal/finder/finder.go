// Finder runs the full pipeline for one site: browser search, sequential
// extraction, relevance ranking. Every delivery surface (bot, CLI, HTTP)
// goes through it.

package finder

import (
	"context"

	"go.uber.org/zap"

	"go-resume-finder/internal/browser"
	"go-resume-finder/internal/config"
	"go-resume-finder/internal/criteria"
	"go-resume-finder/internal/parser"
	probotaua "go-resume-finder/internal/parser/robotaua"
	pworkua "go-resume-finder/internal/parser/workua"
	"go-resume-finder/internal/resume"
	"go-resume-finder/internal/searcher"
	srobotaua "go-resume-finder/internal/searcher/robotaua"
	sworkua "go-resume-finder/internal/searcher/workua"
)

const (
	SiteWorkUa   = "work.ua"
	SiteRobotaUa = "robota.ua"
)

type Finder struct {
	cfg *config.Config
	log *zap.SugaredLogger
}

func New(cfg *config.Config, log *zap.SugaredLogger) *Finder {
	return &Finder{cfg: cfg, log: log}
}

// SiteResult is one site's outcome when several sites run from a single
// command. A failed site never aborts its siblings.
type SiteResult struct {
	Site   string
	Ranked []resume.Ranked
	Err    error
}

func (f *Finder) FindOnWork(ctx context.Context, params *criteria.SearchCriteria) ([]resume.Ranked, error) {
	shots := browser.NewScreenshotDebugger(f.cfg.ScreenshotsPath, f.log)
	return f.find(ctx, params, sworkua.New(f.log, shots), pworkua.NewParser(f.log))
}

func (f *Finder) FindOnRobota(ctx context.Context, params *criteria.SearchCriteria) ([]resume.Ranked, error) {
	shots := browser.NewScreenshotDebugger(f.cfg.ScreenshotsPath, f.log)
	return f.find(ctx, params, srobotaua.New(f.log, shots), probotaua.NewParser(f.log))
}

// FindOnAll queries the sites one after another, each wrapped
// independently.
func (f *Finder) FindOnAll(ctx context.Context, params *criteria.SearchCriteria) []SiteResult {
	results := make([]SiteResult, 0, 2)

	ranked, err := f.FindOnWork(ctx, params)
	results = append(results, SiteResult{Site: SiteWorkUa, Ranked: ranked, Err: err})

	ranked, err = f.FindOnRobota(ctx, params)
	results = append(results, SiteResult{Site: SiteRobotaUa, Ranked: ranked, Err: err})

	return results
}

func (f *Finder) find(ctx context.Context, params *criteria.SearchCriteria, s searcher.Searcher, p parser.Parser) ([]resume.Ranked, error) {
	mgr, err := browser.NewManager(f.cfg.Headless)
	if err != nil {
		return nil, err
	}
	defer mgr.Close()

	page, err := mgr.NewPage()
	if err != nil {
		return nil, err
	}

	f.log.Infow("searching resumes", "site", s.Name(), "position", params.Position)
	links, err := s.Search(ctx, page, params)
	if err != nil {
		return nil, err
	}
	f.log.Infow("resume links collected", "site", s.Name(), "count", len(links))

	p.ParseResumes(ctx, links, params)
	ranked := p.Relevant(f.cfg.MaxResults)
	f.log.Infow("resumes ranked", "site", s.Name(), "selected", len(ranked))
	return ranked, nil
}
