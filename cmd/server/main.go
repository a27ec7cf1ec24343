// HTTP surface over the same pipeline: a health probe and a one-shot
// search endpoint. A search drives a real browser, so expect requests to
// take a while.

package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-resume-finder/internal/config"
	"go-resume-finder/internal/criteria"
	"go-resume-finder/internal/finder"
	"go-resume-finder/internal/logger"
	"go-resume-finder/internal/resume"
	"go-resume-finder/internal/searcher"
)

type searchRequest struct {
	Position   string   `json:"position" binding:"required"`
	Location   string   `json:"location"`
	SalaryFrom *int     `json:"salary_from"`
	SalaryTo   *int     `json:"salary_to"`
	Experience *float64 `json:"experience"`
	Keywords   []string `json:"skills_and_keywords"`
	Site       string   `json:"site"`
}

type candidate struct {
	Ref              string `json:"ref"`
	Position         string `json:"position"`
	MatchingKeywords string `json:"matching_keywords"`
	MatchingSkills   string `json:"matching_skills,omitempty"`
	Experience       string `json:"experience,omitempty"`
	Education        string `json:"education,omitempty"`
	IsFile           bool   `json:"is_file"`
	Points           int    `json:"points"`
}

type siteResponse struct {
	Site       string      `json:"site"`
	Candidates []candidate `json:"candidates,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zl.Sync()
	slog := zl.Sugar()

	f := finder.New(cfg, slog)

	r := gin.Default()
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	r.POST("/search", func(c *gin.Context) {
		var req searchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		params := &criteria.SearchCriteria{
			Position:   req.Position,
			Location:   req.Location,
			SalaryFrom: req.SalaryFrom,
			SalaryTo:   req.SalaryTo,
			Experience: req.Experience,
			Keywords:   req.Keywords,
		}
		if err := params.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		switch req.Site {
		case "work":
			ranked, err := f.FindOnWork(ctx, params)
			respondSingle(c, finder.SiteWorkUa, ranked, err)
		case "robota":
			ranked, err := f.FindOnRobota(ctx, params)
			respondSingle(c, finder.SiteRobotaUa, ranked, err)
		case "", "all":
			results := f.FindOnAll(ctx, params)
			sites := make([]siteResponse, 0, len(results))
			for _, res := range results {
				sites = append(sites, toSiteResponse(res))
			}
			c.JSON(http.StatusOK, gin.H{"sites": sites})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "site must be work, robota or all"})
		}
	})

	slog.Infow("server listening", "addr", cfg.ServerAddr)
	if err := r.Run(cfg.ServerAddr); err != nil {
		slog.Fatalw("server stopped", "error", err)
	}
}

func respondSingle(c *gin.Context, site string, ranked []resume.Ranked, err error) {
	if err != nil {
		if errors.Is(err, searcher.ErrResumeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no resumes found for the given parameters"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, siteResponse{Site: site, Candidates: toCandidates(ranked)})
}

func toSiteResponse(res finder.SiteResult) siteResponse {
	out := siteResponse{Site: res.Site}
	if res.Err != nil {
		out.Error = res.Err.Error()
		return out
	}
	out.Candidates = toCandidates(res.Ranked)
	return out
}

func toCandidates(ranked []resume.Ranked) []candidate {
	out := make([]candidate, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, candidate{
			Ref:              r.Ref,
			Position:         r.Record.Position,
			MatchingKeywords: r.Record.Keywords.String(),
			MatchingSkills:   r.Record.Skills.String(),
			Experience:       r.Record.Experience,
			Education:        r.Record.Education,
			IsFile:           r.Record.IsFile,
			Points:           r.Record.Points,
		})
	}
	return out
}
