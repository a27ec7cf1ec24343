// One-shot resume search from the console.
//
//	go run ./cmd/finder -position Developer -location Харків -salary-from 10000 \
//	    -salary-to 100000 -experience 2 -keywords "python, selenium, rpa" -site all

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"go-resume-finder/internal/config"
	"go-resume-finder/internal/criteria"
	"go-resume-finder/internal/finder"
	"go-resume-finder/internal/logger"
	"go-resume-finder/internal/report"
	"go-resume-finder/internal/searcher"
)

func main() {
	position := flag.String("position", "", "candidate position (required)")
	location := flag.String("location", "", "city to search in")
	salaryFrom := flag.String("salary-from", "", "minimum expected salary, UAH")
	salaryTo := flag.String("salary-to", "", "maximum expected salary, UAH")
	experience := flag.String("experience", "", "candidate experience in years")
	keywords := flag.String("keywords", "", "comma-separated skills and keywords")
	site := flag.String("site", "all", "work, robota or all")
	flag.Parse()

	cfg := config.Load()
	zl, err := logger.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zl.Sync()
	slog := zl.Sugar()

	params, err := criteria.Parse(criteria.Input{
		Position:   *position,
		Location:   *location,
		SalaryFrom: *salaryFrom,
		SalaryTo:   *salaryTo,
		Experience: *experience,
		Keywords:   *keywords,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	f := finder.New(cfg, slog)
	ctx := context.Background()

	var results []finder.SiteResult
	switch *site {
	case "work":
		ranked, err := f.FindOnWork(ctx, params)
		results = append(results, finder.SiteResult{Site: finder.SiteWorkUa, Ranked: ranked, Err: err})
	case "robota":
		ranked, err := f.FindOnRobota(ctx, params)
		results = append(results, finder.SiteResult{Site: finder.SiteRobotaUa, Ranked: ranked, Err: err})
	case "all":
		results = f.FindOnAll(ctx, params)
	default:
		fmt.Fprintf(os.Stderr, "unknown site %q\n", *site)
		os.Exit(2)
	}

	failed := false
	for _, res := range results {
		printSite(res)
		if res.Err != nil {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func printSite(res finder.SiteResult) {
	fmt.Printf("%s\nЗвіт пошуку кандидатів на %s\n", divider(), res.Site)
	if res.Err != nil {
		if errors.Is(res.Err, searcher.ErrResumeNotFound) {
			fmt.Println("Резюме кандидатів за заданими параметрами не знайдено!")
		} else {
			fmt.Printf("Пошук не вдався: %v\n", res.Err)
		}
		return
	}
	for i, r := range res.Ranked {
		fmt.Println(report.CandidateText(i+1, r))
	}
}

func divider() string {
	return "******************************"
}
