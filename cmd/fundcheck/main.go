// Command fundcheck scores a set of mutual funds from the command line.
//
//	fundcheck -directory fund_returns_urls.xlsx "Fund A" "Fund B"
//	fundcheck -url https://example.com/fund-a,https://example.com/fund-b
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"fund_performance/pkg/core/config"
	"fund_performance/pkg/core/directory"
	"fund_performance/pkg/core/extract"
	"fund_performance/pkg/core/ingest"
	"fund_performance/pkg/core/logger"
	"fund_performance/pkg/core/pipeline"
	"fund_performance/pkg/core/score"
	"fund_performance/pkg/models"

	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	dirPath := flag.String("directory", "", "fund directory (.xlsx or .yaml); overrides config")
	urls := flag.String("url", "", "comma-separated fund page URLs to score directly")
	list := flag.Bool("list", false, "list funds in the directory and exit")
	asJSON := flag.Bool("json", false, "print the report as JSON")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	lg := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: true})
	logger.SetGlobalLogger(lg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *dirPath != "" {
		cfg.DirectoryPath = *dirPath
	}

	names := directory.Unique(flag.Args())
	var entries []directory.Entry

	if *list || len(names) > 0 {
		dir, err := directory.Load(cfg.DirectoryPath, cfg.DirectorySheet)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.DirectoryPath).Msg("failed to load fund directory")
		}
		if *list {
			for _, n := range dir.Names() {
				fmt.Println(n)
			}
			return
		}
		entries, err = dir.Resolve(names)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	for _, u := range directory.Unique(strings.Split(*urls, ",")) {
		entries = append(entries, directory.Entry{Name: u, URL: u})
	}

	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "no funds selected")
		flag.Usage()
		os.Exit(1)
	}
	if len(entries) > cfg.MaxFunds {
		fmt.Fprintf(os.Stderr, "too many funds: %d selected, at most %d allowed\n", len(entries), cfg.MaxFunds)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fetcher := ingest.NewPageFetcher(cfg.UserAgent, cfg.HTTPTimeout)
	orchestrator := pipeline.NewOrchestrator(extract.New(fetcher, lg), cfg.Concurrency, lg)
	report := orchestrator.Run(ctx, entries)

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			log.Fatal().Err(err).Msg("failed to encode report")
		}
		return
	}
	printReport(os.Stdout, report)
}

func printReport(w io.Writer, report *models.PortfolioReport) {
	s := report.Score
	rank := score.RankLabel(s.RankLabel)
	out := score.OutperformanceLabel(s.OutperformanceLabel)

	fmt.Fprintln(w, "Portfolio Performance Summary")
	fmt.Fprintf(w, "  Relative Category Rank: %s %s", rank.Emoji(), rank)
	if hint := rank.Hint(); hint != "" {
		fmt.Fprintf(w, " (%s)", hint)
	}
	if s.RankPercentile != nil {
		fmt.Fprintf(w, " [%.2f%%]", *s.RankPercentile)
	}
	fmt.Fprintln(w)

	if s.Outperformance != nil {
		fmt.Fprintf(w, "  Benchmark Comparison: %s %s\n", out.Emoji(), out)
		fmt.Fprintf(w, "    (%+.2f%% vs benchmark) - %s\n", *s.Outperformance, s.OutperformanceDescription)
	} else {
		fmt.Fprintf(w, "  Benchmark Comparison: %s\n", out)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Individual MF Performance")
	for _, f := range report.Funds {
		r := f.Record
		fmt.Fprintf(w, "  %s\n", r.FundName)
		fmt.Fprintf(w, "    3Y CAGR:      %s\n", r.ThreeYearCAGR)
		fmt.Fprintf(w, "    Benchmark:    %s\n", r.Benchmark)
		fmt.Fprintf(w, "    Category Avg: %s\n", r.CategoryAvg)
		fmt.Fprintf(w, "    Rank:         %s\n", r.CategoryRank)
	}
}
