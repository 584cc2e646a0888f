package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	apiconfig "fund_performance/pkg/api/config"
	"fund_performance/pkg/api/portfolio"
	"fund_performance/pkg/core/config"
	"fund_performance/pkg/core/directory"
	"fund_performance/pkg/core/extract"
	"fund_performance/pkg/core/ingest"
	"fund_performance/pkg/core/logger"
	"fund_performance/pkg/core/pipeline"

	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	lg := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.SetGlobalLogger(lg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// The API still serves URL-based scoring without a directory.
	dir, err := directory.Load(cfg.DirectoryPath, cfg.DirectorySheet)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.DirectoryPath).Msg("fund directory not loaded")
		dir = directory.New(nil)
	} else {
		log.Info().Int("funds", dir.Len()).Str("path", cfg.DirectoryPath).Msg("fund directory loaded")
	}

	fetcher := ingest.NewPageFetcher(cfg.UserAgent, cfg.HTTPTimeout)
	extractor := extract.New(fetcher, lg)
	orchestrator := pipeline.NewOrchestrator(extractor, cfg.Concurrency, lg)

	mux := http.NewServeMux()
	portfolio.NewHandler(dir, orchestrator, extractor, cfg.MaxFunds, lg).Register(mux)
	mux.HandleFunc("/api/config", apiconfig.NewHandler(cfg, dir.Len()).HandleConfig)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().Str("addr", cfg.ListenAddr).Msg("API server starting")
	log.Info().Msg("  - GET  /api/funds")
	log.Info().Msg("  - POST /api/portfolio/score")
	log.Info().Msg("  - POST /api/fund/extract")
	log.Info().Msg("  - GET  /api/config")

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("server failed")
		os.Exit(1)
	}
}
