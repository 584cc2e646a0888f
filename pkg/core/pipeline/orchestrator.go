// Package pipeline runs one scoring pass: resolve -> extract -> score.
package pipeline

import (
	"context"
	"time"

	"fund_performance/pkg/core/directory"
	"fund_performance/pkg/core/score"
	"fund_performance/pkg/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// RecordFetcher extracts one fund's record. Implementations never fail;
// problems show up as degraded fields.
type RecordFetcher interface {
	Fetch(ctx context.Context, url string) models.FundRecord
}

// Orchestrator fetches the selected funds and scores them.
type Orchestrator struct {
	fetcher     RecordFetcher
	concurrency int
	log         zerolog.Logger
}

// NewOrchestrator creates an orchestrator. concurrency < 1 means sequential.
func NewOrchestrator(fetcher RecordFetcher, concurrency int, log zerolog.Logger) *Orchestrator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Orchestrator{
		fetcher:     fetcher,
		concurrency: concurrency,
		log:         log.With().Str("component", "pipeline").Logger(),
	}
}

// FetchAll extracts every entry, returning results in input order.
// A failing fund never stops the others.
func (o *Orchestrator) FetchAll(ctx context.Context, entries []directory.Entry) []models.FundResult {
	results := make([]models.FundResult, len(entries))

	// errgroup is used only for its SetLimit bound. Workers report failure
	// through the record, so Wait always returns nil.
	var g errgroup.Group
	g.SetLimit(o.concurrency)
	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			results[i] = models.FundResult{
				Name:   e.Name,
				URL:    e.URL,
				Record: o.fetcher.Fetch(ctx, e.URL),
			}
			return nil
		})
	}
	g.Wait()

	return results
}

// Run performs one scoring pass over entries.
func (o *Orchestrator) Run(ctx context.Context, entries []directory.Entry) *models.PortfolioReport {
	id := uuid.NewString()
	start := time.Now()
	o.log.Info().Str("run_id", id).Int("funds", len(entries)).Msg("scoring pass started")

	report := &models.PortfolioReport{
		ID:    id,
		Funds: o.FetchAll(ctx, entries),
	}
	report.Score = score.Score(report.Records())

	failed := 0
	for _, f := range report.Funds {
		if f.Record.FetchFailed() {
			failed++
		}
	}
	o.log.Info().
		Str("run_id", id).
		Int("failed", failed).
		Str("rank_label", report.Score.RankLabel).
		Str("outperformance_label", report.Score.OutperformanceLabel).
		Dur("elapsed", time.Since(start)).
		Msg("scoring pass finished")
	return report
}
