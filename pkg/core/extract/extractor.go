// Package extract turns a fund-provider page into a models.FundRecord.
//
// Every step degrades instead of failing: a missing heading, section, column
// or row only leaves the corresponding fields at models.NotAvailable.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"fund_performance/pkg/core/htmltable"
	"fund_performance/pkg/models"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

const (
	sectionPhrase = "compare performance"
	cagrColumn    = "3 Y"

	labelThisFund        = "this fund"
	labelBenchmark       = "benchmark"
	labelCategoryAverage = "category average"
	labelCategoryRank    = "category rank"
)

// sectionTags are the heading levels searched for the comparison block.
var sectionTags = []string{"h2", "h3"}

// PageSource downloads a page body.
type PageSource interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Extractor fetches fund pages and parses their performance comparison table.
type Extractor struct {
	source PageSource
	log    zerolog.Logger
}

// New creates an Extractor reading pages from source.
func New(source PageSource, log zerolog.Logger) *Extractor {
	return &Extractor{
		source: source,
		log:    log.With().Str("component", "extractor").Logger(),
	}
}

// Fetch downloads url and extracts its record. It never fails: a download
// error yields a record named models.ErrorFetchingPage.
func (e *Extractor) Fetch(ctx context.Context, url string) models.FundRecord {
	body, err := e.source.Fetch(ctx, url)
	if err != nil {
		e.log.Warn().Err(err).Str("url", url).Msg("fetch failed")
		return models.NewFundRecord(models.ErrorFetchingPage)
	}

	rec := e.Parse(bytes.NewReader(body))
	e.log.Debug().
		Str("url", url).
		Str("fund", rec.FundName).
		Str("cagr", rec.ThreeYearCAGR).
		Str("rank", rec.CategoryRank).
		Msg("extracted")
	return rec
}

// Parse extracts a record from an HTML document.
func (e *Extractor) Parse(r io.Reader) models.FundRecord {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		e.log.Warn().Err(err).Msg("unparseable page")
		return models.NewFundRecord(models.UnknownFund)
	}

	name := strings.TrimSpace(doc.Find("h1").First().Text())
	if name == "" {
		e.log.Debug().Msg("no primary heading")
		name = models.UnknownFund
	}
	rec := models.NewFundRecord(name)

	table, ok := htmltable.FindTable(doc, sectionPhrase, sectionTags...)
	if !ok {
		e.log.Debug().Str("fund", name).Msg("no compare performance section")
		return rec
	}

	col := table.ColumnIndex(cagrColumn)
	if col < 0 {
		e.log.Debug().Str("fund", name).Msg("no 3 Y column")
		return rec
	}

	fillFromTable(&rec, table, col)
	return rec
}

// fillFromTable copies the 3 Y column of the labelled rows into rec.
func fillFromTable(rec *models.FundRecord, table *htmltable.Table, col int) {
	benchmarkName := ""
	benchmarkCAGR := models.NotAvailable

	for _, row := range table.Rows {
		if row.Len() <= col {
			continue
		}
		value, _ := row.Cell(col)
		label := row.Label()

		switch {
		case label == labelThisFund:
			setIfPresent(&rec.ThreeYearCAGR, value)
		case strings.HasPrefix(label, labelBenchmark):
			first, _ := row.Cell(0)
			benchmarkName = benchmarkDisplayName(first)
			setIfPresent(&benchmarkCAGR, value)
		case label == labelCategoryAverage:
			setIfPresent(&rec.CategoryAvg, value)
		case label == labelCategoryRank:
			setIfPresent(&rec.CategoryRank, value)
		}
	}

	rec.Benchmark = fmt.Sprintf("%s (%s)", benchmarkName, benchmarkCAGR)
}

// benchmarkDisplayName strips a leading "Benchmark:" from the row label.
func benchmarkDisplayName(cell string) string {
	cell = strings.TrimSpace(cell)
	const prefix = "benchmark:"
	if len(cell) >= len(prefix) && strings.EqualFold(cell[:len(prefix)], prefix) {
		cell = cell[len(prefix):]
	}
	return strings.TrimSpace(cell)
}

func setIfPresent(dst *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*dst = v
	}
}
