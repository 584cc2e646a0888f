package main

import (
	"bytes"
	"testing"

	"fund_performance/pkg/core/score"
	"fund_performance/pkg/models"

	"github.com/stretchr/testify/assert"
)

func TestPrintReport(t *testing.T) {
	a := models.NewFundRecord("Alpha Flexi Cap Fund")
	a.ThreeYearCAGR = "18.5%"
	a.Benchmark = "Nifty 50 (15.2%)"
	a.CategoryRank = "6/11"
	b := models.NewFundRecord(models.ErrorFetchingPage)

	report := &models.PortfolioReport{Funds: []models.FundResult{{Record: a}, {Record: b}}}
	report.Score = score.Score(report.Records())

	var buf bytes.Buffer
	printReport(&buf, report)
	out := buf.String()

	assert.Contains(t, out, "Relative Category Rank: 😐 Average (Meh!) [54.55%]")
	assert.Contains(t, out, "Benchmark Comparison: ✅ Beating the Benchmark")
	assert.Contains(t, out, "(+3.30% vs benchmark) - Decent outperformance, can do better.")
	assert.Contains(t, out, "Error fetching page")
}

func TestPrintReport_NotAvailable(t *testing.T) {
	report := &models.PortfolioReport{Funds: []models.FundResult{{Record: models.NewFundRecord("X")}}}
	report.Score = score.Score(report.Records())

	var buf bytes.Buffer
	printReport(&buf, report)

	assert.Contains(t, buf.String(), "Relative Category Rank: ❓ Unknown\n")
	assert.Contains(t, buf.String(), "Benchmark Comparison: Not Available\n")
}
