package score

import (
	"strconv"
	"strings"

	"fund_performance/pkg/models"
)

const (
	crushingMin    = 5.0
	beatingMin     = 1.5
	neckAndNeckMin = -1.0
)

// parsePercent reads "18.50%" style text.
func parsePercent(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "%", ""))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// benchmarkCAGR returns the text inside the trailing parentheses of
// "{name} ({cagr})".
func benchmarkCAGR(benchmark string) string {
	i := strings.LastIndex(benchmark, "(")
	if i < 0 {
		return benchmark
	}
	return strings.ReplaceAll(benchmark[i+1:], ")", "")
}

// excess returns fund minus benchmark CAGR in percentage points. Records with
// an unparseable or placeholder-zero value on either side are unusable.
func excess(r models.FundRecord) (float64, bool) {
	fund, ok := parsePercent(r.ThreeYearCAGR)
	if !ok {
		return 0, false
	}
	bench, ok := parsePercent(benchmarkCAGR(r.Benchmark))
	if !ok {
		return 0, false
	}
	if fund == 0.0 || bench == 0.0 {
		return 0, false
	}
	return fund - bench, true
}

// ScoreOutperformance averages fund-minus-benchmark CAGR over usable records
// and labels the result. With no usable record it returns nil,
// OutperformanceNotAvailable and an empty description.
func ScoreOutperformance(records []models.FundRecord) (*float64, OutperformanceLabel, string) {
	sum := 0.0
	n := 0
	for _, r := range records {
		if d, ok := excess(r); ok {
			sum += d
			n++
		}
	}
	if n == 0 {
		return nil, OutperformanceNotAvailable, ""
	}

	avg := sum / float64(n)
	label := outperformanceLabelFor(avg)
	return &avg, label, label.Description()
}

func outperformanceLabelFor(avg float64) OutperformanceLabel {
	switch {
	case avg > crushingMin:
		return OutperformanceCrushing
	case avg > beatingMin:
		return OutperformanceBeating
	case avg > neckAndNeckMin:
		return OutperformanceNeckAndNeck
	default:
		return OutperformanceDragging
	}
}

func countCompared(records []models.FundRecord) int {
	n := 0
	for _, r := range records {
		if _, ok := excess(r); ok {
			n++
		}
	}
	return n
}
