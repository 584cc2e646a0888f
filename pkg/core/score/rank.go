// Package score aggregates fund records into a portfolio verdict.
// All functions are pure: no state survives between calls.
package score

import (
	"strconv"
	"strings"

	"fund_performance/pkg/models"
)

// Percentile thresholds, applied to the pooled rank/total ratio.
const (
	topQuartileMax  = 0.15
	aboveAverageMax = 0.45
	averageMax      = 0.55
	belowAverageMax = 0.75
)

// rankEntry is a parsed "<rank>/<total>" pair.
type rankEntry struct {
	rank  int
	total int
}

// parseRank parses "<rank>/<total>". "N/A", malformed text and any entry
// containing the character '0' anywhere are rejected, so "10/45" and "3/105"
// are dropped along with "0/15".
func parseRank(s string) (rankEntry, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == models.NotAvailable || strings.Contains(s, "0") {
		return rankEntry{}, false
	}
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return rankEntry{}, false
	}
	rank, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return rankEntry{}, false
	}
	total, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return rankEntry{}, false
	}
	return rankEntry{rank: rank, total: total}, true
}

// ScoreRank pools category ranks into one percentile (0-100) and labels it.
// The percentile is sum(ranks)/sum(totals), not the mean of per-fund ratios.
// It returns nil and RankUnknown when no entry is usable, and 0 with
// RankChampion when every usable entry ranks first.
func ScoreRank(ranks []string) (*float64, RankLabel) {
	var entries []rankEntry
	for _, r := range ranks {
		if e, ok := parseRank(r); ok {
			entries = append(entries, e)
		}
	}
	if len(entries) == 0 {
		return nil, RankUnknown
	}

	champion := true
	sumRank, sumTotal := 0, 0
	for _, e := range entries {
		if e.rank != 1 {
			champion = false
		}
		sumRank += e.rank
		sumTotal += e.total
	}
	if champion {
		zero := 0.0
		return &zero, RankChampion
	}
	if sumTotal <= 0 {
		return nil, RankUnknown
	}

	ratio := float64(sumRank) / float64(sumTotal)
	pct := ratio * 100
	return &pct, rankLabelFor(ratio)
}

func rankLabelFor(ratio float64) RankLabel {
	switch {
	case ratio <= topQuartileMax:
		return RankTopQuartile
	case ratio <= aboveAverageMax:
		return RankAboveAverage
	case ratio <= averageMax:
		return RankAverage
	case ratio <= belowAverageMax:
		return RankBelowAverage
	default:
		return RankBottomQuartile
	}
}

// countRanked reports how many entries ScoreRank would use.
func countRanked(ranks []string) int {
	n := 0
	for _, r := range ranks {
		if _, ok := parseRank(r); ok {
			n++
		}
	}
	return n
}
