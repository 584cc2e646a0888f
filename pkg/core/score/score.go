package score

import "fund_performance/pkg/models"

// Score computes both portfolio verdicts for records.
func Score(records []models.FundRecord) models.PortfolioScore {
	ranks := make([]string, 0, len(records))
	for _, r := range records {
		ranks = append(ranks, r.CategoryRank)
	}

	pct, rankLabel := ScoreRank(ranks)
	diff, outLabel, desc := ScoreOutperformance(records)

	return models.PortfolioScore{
		RankPercentile:            pct,
		RankLabel:                 string(rankLabel),
		RankedFunds:               countRanked(ranks),
		Outperformance:            diff,
		OutperformanceLabel:       string(outLabel),
		OutperformanceDescription: desc,
		ComparedFunds:             countCompared(records),
	}
}
