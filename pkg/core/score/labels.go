package score

// RankLabel classifies a pooled category-rank percentile.
type RankLabel string

const (
	RankUnknown        RankLabel = "Unknown"
	RankChampion       RankLabel = "Champion Portfolio"
	RankTopQuartile    RankLabel = "Top Quartile"
	RankAboveAverage   RankLabel = "Above Average"
	RankAverage        RankLabel = "Average"
	RankBelowAverage   RankLabel = "Below Average"
	RankBottomQuartile RankLabel = "Bottom Quartile"
)

// Emoji is the badge shown next to the label.
func (l RankLabel) Emoji() string {
	switch l {
	case RankChampion:
		return "🏆"
	case RankTopQuartile:
		return "⭐"
	case RankAboveAverage:
		return "👍"
	case RankAverage:
		return "😐"
	case RankBelowAverage:
		return "😞"
	case RankBottomQuartile:
		return "❌"
	default:
		return "❓"
	}
}

// Hint is the short advice printed after the label, if any.
func (l RankLabel) Hint() string {
	switch l {
	case RankAboveAverage:
		return "Can do better"
	case RankAverage:
		return "Meh!"
	case RankBelowAverage:
		return "Not Good, Take Action"
	case RankBottomQuartile:
		return "The Worst Performer!"
	default:
		return ""
	}
}

// OutperformanceLabel classifies the mean gap between fund and benchmark CAGR.
type OutperformanceLabel string

const (
	OutperformanceNotAvailable OutperformanceLabel = "Not Available"
	OutperformanceCrushing     OutperformanceLabel = "Crushing It"
	OutperformanceBeating      OutperformanceLabel = "Beating the Benchmark"
	OutperformanceNeckAndNeck  OutperformanceLabel = "Neck and Neck"
	OutperformanceDragging     OutperformanceLabel = "Dragging Behind"
)

// Description is the fixed sentence attached to each label.
func (l OutperformanceLabel) Description() string {
	switch l {
	case OutperformanceCrushing:
		return "Champion Portfolio! Top Quartile!"
	case OutperformanceBeating:
		return "Decent outperformance, can do better."
	case OutperformanceNeckAndNeck:
		return "Performing in line with benchmarks. Nothing exciting, can do much better."
	case OutperformanceDragging:
		return "Lagging noticeably, needs a relook."
	default:
		return ""
	}
}

// Emoji is the badge shown next to the label.
func (l OutperformanceLabel) Emoji() string {
	switch l {
	case OutperformanceCrushing:
		return "🚀"
	case OutperformanceBeating:
		return "✅"
	case OutperformanceNeckAndNeck:
		return "😐"
	case OutperformanceDragging:
		return "📉"
	default:
		return "⚠️"
	}
}
