package models

const (
	// NotAvailable is the default for every performance field that could not be extracted.
	NotAvailable = "N/A"

	// ErrorFetchingPage replaces the fund name when the page could not be downloaded.
	ErrorFetchingPage = "Error fetching page"

	// UnknownFund is used when the page has no primary heading.
	UnknownFund = "Unknown Fund"
)

// FundRecord is one fund's extracted performance snapshot.
// Each performance field degrades to NotAvailable on its own.
type FundRecord struct {
	FundName      string `json:"fund_name"`
	ThreeYearCAGR string `json:"3y_cagr"`
	Benchmark     string `json:"benchmark"` // "{name} ({cagr})"
	CategoryAvg   string `json:"category_avg"`
	CategoryRank  string `json:"category_rank"` // "<rank>/<total>" or fallback text
}

// NewFundRecord returns a record carrying name with all performance fields set to NotAvailable.
func NewFundRecord(name string) FundRecord {
	return FundRecord{
		FundName:      name,
		ThreeYearCAGR: NotAvailable,
		Benchmark:     NotAvailable,
		CategoryAvg:   NotAvailable,
		CategoryRank:  NotAvailable,
	}
}

// FetchFailed reports whether the record came from a failed download.
func (r FundRecord) FetchFailed() bool {
	return r.FundName == ErrorFetchingPage
}

// PortfolioScore is derived from an ordered list of FundRecord and never stored.
type PortfolioScore struct {
	// RankPercentile is 0-100, nil when no fund had a usable rank.
	RankPercentile *float64 `json:"rank_percentile"`
	RankLabel      string   `json:"rank_label"`
	RankedFunds    int      `json:"ranked_funds"`

	// Outperformance is the mean fund-minus-benchmark CAGR in percentage points.
	Outperformance            *float64 `json:"outperformance"`
	OutperformanceLabel       string   `json:"outperformance_label"`
	OutperformanceDescription string   `json:"outperformance_description"`
	ComparedFunds             int      `json:"compared_funds"`
}

// FundResult pairs a selected fund with what was extracted for it.
type FundResult struct {
	Name   string     `json:"name"`
	URL    string     `json:"url"`
	Record FundRecord `json:"record"`
}

// PortfolioReport is the outcome of one scoring pass.
type PortfolioReport struct {
	ID    string         `json:"id"`
	Funds []FundResult   `json:"funds"`
	Score PortfolioScore `json:"score"`
}

// Records returns the fund records in selection order.
func (r *PortfolioReport) Records() []FundRecord {
	out := make([]FundRecord, 0, len(r.Funds))
	for _, f := range r.Funds {
		out = append(out, f.Record)
	}
	return out
}
