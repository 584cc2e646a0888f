package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"fund_performance/pkg/core/directory"
	"fund_performance/pkg/core/extract"
	"fund_performance/pkg/core/ingest"
	"fund_performance/pkg/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockFetcher struct {
	mu       sync.Mutex
	records  map[string]models.FundRecord
	calls    []string
	delay    time.Duration
	inFlight int32
	peak     int32
}

func (m *MockFetcher) Fetch(ctx context.Context, url string) models.FundRecord {
	n := atomic.AddInt32(&m.inFlight, 1)
	defer atomic.AddInt32(&m.inFlight, -1)
	for {
		p := atomic.LoadInt32(&m.peak)
		if n <= p || atomic.CompareAndSwapInt32(&m.peak, p, n) {
			break
		}
	}
	if m.delay > 0 {
		time.Sleep(m.delay)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, url)
	if r, ok := m.records[url]; ok {
		return r
	}
	return models.NewFundRecord(models.ErrorFetchingPage)
}

func fundRecord(name, cagr, bench, rank string) models.FundRecord {
	r := models.NewFundRecord(name)
	r.ThreeYearCAGR = cagr
	r.Benchmark = bench
	r.CategoryRank = rank
	return r
}

func TestOrchestrator_RunKeepsOrderAndScores(t *testing.T) {
	fetcher := &MockFetcher{records: map[string]models.FundRecord{
		"u1": fundRecord("Fund One", "18.5%", "Nifty 50 (15.2%)", "5/12"),
		"u3": fundRecord("Fund Three", "10.0%", "Nifty 100 (9.5%)", "8/23"),
	}}
	o := NewOrchestrator(fetcher, 1, zerolog.Nop())

	report := o.Run(context.Background(), []directory.Entry{
		{Name: "One", URL: "u1"},
		{Name: "Two", URL: "u2"},
		{Name: "Three", URL: "u3"},
	})

	require.Len(t, report.Funds, 3)
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, []string{"u1", "u2", "u3"}, fetcher.calls)
	assert.Equal(t, "Fund One", report.Funds[0].Record.FundName)
	assert.True(t, report.Funds[1].Record.FetchFailed())
	assert.Equal(t, "Three", report.Funds[2].Name)

	require.NotNil(t, report.Score.RankPercentile)
	assert.InDelta(t, 37.143, *report.Score.RankPercentile, 0.001)
	assert.Equal(t, "Above Average", report.Score.RankLabel)
	require.NotNil(t, report.Score.Outperformance)
	assert.InDelta(t, 1.9, *report.Score.Outperformance, 1e-9)
	assert.Equal(t, "Beating the Benchmark", report.Score.OutperformanceLabel)
}

func TestOrchestrator_BoundedConcurrency(t *testing.T) {
	fetcher := &MockFetcher{records: map[string]models.FundRecord{}, delay: 20 * time.Millisecond}
	var entries []directory.Entry
	for i := 0; i < 8; i++ {
		u := fmt.Sprintf("u%d", i)
		fetcher.records[u] = models.NewFundRecord(fmt.Sprintf("Fund %d", i))
		entries = append(entries, directory.Entry{Name: u, URL: u})
	}

	results := NewOrchestrator(fetcher, 3, zerolog.Nop()).FetchAll(context.Background(), entries)

	require.Len(t, results, 8)
	for i, r := range results {
		assert.Equal(t, fmt.Sprintf("Fund %d", i), r.Record.FundName)
	}
	assert.LessOrEqual(t, atomic.LoadInt32(&fetcher.peak), int32(3))
}

func TestOrchestrator_DefaultsToSequential(t *testing.T) {
	fetcher := &MockFetcher{records: map[string]models.FundRecord{}, delay: 5 * time.Millisecond}
	entries := []directory.Entry{{URL: "a"}, {URL: "b"}, {URL: "c"}}

	NewOrchestrator(fetcher, 0, zerolog.Nop()).FetchAll(context.Background(), entries)
	assert.Equal(t, int32(1), atomic.LoadInt32(&fetcher.peak))
}

type ctxFetcher struct{}

func (ctxFetcher) Fetch(ctx context.Context, url string) models.FundRecord {
	if ctx.Err() != nil {
		return models.NewFundRecord(models.ErrorFetchingPage)
	}
	return models.NewFundRecord("Fund " + url)
}

func TestOrchestrator_CancelledContextStillYieldsEveryRecord(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	entries := []directory.Entry{{Name: "A", URL: "a"}, {Name: "B", URL: "b"}, {Name: "C", URL: "c"}}
	results := NewOrchestrator(ctxFetcher{}, 2, zerolog.Nop()).FetchAll(ctx, entries)

	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, entries[i].Name, r.Name)
		assert.True(t, r.Record.FetchFailed())
	}

	live := NewOrchestrator(ctxFetcher{}, 2, zerolog.Nop()).FetchAll(context.Background(), entries)
	assert.Equal(t, "Fund b", live[1].Record.FundName)
}

func TestOrchestrator_EmptySelection(t *testing.T) {
	report := NewOrchestrator(&MockFetcher{}, 2, zerolog.Nop()).Run(context.Background(), nil)
	assert.Empty(t, report.Funds)
	assert.Equal(t, "Unknown", report.Score.RankLabel)
	assert.Equal(t, "Not Available", report.Score.OutperformanceLabel)
}

func TestOrchestrator_WithLiveExtractor(t *testing.T) {
	page := `<html><body><h1>Live Fund</h1>
		<h2>Compare performance</h2>
		<table>
			<tr><th></th><th>3 Y</th></tr>
			<tr><td>This Fund</td><td>22.00%</td></tr>
			<tr><td>Benchmark: Nifty Smallcap 250</td><td>15.00%</td></tr>
			<tr><td>Category Rank</td><td>1/25</td></tr>
		</table></body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/broken" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(page))
	}))
	defer srv.Close()

	ex := extract.New(ingest.NewPageFetcher("", time.Second), zerolog.Nop())
	report := NewOrchestrator(ex, 2, zerolog.Nop()).Run(context.Background(), []directory.Entry{
		{Name: "Live", URL: srv.URL + "/fund"},
		{Name: "Broken", URL: srv.URL + "/broken"},
	})

	require.Len(t, report.Funds, 2)
	assert.Equal(t, "Live Fund", report.Funds[0].Record.FundName)
	assert.Equal(t, "Nifty Smallcap 250 (15.00%)", report.Funds[0].Record.Benchmark)
	assert.Equal(t, models.ErrorFetchingPage, report.Funds[1].Record.FundName)

	assert.Equal(t, "Champion Portfolio", report.Score.RankLabel)
	assert.Equal(t, "Crushing It", report.Score.OutperformanceLabel)
}
