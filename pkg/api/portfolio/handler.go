package portfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"fund_performance/pkg/core/directory"
	"fund_performance/pkg/core/pipeline"
	"fund_performance/pkg/models"

	"github.com/rs/zerolog"
)

// Runner is the part of the pipeline the handlers need.
type Runner interface {
	Run(ctx context.Context, entries []directory.Entry) *models.PortfolioReport
}

type ScoreRequest struct {
	Funds []string `json:"funds"`
	URLs  []string `json:"urls"`
}

type ExtractRequest struct {
	URL string `json:"url"`
}

type FundsResponse struct {
	Funds []string `json:"funds"`
}

// Handler holds dependencies for portfolio endpoints
type Handler struct {
	Directory *directory.Directory
	Runner    Runner
	Fetcher   pipeline.RecordFetcher
	MaxFunds  int
	log       zerolog.Logger
}

// NewHandler creates a new portfolio handler
func NewHandler(dir *directory.Directory, runner Runner, fetcher pipeline.RecordFetcher, maxFunds int, log zerolog.Logger) *Handler {
	if dir == nil {
		dir = directory.New(nil)
	}
	return &Handler{
		Directory: dir,
		Runner:    runner,
		Fetcher:   fetcher,
		MaxFunds:  maxFunds,
		log:       log.With().Str("component", "api").Logger(),
	}
}

// Register mounts the handlers on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/funds", h.HandleFunds)
	mux.HandleFunc("/api/portfolio/score", h.HandleScore)
	mux.HandleFunc("/api/fund/extract", h.HandleExtract)
}

func setCORS(w http.ResponseWriter, methods string) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", methods)
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// HandleFunds lists the fund names available for selection.
func (h *Handler) HandleFunds(w http.ResponseWriter, r *http.Request) {
	setCORS(w, "GET, OPTIONS")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, FundsResponse{Funds: h.Directory.Names()})
}

// HandleScore fetches the selected funds and returns the portfolio report.
func (h *Handler) HandleScore(w http.ResponseWriter, r *http.Request) {
	setCORS(w, "POST, OPTIONS")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	entries, err := h.selection(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report := h.Runner.Run(r.Context(), entries)
	writeJSON(w, report)
}

// selection turns a request into the ordered, de-duplicated list of funds to score.
func (h *Handler) selection(req ScoreRequest) ([]directory.Entry, error) {
	var entries []directory.Entry
	names := directory.Unique(req.Funds)
	if len(names) > 0 {
		resolved, err := h.Directory.Resolve(names)
		if err != nil {
			return nil, err
		}
		entries = append(entries, resolved...)
	}
	for _, u := range directory.Unique(req.URLs) {
		if err := checkURL(u); err != nil {
			return nil, err
		}
		entries = append(entries, directory.Entry{Name: u, URL: u})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no funds selected")
	}
	if h.MaxFunds > 0 && len(entries) > h.MaxFunds {
		return nil, fmt.Errorf("too many funds: %d selected, at most %d allowed", len(entries), h.MaxFunds)
	}
	return entries, nil
}

// HandleExtract returns the record for a single page.
func (h *Handler) HandleExtract(w http.ResponseWriter, r *http.Request) {
	setCORS(w, "POST, OPTIONS")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	target := strings.TrimSpace(req.URL)
	if target == "" {
		http.Error(w, "url is required", http.StatusBadRequest)
		return
	}
	if err := checkURL(target); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.log.Debug().Str("url", target).Msg("extract requested")
	writeJSON(w, h.Fetcher.Fetch(r.Context(), target))
}

// checkURL accepts only absolute http and https URLs with a host.
func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported url scheme %q: only http and https are allowed", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", raw)
	}
	return nil
}
