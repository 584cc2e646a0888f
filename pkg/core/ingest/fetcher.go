// Package ingest downloads fund-provider pages.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// UserAgent is sent by default; provider sites reject Go's default client identifier.
const UserAgent = "Mozilla/5.0"

// MaxPageBytes is the default cap on a page body.
const MaxPageBytes = 8 << 20

// ErrPageTooLarge is returned when a body exceeds the fetcher's size cap.
var ErrPageTooLarge = errors.New("page exceeds size limit")

// StatusError is returned for a non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.URL, e.StatusCode)
}

// PageFetcher issues one GET per page with a browser-like identity.
type PageFetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
}

// NewPageFetcher creates a fetcher. A zero timeout keeps the 30s default,
// an empty userAgent keeps UserAgent.
func NewPageFetcher(userAgent string, timeout time.Duration) *PageFetcher {
	if userAgent == "" {
		userAgent = UserAgent
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &PageFetcher{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
		maxBytes:   MaxPageBytes,
	}
}

// WithClient swaps the underlying HTTP client, mainly for tests.
func (f *PageFetcher) WithClient(c *http.Client) *PageFetcher {
	f.httpClient = c
	return f
}

// WithMaxBytes changes the body size cap. Non-positive values keep the current cap.
func (f *PageFetcher) WithMaxBytes(n int64) *PageFetcher {
	if n > 0 {
		f.maxBytes = n
	}
	return f
}

// Fetch downloads url and returns the body. A body larger than the size cap
// fails with ErrPageTooLarge instead of being truncated.
func (f *PageFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) > f.maxBytes {
		return nil, fmt.Errorf("%s: %w (%d bytes)", url, ErrPageTooLarge, f.maxBytes)
	}
	return body, nil
}
