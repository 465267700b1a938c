package standings

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shimbeld/bsdl/internal/metrics"
)

const upstreamTimeout = 12 * time.Second

// APIClient talks to the spreadsheet web app over plain HTTPS. One attempt
// per call, no retry, no caching.
type APIClient struct {
	httpClient *http.Client
	metrics    metrics.Metrics
	BaseURL    string
	UserAgent  string
}

// Ensure APIClient implements the Client interface.
var _ Client = (*APIClient)(nil)

// NewClient creates a standings client for the given upstream URL.
func NewClient(url, userAgent string, metricsSvc metrics.Metrics) *APIClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: upstreamTimeout},
		metrics:    metricsSvc,
		BaseURL:    url,
		UserAgent:  userAgent,
	}
}

// FetchRaw performs one GET against the upstream and returns the body
// verbatim when it is a 200 carrying JSON. Everything else is an
// *UpstreamError suitable for a 502 response.
func (c *APIClient) FetchRaw(ctx context.Context) ([]byte, error) {
	c.metrics.IncStandingsFetches()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL, nil)
	if err != nil {
		c.metrics.IncStandingsFetchFailures()
		return nil, &UpstreamError{Status: 0, Message: "Failed to fetch Apps Script"}
	}
	req.Header.Set("User-Agent", c.UserAgent)

	log.Debug("Fetching standings from upstream", "url", c.BaseURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("Standings fetch failed", "error", err)
		c.metrics.IncStandingsFetchFailures()
		return nil, &UpstreamError{Status: 0, Message: "Failed to fetch Apps Script"}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil || resp.StatusCode != http.StatusOK || len(body) == 0 {
		log.Error("Upstream returned an unusable response", "status", resp.StatusCode, "read_error", err)
		c.metrics.IncStandingsFetchFailures()
		return nil, &UpstreamError{Status: resp.StatusCode, Message: "Failed to fetch Apps Script"}
	}

	// A login or error page comes back as HTML; only proper JSON is relayed.
	if body[0] != '{' && body[0] != '[' {
		log.Error("Upstream returned non-JSON body", "status", resp.StatusCode)
		c.metrics.IncStandingsFetchFailures()
		return nil, &UpstreamError{Status: resp.StatusCode, Message: "Apps Script returned non-JSON (HTML/login?)"}
	}

	return body, nil
}

// FetchTable fetches the standings and normalizes the 2D grid into typed
// rows.
func (c *APIClient) FetchTable(ctx context.Context) ([]TeamStanding, error) {
	raw, err := c.FetchRaw(ctx)
	if err != nil {
		return nil, err
	}
	return ParseTable(raw)
}
