// Package finmap provides a client for the finmap.org market datasets
package finmap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode"

	"golang.org/x/time/rate"

	"github.com/finmap-org/finmap-mcp/internal/common"
	"github.com/finmap-org/finmap-mcp/internal/models"
)

const (
	DefaultBaseURL   = "https://raw.githubusercontent.com/finmap-org"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 10 // requests per second
)

// Client implements the MarketDataClient interface over the published
// finmap.org dataset repositories.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new dataset client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents an unexpected dataset host response
type APIError struct {
	StatusCode int
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("finmap dataset error: status %d (endpoint: %s)", e.StatusCode, e.Endpoint)
}

// get performs a rate-limited GET request and returns the response body.
// A 404 is reported through notFound so callers can map it onto their
// domain error.
func (c *Client) get(ctx context.Context, path string, notFound error) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.Debug().Str("path", path).Msg("Dataset request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, notFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Endpoint: path}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return body, nil
}

// GetSnapshot retrieves the raw snapshot envelope for an exchange on a
// canonical YYYY-MM-DD date.
func (c *Client) GetSnapshot(ctx context.Context, exchange models.Exchange, date string) (*models.SnapshotEnvelope, error) {
	datePath := strings.ReplaceAll(date, "-", "/")
	path := fmt.Sprintf("/data-%s/refs/heads/main/marketdata/%s/%s.json", exchange.Country(), datePath, exchange)

	notFound := fmt.Errorf("%w: try another date. The date must be on or after %s for %s",
		models.ErrSnapshotNotFound, exchange.Info().AvailableSince, exchange)

	body, err := c.get(ctx, path, notFound)
	if err != nil {
		return nil, err
	}

	var envelope models.SnapshotEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot for %s on %s: %w", exchange, date, err)
	}

	return &envelope, nil
}

// GetCompanyProfile retrieves the profile document for a ticker on a US
// exchange. Profiles are partitioned by the uppercased first letter of the
// ticker.
func (c *Client) GetCompanyProfile(ctx context.Context, exchange models.Exchange, ticker string) (map[string]any, error) {
	if ticker == "" {
		return nil, fmt.Errorf("%w: empty ticker", models.ErrProfileNotFound)
	}

	first := []rune(ticker)[0]
	path := fmt.Sprintf("/data-us/refs/heads/main/securities/%s/%c/%s.json",
		exchange, unicode.ToUpper(first), ticker)

	notFound := fmt.Errorf("%w: security %s not found on %s", models.ErrProfileNotFound, ticker, exchange)

	body, err := c.get(ctx, path, notFound)
	if err != nil {
		return nil, err
	}

	var profile map[string]any
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile for %s on %s: %w", ticker, exchange, err)
	}

	return profile, nil
}
