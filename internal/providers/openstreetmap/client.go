package openstreetmap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Search/
// Sample request: https://nominatim.openstreetmap.org/search?q=connaught+place&format=json&limit=1
const (
	baseURL        = "https://nominatim.openstreetmap.org/search"
	userAgent      = "sentry-safety/1.0"
	requestTimeout = 10 * time.Second
)

type Client struct {
	httpClient   *http.Client
	baseURL      string
	countryCodes string
	logger       *slog.Logger
}

func NewClient(countryCodes string, logger *slog.Logger) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: requestTimeout},
		baseURL:      baseURL,
		countryCodes: countryCodes,
		logger:       logger.With("component", "osm-client"),
	}
}

// Search geocodes a free-form location query and returns the best match, or
// nil when Nominatim finds nothing.
func (c *Client) Search(ctx context.Context, query string) (*SearchAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "1")
	if c.countryCodes != "" {
		q.Set("countrycodes", c.countryCodes)
	}
	u.RawQuery = q.Encode()

	c.logger.Debug("geocoding location", "query", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var results []SearchAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(results) == 0 {
		c.logger.Warn("no geocoding results", "query", query)
		return nil, nil
	}

	return &results[0], nil
}
