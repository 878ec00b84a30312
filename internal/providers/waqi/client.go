// Package waqi fetches live air-quality readings from the World Air Quality
// Index geo feed. Readings are fetched per station with bounded concurrency;
// stations that fail after one retry are simply absent from the result, and
// callers substitute a sentinel for missing keys.
package waqi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

const (
	defaultBaseURL = "https://api.waqi.info"
	requestTimeout = 10 * time.Second
	maxConcurrent  = 10
	maxRetries     = 1
	retryDelay     = 500 * time.Millisecond
)

// Reading is one station's live air-quality observation.
type Reading struct {
	AQI         float64
	StationName string
	FetchedAt   time.Time
}

type feedResponse struct {
	Status string `json:"status"`
	Data   struct {
		AQI  json.Number `json:"aqi"`
		City struct {
			Name string `json:"name"`
		} `json:"city"`
	} `json:"data"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *slog.Logger
}

func NewClient(token, baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    baseURL,
		token:      token,
		logger:     logger.With("component", "waqi-client"),
	}
}

// FetchAll retrieves readings for every canonical station, keyed by station
// name. The mapping may be partial or empty: per-station failures are logged
// and skipped rather than failing the batch.
func (c *Client) FetchAll(ctx context.Context) (map[string]Reading, error) {
	if c.token == "" {
		return nil, fmt.Errorf("waqi token not configured")
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		readings = make(map[string]Reading)
		sem      = make(chan struct{}, maxConcurrent)
	)

	for name, coords := range StationCoordinates {
		wg.Add(1)
		go func(name string, lat, lng float64) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}

			reading, err := c.fetchStation(ctx, lat, lng)
			if err != nil {
				c.logger.Warn("failed to fetch station reading", "station", name, "error", err)
				return
			}
			mu.Lock()
			readings[name] = *reading
			mu.Unlock()
		}(name, coords[0], coords[1])
	}

	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.logger.Info("fetched live air-quality readings",
		"stations", len(StationCoordinates),
		"readings", len(readings),
	)
	return readings, nil
}

func (c *Client) fetchStation(ctx context.Context, lat, lng float64) (*Reading, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(retryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		reading, err := c.fetchOnce(ctx, lat, lng)
		if err == nil {
			return reading, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func (c *Client) fetchOnce(ctx context.Context, lat, lng float64) (*Reading, error) {
	url := fmt.Sprintf("%s/feed/geo:%f;%f/?token=%s", c.baseURL, lat, lng, c.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

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

	var feed feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if feed.Status != "ok" {
		return nil, fmt.Errorf("feed status %q", feed.Status)
	}

	// Stations without a numeric AQI report "-"; treat them as missing.
	aqi, err := feed.Data.AQI.Float64()
	if err != nil {
		return nil, fmt.Errorf("non-numeric aqi %q", feed.Data.AQI)
	}

	return &Reading{
		AQI:         aqi,
		StationName: feed.Data.City.Name,
		FetchedAt:   time.Now(),
	}, nil
}
