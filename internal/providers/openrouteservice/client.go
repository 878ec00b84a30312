// Package openrouteservice is a client for the OpenRouteService directions
// API. Non-2xx responses surface as StatusError so callers can apply policy
// against the provider status code.
package openrouteservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.openrouteservice.org/v2/directions"
	requestTimeout = 15 * time.Second
)

// StatusError reports a non-2xx directions response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openrouteservice returned status %d: %s", e.Code, e.Body)
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

func NewClient(apiKey, baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		logger:     logger.With("component", "ors-client"),
	}
}

// Directions requests a route for the given travel profile. The request's
// avoidance options, when present, are sent verbatim.
func (c *Client) Directions(ctx context.Context, profile string, request *DirectionsRequest) (*DirectionsResponse, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to encode directions request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/geojson", c.baseURL, profile)

	avoidCount := 0
	if request.Options != nil {
		avoidCount = request.Options.AvoidPolygons.PolygonCount()
	}
	c.logger.Info("calling directions provider",
		"profile", profile,
		"start", request.Coordinates[0],
		"end", request.Coordinates[len(request.Coordinates)-1],
		"avoid_polygons", avoidCount,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build directions request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("directions request failed", "error", err)
		// A client-side timeout carries the same routing policy as an
		// upstream 504, so it is reported as one.
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return nil, &StatusError{Code: http.StatusGatewayTimeout, Body: "request timed out"}
		}
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 800))
		c.logger.Error("directions provider returned error",
			"status_code", resp.StatusCode,
			"response_body", string(raw),
		)
		return nil, &StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	var apiResp DirectionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode directions response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Info("directions request successful", "feature_count", len(apiResp.Features))
	return &apiResp, nil
}
