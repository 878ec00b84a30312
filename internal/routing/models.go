package routing

import (
	"sentry-safety/internal/providers/openrouteservice"
	"sentry-safety/internal/types"
)

// Endpoint is a route endpoint before resolution: either explicit
// coordinates or a free-form location name to geocode.
type Endpoint struct {
	Location string
	Coords   *types.Coords
}

// RouteRequest is a validated safe-route request.
type RouteRequest struct {
	Start           Endpoint
	End             Endpoint
	Profile         string
	AvoidRiskLevels []string
}

// RouteMetadata is the pipeline's own metadata attached to a provider route.
type RouteMetadata struct {
	Profile           string   `json:"profile"`
	AvoidRiskLevels   []string `json:"avoid_risk_levels"`
	AvoidPolygonCount int      `json:"avoid_polygons_count"`
	FallbackUsed      bool     `json:"fallback_used"`
	FallbackReason    string   `json:"fallback_reason,omitempty"`
}

// RouteResult carries the provider's route geometry plus pipeline metadata.
type RouteResult struct {
	Route    *openrouteservice.DirectionsResponse `json:"route"`
	Metadata RouteMetadata                        `json:"metadata"`
}

// GeocodedLocation is a resolved endpoint with its display name.
type GeocodedLocation struct {
	Coords      types.Coords `json:"coords"`
	DisplayName string       `json:"display_name"`
	Location    string       `json:"location"`
}
