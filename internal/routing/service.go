// Package routing drives safe-route requests: endpoint resolution, avoidance
// geometry construction, the directions call, and the avoidance-removal
// fallback policy.
package routing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"sentry-safety/internal/faults"
	"sentry-safety/internal/providers/openrouteservice"
	"sentry-safety/internal/providers/openstreetmap"
	"sentry-safety/internal/safety"
	"sentry-safety/internal/types"
)

const fallbackReason = "avoidance zones caused failure"

// provider statuses that qualify for the avoidance-removal retry
var fallbackStatuses = map[int]bool{
	http.StatusBadRequest:            true,
	http.StatusNotFound:              true,
	http.StatusRequestEntityTooLarge: true,
	http.StatusGatewayTimeout:        true,
}

// GeocodeProvider resolves a free-form location to coordinates. A nil result
// with nil error means no match.
type GeocodeProvider interface {
	Search(ctx context.Context, query string) (*openstreetmap.SearchAPIResponse, error)
}

// DirectionsProvider issues route requests to the external directions
// service.
type DirectionsProvider interface {
	Directions(ctx context.Context, profile string, request *openrouteservice.DirectionsRequest) (*openrouteservice.DirectionsResponse, error)
}

// Service computes risk-aware routes.
type Service interface {
	ComputeSafeRoute(ctx context.Context, req RouteRequest) (*RouteResult, error)
	// Geocode resolves a location name for the standalone geocoding
	// endpoint.
	Geocode(ctx context.Context, location string) (*GeocodedLocation, error)
}

type routingService struct {
	safetyService safety.Service
	geocoder      GeocodeProvider
	directions    DirectionsProvider
	avoidLimit    int
	logger        *slog.Logger
}

func NewService(
	safetyService safety.Service,
	geocoder GeocodeProvider,
	directions DirectionsProvider,
	avoidLimit int,
	logger *slog.Logger,
) Service {
	if avoidLimit <= 0 {
		avoidLimit = DefaultAvoidLimit
	}
	return &routingService{
		safetyService: safetyService,
		geocoder:      geocoder,
		directions:    directions,
		avoidLimit:    avoidLimit,
		logger:        logger.With("component", "routing-service"),
	}
}

func (s *routingService) ComputeSafeRoute(ctx context.Context, req RouteRequest) (*RouteResult, error) {
	if strings.TrimSpace(req.Profile) == "" {
		return nil, faults.NewInvalidInput("profile", "profile is required")
	}
	avoidLevels := normalizeLevels(req.AvoidRiskLevels)

	start, err := s.resolveEndpoint(ctx, req.Start, "start")
	if err != nil {
		return nil, err
	}
	end, err := s.resolveEndpoint(ctx, req.End, "end")
	if err != nil {
		return nil, err
	}
	if start == end {
		return nil, faults.NewInvalidInput("end", "start and end cannot be the same point")
	}

	ds, err := s.safetyService.GetAnnotatedZones(ctx, 0, 0, true)
	if err != nil {
		return nil, err
	}

	// An endpoint inside a to-be-avoided zone makes the request
	// unroutable by construction; the user still needs a route out, so
	// avoidance is suppressed entirely for this request.
	effectiveLevels := avoidLevels
	if s.insideAvoidedZone(ds, start, avoidLevels) || s.insideAvoidedZone(ds, end, avoidLevels) {
		s.logger.Warn("endpoint inside avoided zone, suppressing avoidance",
			"start", start,
			"end", end,
			"avoid_levels", avoidLevels,
		)
		effectiveLevels = nil
	}

	var avoid *openrouteservice.MultiPolygon
	if len(effectiveLevels) > 0 {
		avoid = BuildAvoidMultiPolygon(ds, effectiveLevels, s.avoidLimit, s.logger)
	}
	avoidCount := avoid.PolygonCount()

	s.logger.Info("computing safe route",
		"profile", req.Profile,
		"start", start,
		"end", end,
		"avoid_levels", effectiveLevels,
		"avoid_polygons", avoidCount,
	)

	route, err := s.directions.Directions(ctx, req.Profile, buildDirectionsRequest(start, end, avoid))
	if err != nil {
		if avoidCount > 0 && qualifiesForFallback(err) {
			s.logger.Warn("routing with avoidance failed, retrying without avoidance zones", "error", err)
			route, err = s.directions.Directions(ctx, req.Profile, buildDirectionsRequest(start, end, nil))
			if err != nil {
				return nil, s.wrapDirectionsError(err)
			}
			return &RouteResult{
				Route: route,
				Metadata: RouteMetadata{
					Profile:           req.Profile,
					AvoidRiskLevels:   []string{},
					AvoidPolygonCount: 0,
					FallbackUsed:      true,
					FallbackReason:    fallbackReason,
				},
			}, nil
		}
		return nil, s.wrapDirectionsError(err)
	}

	if effectiveLevels == nil {
		effectiveLevels = []string{}
	}
	return &RouteResult{
		Route: route,
		Metadata: RouteMetadata{
			Profile:           req.Profile,
			AvoidRiskLevels:   effectiveLevels,
			AvoidPolygonCount: avoidCount,
			FallbackUsed:      false,
		},
	}, nil
}

func (s *routingService) Geocode(ctx context.Context, location string) (*GeocodedLocation, error) {
	if strings.TrimSpace(location) == "" {
		return nil, faults.NewInvalidInput("location", "location parameter required")
	}

	result, err := s.geocoder.Search(ctx, location)
	if err != nil {
		return nil, &faults.UpstreamError{Provider: "geocoder", Err: err}
	}
	if result == nil {
		return nil, fmt.Errorf("location %q: %w", location, faults.ErrNotFound)
	}

	lat, latErr := strconv.ParseFloat(result.Lat, 64)
	lng, lngErr := strconv.ParseFloat(result.Lon, 64)
	if latErr != nil || lngErr != nil {
		return nil, &faults.UpstreamError{Provider: "geocoder", Err: fmt.Errorf("unparseable coordinates %q, %q", result.Lat, result.Lon)}
	}

	display := result.DisplayName
	if display == "" {
		display = location
	}
	return &GeocodedLocation{
		Coords:      types.NewCoords(lat, lng),
		DisplayName: display,
		Location:    location,
	}, nil
}

// resolveEndpoint normalizes an endpoint to validated coordinates, geocoding
// the location name when no explicit pair was supplied.
func (s *routingService) resolveEndpoint(ctx context.Context, ep Endpoint, label string) (types.Coords, error) {
	if ep.Coords != nil {
		if err := ep.Coords.Validate(); err != nil {
			return types.Coords{}, faults.NewInvalidInput(label, err.Error())
		}
		return *ep.Coords, nil
	}
	if strings.TrimSpace(ep.Location) == "" {
		return types.Coords{}, faults.NewInvalidInput(label, "coordinates or location name required")
	}

	geocoded, err := s.Geocode(ctx, ep.Location)
	if err != nil {
		return types.Coords{}, err
	}
	return geocoded.Coords, nil
}

func (s *routingService) insideAvoidedZone(ds *safety.AnnotatedDataset, point types.Coords, avoidLevels []string) bool {
	avoid := normalizeLevelSet(avoidLevels)
	for _, zone := range ds.Zones {
		if !avoid[zone.RiskLevel.String()] {
			continue
		}
		if zone.Geometry.Contains(point.Latitude, point.Longitude) {
			return true
		}
	}
	return false
}

// buildDirectionsRequest assembles the provider payload. Coordinates switch
// to the provider's (lng, lat) order here, rounded to 6 decimals.
func buildDirectionsRequest(start, end types.Coords, avoid *openrouteservice.MultiPolygon) *openrouteservice.DirectionsRequest {
	req := &openrouteservice.DirectionsRequest{
		Coordinates: [][2]float64{
			round6Pair(start.LngLat()),
			round6Pair(end.LngLat()),
		},
		Preference:   "recommended",
		Units:        "m",
		Language:     "en",
		Geometry:     true,
		Instructions: true,
		Elevation:    false,
		// widen the snap radius so endpoints away from roads still route
		Radiuses: []float64{1000, 1000},
	}
	if avoid.PolygonCount() > 0 {
		req.Options = &openrouteservice.DirectionsOptions{AvoidPolygons: avoid}
	}
	return req
}

func qualifiesForFallback(err error) bool {
	var statusErr *openrouteservice.StatusError
	return errors.As(err, &statusErr) && fallbackStatuses[statusErr.Code]
}

func (s *routingService) wrapDirectionsError(err error) error {
	var statusErr *openrouteservice.StatusError
	if errors.As(err, &statusErr) {
		return &faults.UpstreamError{Provider: "openrouteservice", Status: statusErr.Code, Err: err}
	}
	return &faults.UpstreamError{Provider: "openrouteservice", Err: err}
}

func normalizeLevels(levels []string) []string {
	out := make([]string, 0, len(levels))
	for _, lvl := range levels {
		lvl = strings.ToLower(strings.TrimSpace(lvl))
		if lvl != "" {
			out = append(out, lvl)
		}
	}
	if len(out) == 0 {
		out = []string{"forbidden"}
	}
	return out
}

func round6Pair(p [2]float64) [2]float64 {
	return [2]float64{round6(p[0]), round6(p[1])}
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
