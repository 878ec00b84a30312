// Package safety produces the risk-annotated zone dataset: static boundaries
// joined with live air-quality readings and classifier output, cached with
// bounded freshness.
package safety

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sentry-safety/internal/boundary"
	"sentry-safety/internal/cache"
	"sentry-safety/internal/classifier"
	"sentry-safety/internal/faults"
	"sentry-safety/internal/providers/waqi"
	"sentry-safety/internal/timezone"
)

// cached datasets stay servable for this long
const freshnessTTL = 30 * time.Minute

// BoundaryProvider loads the static zone boundary dataset.
type BoundaryProvider interface {
	Load() (*boundary.FeatureCollection, error)
}

// AQIProvider fetches live air-quality readings keyed by canonical station
// name. A partial or empty mapping is valid: missing stations get the
// sentinel AQI.
type AQIProvider interface {
	FetchAll(ctx context.Context) (map[string]waqi.Reading, error)
}

// Service produces risk-annotated zone datasets.
type Service interface {
	// GetAnnotatedZones returns the annotated dataset for the given
	// month/day. Zero month or day defaults to the current date in the
	// boundary region's local timezone. Results are cached for the
	// freshness window, keyed by (month, day, useLive).
	GetAnnotatedZones(ctx context.Context, month, day int, useLive bool) (*AnnotatedDataset, error)
}

type safetyService struct {
	boundaries BoundaryProvider
	aqi        AQIProvider
	model      classifier.Model
	classOrder []string
	matcher    *StationMatcher
	cache      *cache.Cache[*AnnotatedDataset]
	tz         timezone.Service
	clock      func() time.Time
	logger     *slog.Logger
}

// NewService creates the safety service with a real timezone lookup and the
// default clock.
func NewService(
	boundaries BoundaryProvider,
	aqi AQIProvider,
	model classifier.Model,
	logger *slog.Logger,
) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}
	return NewServiceWithDeps(boundaries, aqi, model, tzSvc, nil, logger), nil
}

// NewServiceWithDeps creates the safety service with explicit collaborators.
// A nil clock defaults to time.Now; a nil timezone service falls back to UTC
// for date defaulting. Useful for testing.
func NewServiceWithDeps(
	boundaries BoundaryProvider,
	aqi AQIProvider,
	model classifier.Model,
	tz timezone.Service,
	clock func() time.Time,
	logger *slog.Logger,
) Service {
	if clock == nil {
		clock = time.Now
	}
	return &safetyService{
		boundaries: boundaries,
		aqi:        aqi,
		model:      model,
		classOrder: classifier.ResolveClassOrder(model),
		matcher:    NewStationMatcher(waqi.StationNames()),
		cache:      cache.New[*AnnotatedDataset](freshnessTTL, clock),
		tz:         tz,
		clock:      clock,
		logger:     logger.With("component", "safety-service"),
	}
}

func (s *safetyService) GetAnnotatedZones(ctx context.Context, month, day int, useLive bool) (*AnnotatedDataset, error) {
	if month < 0 || month > 12 {
		return nil, faults.NewInvalidInput("month", fmt.Sprintf("month %d out of range [1, 12]", month))
	}
	if day < 0 || day > 31 {
		return nil, faults.NewInvalidInput("day", fmt.Sprintf("day %d out of range [1, 31]", day))
	}

	if month == 0 || day == 0 {
		now := s.localNow()
		if month == 0 {
			month = int(now.Month())
		}
		if day == 0 {
			day = now.Day()
		}
	}

	key := fmt.Sprintf("%d:%d:%t", month, day, useLive)
	return s.cache.GetOrCompute(key, func() (*AnnotatedDataset, error) {
		return s.annotate(ctx, month, day, useLive)
	})
}

// localNow resolves the current time in the boundary region's timezone, using
// the centroid of the first zone as the representative point. Falls back to
// UTC when the boundaries or the timezone are unavailable.
func (s *safetyService) localNow() time.Time {
	now := s.clock().UTC()
	if s.tz == nil {
		return now
	}
	fc, err := s.boundaries.Load()
	if err != nil || len(fc.Features) == 0 {
		return now
	}
	lat, lng, ok := fc.Features[0].Geometry.Centroid()
	if !ok {
		return now
	}
	return s.tz.LocalNow(lat, lng)
}
