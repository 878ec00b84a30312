package routing

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"sentry-safety/internal/classifier"
	"sentry-safety/internal/faults"
	"sentry-safety/internal/providers/openrouteservice"
	"sentry-safety/internal/providers/openstreetmap"
	"sentry-safety/internal/safety"
	"sentry-safety/internal/types"
)

type fakeSafety struct {
	dataset *safety.AnnotatedDataset
	err     error
	calls   int
}

func (f *fakeSafety) GetAnnotatedZones(ctx context.Context, month, day int, useLive bool) (*safety.AnnotatedDataset, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.dataset, nil
}

type fakeGeocoder struct {
	results map[string]*openstreetmap.SearchAPIResponse
	err     error
}

func (f *fakeGeocoder) Search(ctx context.Context, query string) (*openstreetmap.SearchAPIResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.results[query], nil
}

// fakeDirections replays one error per call from errs, then succeeds. It
// records every request it received.
type fakeDirections struct {
	requests []*openrouteservice.DirectionsRequest
	errs     []error
	response *openrouteservice.DirectionsResponse
}

func (f *fakeDirections) Directions(ctx context.Context, profile string, request *openrouteservice.DirectionsRequest) (*openrouteservice.DirectionsResponse, error) {
	call := len(f.requests)
	f.requests = append(f.requests, request)
	if call < len(f.errs) && f.errs[call] != nil {
		return nil, f.errs[call]
	}
	if f.response != nil {
		return f.response, nil
	}
	return &openrouteservice.DirectionsResponse{Type: "FeatureCollection"}, nil
}

func coordsPtr(lat, lng float64) *types.Coords {
	c := types.NewCoords(lat, lng)
	return &c
}

// datasetWithForbiddenSquare returns one forbidden zone covering the square
// with corners (28.0, 77.0) and (28.2, 77.2), plus a safe zone elsewhere.
func datasetWithForbiddenSquare() *safety.AnnotatedDataset {
	return &safety.AnnotatedDataset{Zones: []safety.Zone{
		polygonZone("zone_000", classifier.RiskForbidden, squareRing(77.0, 28.0, 0.2)),
		polygonZone("zone_001", classifier.RiskSafe, squareRing(77.5, 28.5, 0.2)),
	}}
}

func newTestRoutingService(sf *fakeSafety, gc *fakeGeocoder, dir *fakeDirections) Service {
	if gc == nil {
		gc = &fakeGeocoder{}
	}
	return NewService(sf, gc, dir, 0, testLogger())
}

func TestComputeSafeRoute_AttachesAvoidanceGeometry(t *testing.T) {
	dir := &fakeDirections{}
	svc := newTestRoutingService(&fakeSafety{dataset: datasetWithForbiddenSquare()}, nil, dir)

	result, err := svc.ComputeSafeRoute(context.Background(), RouteRequest{
		Start:   Endpoint{Coords: coordsPtr(28.45, 77.45)},
		End:     Endpoint{Coords: coordsPtr(28.9, 77.9)},
		Profile: "driving-car",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(dir.requests) != 1 {
		t.Fatalf("expected 1 directions call, got %d", len(dir.requests))
	}
	req := dir.requests[0]
	if req.Options == nil || req.Options.AvoidPolygons.PolygonCount() != 1 {
		t.Fatalf("expected 1 avoidance polygon attached, got %+v", req.Options)
	}
	if result.Metadata.AvoidPolygonCount != 1 {
		t.Errorf("expected avoid polygon count 1, got %d", result.Metadata.AvoidPolygonCount)
	}
	if result.Metadata.FallbackUsed {
		t.Error("expected no fallback on success")
	}
	if len(result.Metadata.AvoidRiskLevels) != 1 || result.Metadata.AvoidRiskLevels[0] != "forbidden" {
		t.Errorf("expected default avoid level forbidden, got %v", result.Metadata.AvoidRiskLevels)
	}
}

func TestComputeSafeRoute_PayloadShape(t *testing.T) {
	dir := &fakeDirections{}
	svc := newTestRoutingService(&fakeSafety{dataset: &safety.AnnotatedDataset{}}, nil, dir)

	_, err := svc.ComputeSafeRoute(context.Background(), RouteRequest{
		Start:   Endpoint{Coords: coordsPtr(28.6139391234, 77.2090211234)},
		End:     Endpoint{Coords: coordsPtr(28.7, 77.1)},
		Profile: "foot-walking",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := dir.requests[0]
	if got := req.Coordinates[0]; got != [2]float64{77.209021, 28.613939} {
		t.Errorf("expected (lng, lat) rounded to 6 decimals, got %v", got)
	}
	if req.Preference != "recommended" {
		t.Errorf("expected preference recommended, got %q", req.Preference)
	}
	if req.Units != "m" || req.Language != "en" {
		t.Errorf("unexpected units/language: %q %q", req.Units, req.Language)
	}
	if !req.Geometry || !req.Instructions || req.Elevation {
		t.Errorf("unexpected geometry flags: geometry=%v instructions=%v elevation=%v", req.Geometry, req.Instructions, req.Elevation)
	}
	if len(req.Radiuses) != 2 || req.Radiuses[0] != 1000 || req.Radiuses[1] != 1000 {
		t.Errorf("expected snap radiuses [1000 1000], got %v", req.Radiuses)
	}
	if req.Options != nil {
		t.Error("expected no avoidance options when no zone qualifies")
	}
}

func TestComputeSafeRoute_FallbackRetriesWithoutAvoidance(t *testing.T) {
	for _, status := range []int{
		http.StatusBadRequest,
		http.StatusNotFound,
		http.StatusRequestEntityTooLarge,
		http.StatusGatewayTimeout,
	} {
		dir := &fakeDirections{errs: []error{&openrouteservice.StatusError{Code: status}}}
		svc := newTestRoutingService(&fakeSafety{dataset: datasetWithForbiddenSquare()}, nil, dir)

		result, err := svc.ComputeSafeRoute(context.Background(), RouteRequest{
			Start:   Endpoint{Coords: coordsPtr(28.45, 77.45)},
			End:     Endpoint{Coords: coordsPtr(28.9, 77.9)},
			Profile: "driving-car",
		})
		if err != nil {
			t.Fatalf("status %d: unexpected error: %v", status, err)
		}

		if len(dir.requests) != 2 {
			t.Fatalf("status %d: expected 2 directions calls, got %d", status, len(dir.requests))
		}
		if dir.requests[1].Options != nil {
			t.Errorf("status %d: expected retry without avoidance options", status)
		}
		if !result.Metadata.FallbackUsed {
			t.Errorf("status %d: expected fallback flagged", status)
		}
		if result.Metadata.FallbackReason != "avoidance zones caused failure" {
			t.Errorf("status %d: unexpected fallback reason %q", status, result.Metadata.FallbackReason)
		}
		if result.Metadata.AvoidPolygonCount != 0 || len(result.Metadata.AvoidRiskLevels) != 0 {
			t.Errorf("status %d: expected cleared avoidance metadata, got %+v", status, result.Metadata)
		}
	}
}

func TestComputeSafeRoute_NonFallbackStatusFailsWithoutRetry(t *testing.T) {
	dir := &fakeDirections{errs: []error{&openrouteservice.StatusError{Code: http.StatusInternalServerError}}}
	svc := newTestRoutingService(&fakeSafety{dataset: datasetWithForbiddenSquare()}, nil, dir)

	_, err := svc.ComputeSafeRoute(context.Background(), RouteRequest{
		Start:   Endpoint{Coords: coordsPtr(28.45, 77.45)},
		End:     Endpoint{Coords: coordsPtr(28.9, 77.9)},
		Profile: "driving-car",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(dir.requests) != 1 {
		t.Fatalf("expected no retry, got %d calls", len(dir.requests))
	}
	var upstream *faults.UpstreamError
	if !errors.As(err, &upstream) || upstream.Status != http.StatusInternalServerError {
		t.Errorf("expected upstream error with status 500, got %v", err)
	}
}

func TestComputeSafeRoute_NoRetryWithoutAttachedAvoidance(t *testing.T) {
	dir := &fakeDirections{errs: []error{&openrouteservice.StatusError{Code: http.StatusBadRequest}}}
	svc := newTestRoutingService(&fakeSafety{dataset: &safety.AnnotatedDataset{}}, nil, dir)

	_, err := svc.ComputeSafeRoute(context.Background(), RouteRequest{
		Start:   Endpoint{Coords: coordsPtr(28.45, 77.45)},
		End:     Endpoint{Coords: coordsPtr(28.9, 77.9)},
		Profile: "driving-car",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(dir.requests) != 1 {
		t.Fatalf("expected single call when no avoidance was attached, got %d", len(dir.requests))
	}
}

func TestComputeSafeRoute_FallbackRetryFailureSurfaces(t *testing.T) {
	dir := &fakeDirections{errs: []error{
		&openrouteservice.StatusError{Code: http.StatusRequestEntityTooLarge},
		&openrouteservice.StatusError{Code: http.StatusServiceUnavailable},
	}}
	svc := newTestRoutingService(&fakeSafety{dataset: datasetWithForbiddenSquare()}, nil, dir)

	_, err := svc.ComputeSafeRoute(context.Background(), RouteRequest{
		Start:   Endpoint{Coords: coordsPtr(28.45, 77.45)},
		End:     Endpoint{Coords: coordsPtr(28.9, 77.9)},
		Profile: "driving-car",
	})
	if err == nil {
		t.Fatal("expected error when the retry also fails")
	}
	var upstream *faults.UpstreamError
	if !errors.As(err, &upstream) || upstream.Status != http.StatusServiceUnavailable {
		t.Errorf("expected retry failure surfaced, got %v", err)
	}
}

func TestComputeSafeRoute_EndpointInsideAvoidedZoneSuppressesAvoidance(t *testing.T) {
	dir := &fakeDirections{}
	svc := newTestRoutingService(&fakeSafety{dataset: datasetWithForbiddenSquare()}, nil, dir)

	// start sits inside the forbidden square
	result, err := svc.ComputeSafeRoute(context.Background(), RouteRequest{
		Start:   Endpoint{Coords: coordsPtr(28.1, 77.1)},
		End:     Endpoint{Coords: coordsPtr(28.9, 77.9)},
		Profile: "driving-car",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dir.requests[0].Options != nil {
		t.Error("expected no avoidance options when an endpoint is inside an avoided zone")
	}
	if result.Metadata.AvoidPolygonCount != 0 {
		t.Errorf("expected polygon count 0, got %d", result.Metadata.AvoidPolygonCount)
	}
	if result.Metadata.FallbackUsed {
		t.Error("suppression is not a fallback")
	}
	if len(result.Metadata.AvoidRiskLevels) != 0 {
		t.Errorf("expected empty effective avoid levels, got %v", result.Metadata.AvoidRiskLevels)
	}
}

func TestComputeSafeRoute_IdenticalEndpointsRejected(t *testing.T) {
	svc := newTestRoutingService(&fakeSafety{dataset: &safety.AnnotatedDataset{}}, nil, &fakeDirections{})

	_, err := svc.ComputeSafeRoute(context.Background(), RouteRequest{
		Start:   Endpoint{Coords: coordsPtr(28.6, 77.2)},
		End:     Endpoint{Coords: coordsPtr(28.6, 77.2)},
		Profile: "driving-car",
	})
	var invalid *faults.InvalidInput
	if !errors.As(err, &invalid) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestComputeSafeRoute_ValidatesInputs(t *testing.T) {
	svc := newTestRoutingService(&fakeSafety{dataset: &safety.AnnotatedDataset{}}, nil, &fakeDirections{})

	tests := []struct {
		name string
		req  RouteRequest
	}{
		{
			name: "missing profile",
			req: RouteRequest{
				Start: Endpoint{Coords: coordsPtr(28.6, 77.2)},
				End:   Endpoint{Coords: coordsPtr(28.7, 77.1)},
			},
		},
		{
			name: "out of range latitude",
			req: RouteRequest{
				Start:   Endpoint{Coords: coordsPtr(99.0, 77.2)},
				End:     Endpoint{Coords: coordsPtr(28.7, 77.1)},
				Profile: "driving-car",
			},
		},
		{
			name: "empty endpoint",
			req: RouteRequest{
				Start:   Endpoint{},
				End:     Endpoint{Coords: coordsPtr(28.7, 77.1)},
				Profile: "driving-car",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ComputeSafeRoute(context.Background(), tt.req)
			var invalid *faults.InvalidInput
			if !errors.As(err, &invalid) {
				t.Fatalf("expected invalid input, got %v", err)
			}
		})
	}
}

func TestComputeSafeRoute_GeocodesNamedEndpoints(t *testing.T) {
	dir := &fakeDirections{}
	gc := &fakeGeocoder{results: map[string]*openstreetmap.SearchAPIResponse{
		"Connaught Place": {Lat: "28.6328", Lon: "77.2197", DisplayName: "Connaught Place, New Delhi"},
	}}
	svc := newTestRoutingService(&fakeSafety{dataset: &safety.AnnotatedDataset{}}, gc, dir)

	_, err := svc.ComputeSafeRoute(context.Background(), RouteRequest{
		Start:   Endpoint{Location: "Connaught Place"},
		End:     Endpoint{Coords: coordsPtr(28.7, 77.1)},
		Profile: "driving-car",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := dir.requests[0].Coordinates[0]; got != [2]float64{77.2197, 28.6328} {
		t.Errorf("expected geocoded start, got %v", got)
	}
}

func TestComputeSafeRoute_UnknownLocationIsNotFound(t *testing.T) {
	svc := newTestRoutingService(&fakeSafety{dataset: &safety.AnnotatedDataset{}}, &fakeGeocoder{}, &fakeDirections{})

	_, err := svc.ComputeSafeRoute(context.Background(), RouteRequest{
		Start:   Endpoint{Location: "nowhere in particular"},
		End:     Endpoint{Coords: coordsPtr(28.7, 77.1)},
		Profile: "driving-car",
	})
	if !errors.Is(err, faults.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestComputeSafeRoute_DatasetFailurePropagates(t *testing.T) {
	wantErr := errors.New("boundary file unreadable")
	svc := newTestRoutingService(&fakeSafety{err: wantErr}, nil, &fakeDirections{})

	_, err := svc.ComputeSafeRoute(context.Background(), RouteRequest{
		Start:   Endpoint{Coords: coordsPtr(28.6, 77.2)},
		End:     Endpoint{Coords: coordsPtr(28.7, 77.1)},
		Profile: "driving-car",
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected dataset error propagated, got %v", err)
	}
}

func TestGeocode(t *testing.T) {
	gc := &fakeGeocoder{results: map[string]*openstreetmap.SearchAPIResponse{
		"India Gate": {Lat: "28.612912", Lon: "77.227321", DisplayName: "India Gate, New Delhi, Delhi, India"},
	}}
	svc := newTestRoutingService(&fakeSafety{dataset: &safety.AnnotatedDataset{}}, gc, &fakeDirections{})

	got, err := svc.Geocode(context.Background(), "India Gate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Coords.Latitude != 28.612912 || got.Coords.Longitude != 77.227321 {
		t.Errorf("unexpected coords: %+v", got.Coords)
	}
	if got.DisplayName != "India Gate, New Delhi, Delhi, India" {
		t.Errorf("unexpected display name: %q", got.DisplayName)
	}

	if _, err := svc.Geocode(context.Background(), "  "); err == nil {
		t.Error("expected error for blank location")
	}
	if _, err := svc.Geocode(context.Background(), "unknown place"); !errors.Is(err, faults.ErrNotFound) {
		t.Errorf("expected not-found for unknown place, got %v", err)
	}
}
