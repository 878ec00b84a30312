package boundary

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"sentry-safety/internal/faults"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const sampleCollection = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {
        "POL_STN_NM": "PS Connaught Place",
        "DIST_NM": "New Delhi",
        "RANGE": "New Delhi Range",
        "SUB_DIVISI": "Connaught Place"
      },
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[77.20, 28.62], [77.23, 28.62], [77.23, 28.64], [77.20, 28.64], [77.20, 28.62]]]
      }
    },
    {
      "type": "Feature",
      "properties": {
        "POL_STN_NM": "PS Dwarka North",
        "DIST_NM": "Dwarka",
        "RANGE": "Western Range",
        "SUB_DIVISI": "Dwarka"
      },
      "geometry": {
        "type": "MultiPolygon",
        "coordinates": [
          [[[77.02, 28.58], [77.04, 28.58], [77.04, 28.60], [77.02, 28.60], [77.02, 28.58]]],
          [[[77.05, 28.61], [77.06, 28.61], [77.06, 28.62], [77.05, 28.62], [77.05, 28.61]]]
        ]
      }
    }
  ]
}`

func writeTempBoundary(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "boundaries.geojson")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp boundary file: %v", err)
	}
	return path
}

func TestLoader_Load(t *testing.T) {
	loader := NewLoader(writeTempBoundary(t, sampleCollection), testLogger())

	fc, err := loader.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fc.Features) != 2 {
		t.Fatalf("expected 2 features, got %d", len(fc.Features))
	}
	if fc.Features[0].Properties.StationName != "PS Connaught Place" {
		t.Errorf("unexpected station name: %q", fc.Features[0].Properties.StationName)
	}
	if fc.Features[1].Geometry.Type != "MultiPolygon" {
		t.Errorf("expected MultiPolygon, got %q", fc.Features[1].Geometry.Type)
	}

	// second call serves the same decoded collection
	again, err := loader.Load()
	if err != nil {
		t.Fatalf("unexpected error on second load: %v", err)
	}
	if again != fc {
		t.Error("expected the same collection pointer on repeat loads")
	}
}

func TestLoader_Load_Failures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		missing bool
	}{
		{name: "missing file", missing: true},
		{name: "malformed json", content: `{"type": "FeatureCollection", "features": [`},
		{name: "empty collection", content: `{"type": "FeatureCollection", "features": []}`},
		{name: "wrong type", content: `{"type": "Feature", "features": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missing.geojson")
			if !tt.missing {
				path = writeTempBoundary(t, tt.content)
			}

			_, err := NewLoader(path, testLogger()).Load()
			var integrity *faults.DataIntegrityError
			if !errors.As(err, &integrity) {
				t.Fatalf("expected data integrity error, got %v", err)
			}
		})
	}
}

func TestGeometry_UnmarshalRejectsUnknownType(t *testing.T) {
	var g Geometry
	err := json.Unmarshal([]byte(`{"type": "Point", "coordinates": [77.2, 28.6]}`), &g)
	if err == nil {
		t.Fatal("expected error for unsupported geometry type")
	}
}

func TestGeometry_OuterRings(t *testing.T) {
	var fc FeatureCollection
	if err := json.Unmarshal([]byte(sampleCollection), &fc); err != nil {
		t.Fatalf("failed to decode sample: %v", err)
	}

	if got := len(fc.Features[0].Geometry.OuterRings()); got != 1 {
		t.Errorf("expected 1 outer ring for Polygon, got %d", got)
	}
	if got := len(fc.Features[1].Geometry.OuterRings()); got != 2 {
		t.Errorf("expected 2 outer rings for MultiPolygon, got %d", got)
	}
}

func TestGeometry_Contains(t *testing.T) {
	var fc FeatureCollection
	if err := json.Unmarshal([]byte(sampleCollection), &fc); err != nil {
		t.Fatalf("failed to decode sample: %v", err)
	}
	polygon := fc.Features[0].Geometry
	multi := fc.Features[1].Geometry

	tests := []struct {
		name     string
		geometry Geometry
		lat, lng float64
		want     bool
	}{
		{"inside polygon", polygon, 28.63, 77.21, true},
		{"outside polygon", polygon, 28.70, 77.21, false},
		{"inside first sub-polygon", multi, 28.59, 77.03, true},
		{"inside second sub-polygon", multi, 28.615, 77.055, true},
		{"between sub-polygons", multi, 28.605, 77.045, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.geometry.Contains(tt.lat, tt.lng); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.lat, tt.lng, got, tt.want)
			}
		})
	}
}

func TestGeometry_Centroid(t *testing.T) {
	var fc FeatureCollection
	if err := json.Unmarshal([]byte(sampleCollection), &fc); err != nil {
		t.Fatalf("failed to decode sample: %v", err)
	}

	lat, lng, ok := fc.Features[0].Geometry.Centroid()
	if !ok {
		t.Fatal("expected centroid for polygon geometry")
	}
	if lat < 28.62 || lat > 28.64 || lng < 77.20 || lng > 77.23 {
		t.Errorf("centroid (%v, %v) outside polygon bounds", lat, lng)
	}

	if _, _, ok := (Geometry{Type: "Polygon"}).Centroid(); ok {
		t.Error("expected no centroid for empty geometry")
	}
}

func TestGeometry_MarshalRoundTrip(t *testing.T) {
	var fc FeatureCollection
	if err := json.Unmarshal([]byte(sampleCollection), &fc); err != nil {
		t.Fatalf("failed to decode sample: %v", err)
	}

	data, err := json.Marshal(fc.Features[1].Geometry)
	if err != nil {
		t.Fatalf("failed to marshal geometry: %v", err)
	}

	var decoded Geometry
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to re-decode geometry: %v", err)
	}
	if decoded.Type != "MultiPolygon" || len(decoded.MultiPolygon) != 2 {
		t.Errorf("round trip lost structure: %+v", decoded)
	}
}
