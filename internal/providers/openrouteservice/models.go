package openrouteservice

import (
	"sentry-safety/internal/geo"
)

// MultiPolygon is the avoidance geometry attached to a directions request.
// Coordinates follow GeoJSON nesting: polygons, then rings, then positions.
type MultiPolygon struct {
	Type        string       `json:"type"`
	Coordinates [][]geo.Ring `json:"coordinates"`
}

// NewMultiPolygon wraps a set of single-ring polygons. Each ring becomes one
// polygon with no holes.
func NewMultiPolygon(rings []geo.Ring) *MultiPolygon {
	coords := make([][]geo.Ring, 0, len(rings))
	for _, ring := range rings {
		coords = append(coords, []geo.Ring{ring})
	}
	return &MultiPolygon{Type: "MultiPolygon", Coordinates: coords}
}

// PolygonCount returns the number of polygons carried.
func (m *MultiPolygon) PolygonCount() int {
	if m == nil {
		return 0
	}
	return len(m.Coordinates)
}

// DirectionsRequest is the ORS directions payload. Coordinate pairs are
// (longitude, latitude).
type DirectionsRequest struct {
	Coordinates  [][2]float64       `json:"coordinates"`
	Preference   string             `json:"preference"`
	Units        string             `json:"units"`
	Language     string             `json:"language"`
	Geometry     bool               `json:"geometry"`
	Instructions bool               `json:"instructions"`
	Elevation    bool               `json:"elevation"`
	Radiuses     []float64          `json:"radiuses"`
	Options      *DirectionsOptions `json:"options,omitempty"`
}

type DirectionsOptions struct {
	AvoidPolygons *MultiPolygon `json:"avoid_polygons,omitempty"`
}

// DirectionsResponse is the GeoJSON route returned by ORS. Features carry the
// route geometry and turn instructions; the payload is passed through to API
// clients mostly untouched.
type DirectionsResponse struct {
	Type     string         `json:"type"`
	BBox     []float64      `json:"bbox,omitempty"`
	Features []RouteFeature `json:"features"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type RouteFeature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Geometry   RouteGeometry  `json:"geometry"`
	BBox       []float64      `json:"bbox,omitempty"`
}

type RouteGeometry struct {
	Type        string       `json:"type"`
	Coordinates [][2]float64 `json:"coordinates"`
}
