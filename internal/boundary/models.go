package boundary

import (
	"encoding/json"
	"fmt"

	"sentry-safety/internal/geo"
)

// FeatureCollection is the static zone boundary dataset, GeoJSON-shaped.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string     `json:"type"`
	Properties Properties `json:"properties"`
	Geometry   Geometry   `json:"geometry"`
}

// Properties carries the display fields of a zone boundary. StationName is
// the raw label the annotator reconciles against the canonical station set.
type Properties struct {
	StationName string `json:"POL_STN_NM"`
	District    string `json:"DIST_NM"`
	Range       string `json:"RANGE"`
	Subdivision string `json:"SUB_DIVISI"`
}

// Geometry is a tagged Polygon/MultiPolygon union. Exactly one of Polygon and
// MultiPolygon is populated, so consumers can branch exhaustively instead of
// walking untyped nested slices. A Polygon is a set of rings (outer first);
// a MultiPolygon is a sequence of such ring-sets.
type Geometry struct {
	Type         string
	Polygon      []geo.Ring
	MultiPolygon [][]geo.Ring
}

func (g *Geometry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type        string          `json:"type"`
		Coordinates json.RawMessage `json:"coordinates"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	g.Type = raw.Type

	switch raw.Type {
	case "Polygon":
		if err := json.Unmarshal(raw.Coordinates, &g.Polygon); err != nil {
			return fmt.Errorf("failed to unmarshal Polygon coordinates: %w", err)
		}
	case "MultiPolygon":
		if err := json.Unmarshal(raw.Coordinates, &g.MultiPolygon); err != nil {
			return fmt.Errorf("failed to unmarshal MultiPolygon coordinates: %w", err)
		}
	default:
		return fmt.Errorf("unsupported geometry type: %s", raw.Type)
	}
	return nil
}

func (g Geometry) MarshalJSON() ([]byte, error) {
	switch g.Type {
	case "Polygon":
		return json.Marshal(struct {
			Type        string     `json:"type"`
			Coordinates []geo.Ring `json:"coordinates"`
		}{g.Type, g.Polygon})
	case "MultiPolygon":
		return json.Marshal(struct {
			Type        string       `json:"type"`
			Coordinates [][]geo.Ring `json:"coordinates"`
		}{g.Type, g.MultiPolygon})
	}
	return nil, fmt.Errorf("unsupported geometry type: %s", g.Type)
}

// OuterRings returns the outer ring of the polygon, or of every sub-polygon
// for a MultiPolygon. Holes are ignored: containment and avoidance both work
// on outer boundaries only.
func (g Geometry) OuterRings() []geo.Ring {
	switch g.Type {
	case "Polygon":
		if len(g.Polygon) > 0 {
			return []geo.Ring{g.Polygon[0]}
		}
	case "MultiPolygon":
		rings := make([]geo.Ring, 0, len(g.MultiPolygon))
		for _, poly := range g.MultiPolygon {
			if len(poly) > 0 {
				rings = append(rings, poly[0])
			}
		}
		return rings
	}
	return nil
}

// Contains reports whether the point lies inside any outer ring.
func (g Geometry) Contains(lat, lng float64) bool {
	for _, ring := range g.OuterRings() {
		if geo.PointInRing(lat, lng, ring) {
			return true
		}
	}
	return false
}

// Centroid returns the arithmetic mean of the first outer ring's vertices,
// a cheap representative point for timezone lookup. The second return is
// false when the geometry has no ring.
func (g Geometry) Centroid() (lat, lng float64, ok bool) {
	rings := g.OuterRings()
	if len(rings) == 0 || len(rings[0]) == 0 {
		return 0, 0, false
	}
	ring := rings[0]
	var sumLng, sumLat float64
	for _, p := range ring {
		sumLng += p[0]
		sumLat += p[1]
	}
	n := float64(len(ring))
	return sumLat / n, sumLng / n, true
}
