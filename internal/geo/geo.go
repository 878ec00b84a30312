// Package geo implements the geometry primitives used by the safety pipeline:
// point-in-polygon containment and bounding-box reduction. Pure functions,
// no I/O.
package geo

import "math"

// Ring is an ordered sequence of (longitude, latitude) pairs, GeoJSON axis
// order. A well-formed ring is closed: its first and last positions are equal.
type Ring [][2]float64

// PointInRing reports whether the point (lat, lng) lies inside the ring using
// the ray-casting algorithm. The horizontal ray extends to the right of the
// point; each crossing edge toggles the inside flag. The lower latitude bound
// is compared strictly and the upper inclusively so a vertex shared by two
// edges is not counted twice. Rings shorter than 3 points are never hit.
func PointInRing(lat, lng float64, ring Ring) bool {
	n := len(ring)
	if n < 3 {
		return false
	}

	inside := false
	p1lng, p1lat := ring[0][0], ring[0][1]
	for i := 1; i <= n; i++ {
		p2lng, p2lat := ring[i%n][0], ring[i%n][1]
		if lat > math.Min(p1lat, p2lat) && lat <= math.Max(p1lat, p2lat) && lng <= math.Max(p1lng, p2lng) {
			// Horizontal edges never satisfy the strict lower bound
			// above, so the division below is safe; the guard keeps
			// it that way.
			if p1lat != p2lat {
				xinters := (lat-p1lat)*(p2lng-p1lng)/(p2lat-p1lat) + p1lng
				if p1lng == p2lng || lng <= xinters {
					inside = !inside
				}
			}
		}
		p1lng, p1lat = p2lng, p2lat
	}
	return inside
}

// BoundingBoxRing reduces a ring to its axis-aligned bounding box, returned
// as a closed 5-point ring with each value rounded to 5 decimal digits
// (roughly 1 m). The reduction is deliberately lossy: it caps every avoidance
// zone at a constant coordinate count regardless of the source polygon's
// complexity. Returns nil for empty input.
func BoundingBoxRing(ring Ring) Ring {
	if len(ring) == 0 {
		return nil
	}

	minLng, maxLng := ring[0][0], ring[0][0]
	minLat, maxLat := ring[0][1], ring[0][1]
	for _, p := range ring[1:] {
		minLng = math.Min(minLng, p[0])
		maxLng = math.Max(maxLng, p[0])
		minLat = math.Min(minLat, p[1])
		maxLat = math.Max(maxLat, p[1])
	}

	return Ring{
		{round5(minLng), round5(minLat)},
		{round5(maxLng), round5(minLat)},
		{round5(maxLng), round5(maxLat)},
		{round5(minLng), round5(maxLat)},
		{round5(minLng), round5(minLat)},
	}
}

// Closed reports whether the ring's first and last positions are equal.
func (r Ring) Closed() bool {
	return len(r) >= 2 && r[0] == r[len(r)-1]
}

func round5(v float64) float64 {
	return math.Round(v*1e5) / 1e5
}
