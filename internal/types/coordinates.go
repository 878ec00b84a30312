package types

import "fmt"

// Coords is a WGS84 latitude/longitude pair. External inputs are normalized
// to this representation at the boundary; GeoJSON geometry and the routing
// provider use (longitude, latitude) order instead, see LngLat.
type Coords struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Validate checks the pair is within WGS84 bounds.
func (c Coords) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude %f out of range [-90, 90]", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude %f out of range [-180, 180]", c.Longitude)
	}
	return nil
}

// LngLat returns the pair in (longitude, latitude) order, the convention used
// by GeoJSON geometry and the directions provider.
func (c Coords) LngLat() [2]float64 {
	return [2]float64{c.Longitude, c.Latitude}
}
