package domain

import "fmt"

// Restaurant is one discovered restaurant near a queried location.
// RCode links chains to their structured menu catalog when known.
type Restaurant struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Category  string   `json:"category,omitempty"`
	RCode     string   `json:"rCode,omitempty"`
	MenuItems []string `json:"menuItems,omitempty"`
}

// Point is a geographic coordinate.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeographicBounds is a rectangular region. Containment is inclusive
// on all four edges.
type GeographicBounds struct {
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
	MinLon float64 `json:"minLon"`
	MaxLon float64 `json:"maxLon"`
}

// degreesPerMile is the fixed flat-earth approximation used for both
// axes. Imprecise for longitude away from the equator, acceptable at
// city-radius scale.
const degreesPerMile = 1.0 / 69.0

// BoundsFromCenter derives a bounding box from a center point and a
// radius in miles.
func BoundsFromCenter(center Point, radiusMiles float64) GeographicBounds {
	delta := radiusMiles * degreesPerMile
	return GeographicBounds{
		MinLat: center.Latitude - delta,
		MaxLat: center.Latitude + delta,
		MinLon: center.Longitude - delta,
		MaxLon: center.Longitude + delta,
	}
}

// Contains reports whether p lies inside the bounds, edges included.
func (b GeographicBounds) Contains(p Point) bool {
	return p.Latitude >= b.MinLat && p.Latitude <= b.MaxLat &&
		p.Longitude >= b.MinLon && p.Longitude <= b.MaxLon
}

// RegionKey builds the coordinate-derived cache key for a center point.
func RegionKey(center Point) string {
	return fmt.Sprintf("%.4f,%.4f", center.Latitude, center.Longitude)
}
