// Package geo computes great-circle distances between report and rescuer
// coordinates. All inputs are degrees, all distances meters.
package geo

import "math"

// ServiceRadiusMeters is the system-wide dispatch radius: 10 miles.
// Policy constant, not configurable per report.
const ServiceRadiusMeters = 16093.4

const earthRadiusMeters = 6371000.0

type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Distance returns the haversine great-circle distance between a and b in meters.
func Distance(a, b Coordinate) float64 {
	latA := a.Latitude * math.Pi / 180
	latB := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}

// WithinServiceRadius reports whether b is within the 10-mile service radius
// of a. The boundary is inclusive.
func WithinServiceRadius(a, b Coordinate) bool {
	return Distance(a, b) <= ServiceRadiusMeters
}
