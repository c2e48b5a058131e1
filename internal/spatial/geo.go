package spatial

import (
	"github.com/golang/geo/s2"

	"github.com/jengzang/olympics-access-go/internal/models"
)

// EarthRadiusMeters is Earth's mean radius
const EarthRadiusMeters = 6371000.0

// HaversineDistance calculates the great-circle distance between two points
// in meters
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// MeanCenter returns the arithmetic mean latitude/longitude of the venues.
// Good enough for a city-scale map center; venues must be non-empty.
func MeanCenter(venues []models.Venue) (lat, lon float64) {
	for _, v := range venues {
		lat += v.Latitude
		lon += v.Longitude
	}
	n := float64(len(venues))
	return lat / n, lon / n
}
