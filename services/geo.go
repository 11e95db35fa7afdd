package services

import "math"

const earthRadiusKm = 6371

// HaversineKm returns the great-circle distance between two points in
// kilometers.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// WithinRadius reports whether the point is at most radiusMeters away,
// boundary inclusive. The radius arrives in meters from the API and the
// distance math runs in kilometers.
func WithinRadius(lat1, lng1, lat2, lng2, radiusMeters float64) bool {
	return HaversineKm(lat1, lng1, lat2, lng2) <= radiusMeters/1000
}
