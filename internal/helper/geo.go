package helper

import "math"

const earthRadiusMeters = 6371000

// HaversineMeters returns the great-circle distance between two points given
// in degrees. Coordinate order follows the GeoJSON convention: longitude
// first, latitude second.
func HaversineMeters(lon1, lat1, lon2, lat2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// BoundingBox returns the [minLon, maxLon, minLat, maxLat] square that
// encloses a circle of radiusMeters around the point. Used as a cheap index
// prefilter before exact haversine filtering.
func BoundingBox(lon, lat, radiusMeters float64) (minLon, maxLon, minLat, maxLat float64) {
	latDelta := radiusMeters / earthRadiusMeters * 180 / math.Pi

	cosLat := math.Cos(lat * math.Pi / 180)
	if cosLat < 1e-12 {
		// At the poles every longitude is within range.
		return -180, 180, clampLat(lat - latDelta), clampLat(lat + latDelta)
	}
	lonDelta := latDelta / cosLat

	minLon = math.Max(lon-lonDelta, -180)
	maxLon = math.Min(lon+lonDelta, 180)
	minLat = clampLat(lat - latDelta)
	maxLat = clampLat(lat + latDelta)
	return minLon, maxLon, minLat, maxLat
}

func clampLat(lat float64) float64 {
	return math.Max(-90, math.Min(90, lat))
}

func ValidCoordinates(lon, lat float64) bool {
	return lon >= -180 && lon <= 180 && lat >= -90 && lat <= 90
}
