package services

import "math"

const earthRadiusKm = 6371.0088

// DistanceKm is the great-circle distance between two points on a
// spherical Earth (haversine).
func DistanceKm(lon1, lat1, lon2, lat2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

// Round2 rounds to two decimals, matching what the dashboard displays.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
