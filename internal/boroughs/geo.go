package boroughs

import (
	"math"

	"github.com/golang/geo/s2"
)

// EarthRadiusMeters is the Earth's mean radius
const EarthRadiusMeters = 6371000.0

// Approximate geographic centroids, used to place markers and resolve map clicks.
var centroids = map[string]s2.LatLng{
	"Barking And Dagenham":   s2.LatLngFromDegrees(51.5465, 0.1297),
	"Barnet":                 s2.LatLngFromDegrees(51.6252, -0.1517),
	"Bexley":                 s2.LatLngFromDegrees(51.4549, 0.1505),
	"Brent":                  s2.LatLngFromDegrees(51.5588, -0.2817),
	"Bromley":                s2.LatLngFromDegrees(51.3727, 0.0517),
	"Camden":                 s2.LatLngFromDegrees(51.5290, -0.1255),
	"City Of London":         s2.LatLngFromDegrees(51.5155, -0.0922),
	"Croydon":                s2.LatLngFromDegrees(51.3714, -0.0977),
	"Ealing":                 s2.LatLngFromDegrees(51.5130, -0.3089),
	"Enfield":                s2.LatLngFromDegrees(51.6538, -0.0799),
	"Greenwich":              s2.LatLngFromDegrees(51.4892, 0.0648),
	"Hackney":                s2.LatLngFromDegrees(51.5450, -0.0553),
	"Hammersmith And Fulham": s2.LatLngFromDegrees(51.4927, -0.2339),
	"Haringey":               s2.LatLngFromDegrees(51.5906, -0.1110),
	"Harrow":                 s2.LatLngFromDegrees(51.5898, -0.3346),
	"Havering":               s2.LatLngFromDegrees(51.5812, 0.1837),
	"Hillingdon":             s2.LatLngFromDegrees(51.5441, -0.4760),
	"Hounslow":               s2.LatLngFromDegrees(51.4746, -0.3680),
	"Islington":              s2.LatLngFromDegrees(51.5416, -0.1022),
	"Kensington And Chelsea": s2.LatLngFromDegrees(51.5020, -0.1947),
	"Kingston Upon Thames":   s2.LatLngFromDegrees(51.3925, -0.2843),
	"Lambeth":                s2.LatLngFromDegrees(51.4571, -0.1231),
	"Lewisham":               s2.LatLngFromDegrees(51.4415, -0.0117),
	"Merton":                 s2.LatLngFromDegrees(51.4098, -0.2108),
	"Newham":                 s2.LatLngFromDegrees(51.5255, 0.0352),
	"Redbridge":              s2.LatLngFromDegrees(51.5901, 0.0819),
	"Richmond Upon Thames":   s2.LatLngFromDegrees(51.4479, -0.3260),
	"Southwark":              s2.LatLngFromDegrees(51.4734, -0.0755),
	"Sutton":                 s2.LatLngFromDegrees(51.3618, -0.1945),
	"Tower Hamlets":          s2.LatLngFromDegrees(51.5099, -0.0059),
	"Waltham Forest":         s2.LatLngFromDegrees(51.5908, -0.0134),
	"Wandsworth":             s2.LatLngFromDegrees(51.4567, -0.1910),
	"Westminster":            s2.LatLngFromDegrees(51.4975, -0.1357),
}

// Centroid returns the centroid of a borough
func Centroid(name string) (s2.LatLng, bool) {
	ll, ok := centroids[name]
	return ll, ok
}

// DistanceMeters returns the great-circle distance between two points
func DistanceMeters(a, b s2.LatLng) float64 {
	return a.Distance(b).Radians() * EarthRadiusMeters
}

// Nearest returns the borough in set whose centroid is closest to (lat, lng).
// Boroughs without a known centroid are skipped; ok is false if none remain.
func Nearest(set []string, lat, lng float64) (name string, meters float64, ok bool) {
	p := s2.LatLngFromDegrees(lat, lng)
	meters = math.Inf(1)
	for _, b := range set {
		c, found := centroids[b]
		if !found {
			continue
		}
		if d := DistanceMeters(p, c); d < meters {
			name, meters, ok = b, d, true
		}
	}
	if !ok {
		return "", 0, false
	}
	return name, meters, true
}
