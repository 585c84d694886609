// Package sphere provides spherical/Cartesian coordinate conversion and
// great-circle angular separation.
//
// Angles follow the astronomical convention: the latitude-like angle is
// an elevation (declination, galactic latitude) measured from the
// equatorial plane, not a colatitude measured from the pole.
package sphere

import (
	"errors"
	"math"

	"github.com/sky/skycoord/internal/angle"
)

// ErrZeroRadius reports a Cartesian point at the origin, whose direction
// on the sphere is undefined.
var ErrZeroRadius = errors.New("point is at distance zero")

// Vec3 is a Cartesian vector in an arbitrary reference frame.
type Vec3 struct {
	X, Y, Z float64
}

// Spherical holds spherical coordinates: radius, longitude-like angle
// phi and latitude-like angle theta, both in radians.
type Spherical struct {
	R     float64
	Phi   float64 // longitude: right ascension, galactic/ecliptic longitude
	Theta float64 // latitude: declination, galactic/ecliptic latitude
}

// ToCartesian converts spherical coordinates (angles in radians) to a
// Cartesian vector:
//
//	x = r·cosφ·cosθ, y = r·sinφ·cosθ, z = r·sinθ
func ToCartesian(r, phi, theta float64) Vec3 {
	sinPhi, cosPhi := math.Sincos(phi)
	sinTheta, cosTheta := math.Sincos(theta)
	return Vec3{
		X: r * cosPhi * cosTheta,
		Y: r * sinPhi * cosTheta,
		Z: r * sinTheta,
	}
}

// FromCartesian converts a Cartesian vector to spherical coordinates.
// Phi is in (−π, π], theta in [−π/2, π/2]. The origin has no direction
// and returns ErrZeroRadius.
func FromCartesian(v Vec3) (Spherical, error) {
	rCylSq := v.X*v.X + v.Y*v.Y
	r := math.Sqrt(rCylSq + v.Z*v.Z)
	if r == 0 {
		return Spherical{}, ErrZeroRadius
	}
	return Spherical{
		R:     r,
		Phi:   math.Atan2(v.Y, v.X),
		Theta: math.Atan2(v.Z, math.Sqrt(rCylSq)),
	}, nil
}

// SeparationRad returns the great-circle angular separation between two
// points given as (longitude, latitude) pairs in radians. The haversine
// form is stable for small separations; the result is in [0, π].
func SeparationRad(lon1, lat1, lon2, lat2 float64) float64 {
	sinLat := math.Sin((lat1 - lat2) / 2)
	sinLon := math.Sin((lon1 - lon2) / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	return 2 * math.Asin(math.Sqrt(h))
}

// SeparationDeg is SeparationRad with all angles in degrees and the
// result in [0, 180].
func SeparationDeg(lon1, lat1, lon2, lat2 float64) float64 {
	return angle.Degrees(SeparationRad(
		angle.Radians(lon1), angle.Radians(lat1),
		angle.Radians(lon2), angle.Radians(lat2),
	))
}
