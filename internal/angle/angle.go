// Package angle provides angle unit conversions and sexagesimal parsing.
//
// Conversion helpers are pure, total functions. The parsers accept
// colon-delimited (or caller-chosen delimiter) degree and hour-angle
// strings and report malformed input with errors wrapping ErrFormat.
package angle

import "math"

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// ArcsecToDegrees converts arcseconds to degrees.
func ArcsecToDegrees(arcsec float64) float64 {
	return arcsec / 3600
}

// ArcminToDegrees converts arcminutes to degrees.
func ArcminToDegrees(arcmin float64) float64 {
	return arcmin / 60
}

// ArcsecToRadians converts arcseconds to radians.
func ArcsecToRadians(arcsec float64) float64 {
	return Radians(ArcsecToDegrees(arcsec))
}

// ArcminToRadians converts arcminutes to radians.
func ArcminToRadians(arcmin float64) float64 {
	return Radians(ArcminToDegrees(arcmin))
}
