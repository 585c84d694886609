// Package frame provides the fixed rotations between the galactic, ICRS
// (equatorial) and ecliptic reference frames.
//
// The six frame rotations are constant 3×3 orthogonal matrices. The
// galactic orientation follows the J2000 pole values in Hipparcos
// Explanatory Vol 1 section 1.5; see also Murray 1983 section 10.2 and
// van Altena et al. 2012, "Astrometry for Astrophysics" chapter 4.5.
// The ecliptic rotation uses the J2000 mean obliquity (IAU 1976,
// 84381.448 arcsec). No precession, nutation or proper-motion model is
// applied; these are fixed-epoch frame rotations only.
package frame

import (
	"errors"
	"fmt"
	"math"

	"github.com/sky/skycoord/internal/algebra"
	"github.com/sky/skycoord/internal/sphere"
)

// ErrUnknownAxis reports a rotation axis outside x, y, z.
var ErrUnknownAxis = errors.New("unknown rotation axis")

// Matrix3 is a fixed-size 3×3 rotation matrix with value semantics; the
// transformation path never allocates.
type Matrix3 [3][3]float64

// MulVec returns the matrix-vector product M·v.
func (m Matrix3) MulVec(v sphere.Vec3) sphere.Vec3 {
	return sphere.Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Mul returns the matrix product M·o.
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	var c Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return c
}

// Transposed returns the transpose, which for a rotation is its inverse.
func (m Matrix3) Transposed() Matrix3 {
	var c Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[j][i] = m[i][j]
		}
	}
	return c
}

// Rows returns the matrix as a generic algebra.Matrix, mainly so results
// can be checked against the dynamically-sized algebra layer.
func (m Matrix3) Rows() algebra.Matrix {
	return algebra.Matrix{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
}

// ElementaryRotation builds the right-handed frame rotation about a
// coordinate axis ("x", "y" or "z", case-insensitive) by the given angle
// in radians, in the convention of Hipparcos Vol 1 eq 1.5.17:
//
//	Rx(a) = | 1   0    0 |   Ry(a) = | c  0 -s |   Rz(a) = |  c  s  0 |
//	        | 0   c    s |           | 0  1  0 |           | -s  c  0 |
//	        | 0  -s    c |           | s  0  c |           |  0  0  1 |
//
// Any other axis value is an error, never a silent identity.
func ElementaryRotation(axis string, angle float64) (Matrix3, error) {
	s, c := math.Sincos(angle)
	switch axis {
	case "x", "X":
		return Matrix3{
			{1, 0, 0},
			{0, c, s},
			{0, -s, c},
		}, nil
	case "y", "Y":
		return Matrix3{
			{c, 0, -s},
			{0, 1, 0},
			{s, 0, c},
		}, nil
	case "z", "Z":
		return Matrix3{
			{c, s, 0},
			{-s, c, 0},
			{0, 0, 1},
		}, nil
	default:
		return Matrix3{}, fmt.Errorf("axis %q: %w", axis, ErrUnknownAxis)
	}
}

// icrsToGalactic is the ICRS→galactic rotation A_G' from Hipparcos Vol 1
// eq 1.5.11 (J2000 galactic pole at RA 192.85948°, Dec 27.12825°, node
// at galactic longitude 32.93192°).
var icrsToGalactic = Matrix3{
	{-0.0548755604162154, -0.8734370902348850, -0.4838350155487132},
	{+0.4941094278755837, -0.4448296299600112, +0.7469822444972189},
	{-0.8676661490190047, -0.1980763734312015, +0.4559837761750669},
}

// icrsToEcliptic is Rx(ε) for the J2000 mean obliquity
// ε = 84381.448″ = 23.43929111°.
var icrsToEcliptic = Matrix3{
	{1, 0, 0},
	{0, +0.9174820620691818, +0.3977771559319137},
	{0, -0.3977771559319137, +0.9174820620691818},
}

// The remaining four constants are derived once at startup so that the
// mutual-transpose and composition invariants hold exactly:
// GAL2ECL = ICRS2ECL · GAL2ICRS, and each A2B is the transpose of B2A.
var (
	galacticToICRS     = icrsToGalactic.Transposed()
	eclipticToICRS     = icrsToEcliptic.Transposed()
	galacticToEcliptic = icrsToEcliptic.Mul(galacticToICRS)
	eclipticToGalactic = galacticToEcliptic.Transposed()
)
