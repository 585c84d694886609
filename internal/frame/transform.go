package frame

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sky/skycoord/internal/angle"
	"github.com/sky/skycoord/internal/sphere"
)

// ErrUnknownTransformation reports a transformation name outside the six
// recognized frame pairs.
var ErrUnknownTransformation = errors.New("unknown transformation")

// Transformation identifies one of the six fixed frame rotations.
// The zero value is GalacticToICRS.
type Transformation int

const (
	GalacticToICRS Transformation = iota
	ICRSToGalactic
	EclipticToICRS
	ICRSToEcliptic
	GalacticToEcliptic
	EclipticToGalactic
)

var transformationNames = [...]string{
	GalacticToICRS:     "GAL2ICRS",
	ICRSToGalactic:     "ICRS2GAL",
	EclipticToICRS:     "ECL2ICRS",
	ICRSToEcliptic:     "ICRS2ECL",
	GalacticToEcliptic: "GAL2ECL",
	EclipticToGalactic: "ECL2GAL",
}

// ParseTransformation resolves a transformation name such as "ICRS2GAL",
// case-insensitively. Anything outside the six tokens is an error
// wrapping ErrUnknownTransformation, never a default.
func ParseTransformation(name string) (Transformation, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for tr, token := range transformationNames {
		if upper == token {
			return Transformation(tr), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownTransformation)
}

// String returns the canonical token, e.g. "GAL2ICRS".
func (tr Transformation) String() string {
	if tr < 0 || int(tr) >= len(transformationNames) {
		return fmt.Sprintf("Transformation(%d)", int(tr))
	}
	return transformationNames[tr]
}

// Inverse returns the transformation that undoes tr.
func (tr Transformation) Inverse() Transformation {
	switch tr {
	case GalacticToICRS:
		return ICRSToGalactic
	case ICRSToGalactic:
		return GalacticToICRS
	case EclipticToICRS:
		return ICRSToEcliptic
	case ICRSToEcliptic:
		return EclipticToICRS
	case GalacticToEcliptic:
		return EclipticToGalactic
	default:
		return GalacticToEcliptic
	}
}

// Matrix returns the fixed rotation matrix for tr.
func (tr Transformation) Matrix() Matrix3 {
	switch tr {
	case GalacticToICRS:
		return galacticToICRS
	case ICRSToGalactic:
		return icrsToGalactic
	case EclipticToICRS:
		return eclipticToICRS
	case ICRSToEcliptic:
		return icrsToEcliptic
	case GalacticToEcliptic:
		return galacticToEcliptic
	default:
		return eclipticToGalactic
	}
}

// Apply rotates the direction (phi, theta) from the source frame of tr
// into its destination frame. With inDegrees set, inputs are taken and
// outputs returned in degrees; otherwise everything is radians. The
// radius drops out: directions are treated as unit vectors.
func (tr Transformation) Apply(phi, theta float64, inDegrees bool) (float64, float64, error) {
	if inDegrees {
		phi = angle.Radians(phi)
		theta = angle.Radians(theta)
	}

	xyz := sphere.ToCartesian(1, phi, theta)
	rotated := tr.Matrix().MulVec(xyz)

	out, err := sphere.FromCartesian(rotated)
	if err != nil {
		return 0, 0, fmt.Errorf("transform %s: %w", tr, err)
	}

	if inDegrees {
		return angle.Degrees(out.Phi), angle.Degrees(out.Theta), nil
	}
	return out.Phi, out.Theta, nil
}

// Apply resolves name and applies the corresponding transformation; see
// Transformation.Apply for the unit contract.
func Apply(name string, phi, theta float64, inDegrees bool) (float64, float64, error) {
	tr, err := ParseTransformation(name)
	if err != nil {
		return 0, 0, err
	}
	return tr.Apply(phi, theta, inDegrees)
}
