package frame

import (
	"errors"
	"math"
	"testing"

	"github.com/sky/skycoord/internal/sphere"
)

func TestParseTransformation(t *testing.T) {
	tests := []struct {
		in   string
		want Transformation
	}{
		{"GAL2ICRS", GalacticToICRS},
		{"ICRS2GAL", ICRSToGalactic},
		{"ECL2ICRS", EclipticToICRS},
		{"ICRS2ECL", ICRSToEcliptic},
		{"GAL2ECL", GalacticToEcliptic},
		{"ECL2GAL", EclipticToGalactic},
		{"gal2icrs", GalacticToICRS},
		{"Icrs2Gal", ICRSToGalactic},
		{"  ecl2gal ", EclipticToGalactic},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTransformation(tt.in)
			if err != nil {
				t.Fatalf("ParseTransformation(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseTransformation(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTransformationUnknown(t *testing.T) {
	for _, name := range []string{"", "GAL2GAL", "ICRS2TEME", "galactic", "GAL2ICRS2ECL"} {
		_, err := ParseTransformation(name)
		if !errors.Is(err, ErrUnknownTransformation) {
			t.Errorf("ParseTransformation(%q): err = %v, want ErrUnknownTransformation", name, err)
		}
	}
}

func TestTransformationString(t *testing.T) {
	for _, tr := range allTransformations {
		parsed, err := ParseTransformation(tr.String())
		if err != nil {
			t.Fatalf("ParseTransformation(%q): %v", tr.String(), err)
		}
		if parsed != tr {
			t.Errorf("round trip %v -> %q -> %v", tr, tr.String(), parsed)
		}
	}
}

// TestApplyRoundTrip applies each transformation followed by its inverse
// across a longitude/latitude grid and requires the original direction
// back within 1e-9 degrees of arc.
func TestApplyRoundTrip(t *testing.T) {
	for _, tr := range allTransformations {
		t.Run(tr.String(), func(t *testing.T) {
			inv := tr.Inverse()
			for phi := -180.0; phi <= 180; phi += 20 {
				for theta := -90.0; theta <= 90; theta += 15 {
					a, b, err := tr.Apply(phi, theta, true)
					if err != nil {
						t.Fatalf("Apply(%v, %v): %v", phi, theta, err)
					}
					phi2, theta2, err := inv.Apply(a, b, true)
					if err != nil {
						t.Fatalf("inverse Apply(%v, %v): %v", a, b, err)
					}

					// Compare as directions: longitude is degenerate at
					// the poles and wraps at ±180.
					sep := sphere.SeparationDeg(phi, theta, phi2, theta2)
					if sep > 1e-9 {
						t.Errorf("round trip (%v, %v) -> (%v, %v): separation %.3e deg",
							phi, theta, phi2, theta2, sep)
					}
				}
			}
		})
	}
}

// TestApplyRadiansMatchesDegrees checks the symmetric unit contract:
// the same direction through the radian and degree paths agrees.
func TestApplyRadiansMatchesDegrees(t *testing.T) {
	const phiDeg, thetaDeg = 123.4, -56.7

	aDeg, bDeg, err := ICRSToGalactic.Apply(phiDeg, thetaDeg, true)
	if err != nil {
		t.Fatalf("degree Apply: %v", err)
	}
	aRad, bRad, err := ICRSToGalactic.Apply(phiDeg*math.Pi/180, thetaDeg*math.Pi/180, false)
	if err != nil {
		t.Fatalf("radian Apply: %v", err)
	}

	if diff := math.Abs(aDeg - aRad*180/math.Pi); diff > 1e-10 {
		t.Errorf("longitude: degree path %v, radian path %v", aDeg, aRad*180/math.Pi)
	}
	if diff := math.Abs(bDeg - bRad*180/math.Pi); diff > 1e-10 {
		t.Errorf("latitude: degree path %v, radian path %v", bDeg, bRad*180/math.Pi)
	}
}

// TestGalacticCenter checks ICRS2GAL against the sky: the galactic
// center (RA 266.4°, Dec −28.9° in ICRS) must land near galactic
// (l, b) = (0, 0).
func TestGalacticCenter(t *testing.T) {
	l, b, err := ICRSToGalactic.Apply(266.4, -28.9, true)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if sep := sphere.SeparationDeg(l, b, 0, 0); sep > 1.0 {
		t.Errorf("galactic center maps to (l=%v, b=%v), %.3f deg from origin", l, b, sep)
	}
}

// TestGalacticPole checks the J2000 north galactic pole (RA 192.85948°,
// Dec 27.12825°) maps to galactic latitude +90°.
func TestGalacticPole(t *testing.T) {
	_, b, err := ICRSToGalactic.Apply(192.85948, 27.12825, true)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if math.Abs(b-90) > 1e-4 {
		t.Errorf("galactic pole latitude = %v, want 90", b)
	}
}

// TestEclipticPlane checks that a point on the ecliptic stays at zero
// ecliptic latitude: the June solstice direction (RA 90°, Dec +ε).
func TestEclipticPlane(t *testing.T) {
	const obliquityDeg = 84381.448 / 3600

	lon, lat, err := ICRSToEcliptic.Apply(90, obliquityDeg, true)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if math.Abs(lat) > 1e-9 {
		t.Errorf("solstice ecliptic latitude = %v, want 0", lat)
	}
	if math.Abs(lon-90) > 1e-9 {
		t.Errorf("solstice ecliptic longitude = %v, want 90", lon)
	}
}

func TestApplyByName(t *testing.T) {
	a1, b1, err := Apply("icrs2gal", 266.4, -28.9, true)
	if err != nil {
		t.Fatalf("Apply by name: %v", err)
	}
	a2, b2, err := ICRSToGalactic.Apply(266.4, -28.9, true)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if a1 != a2 || b1 != b2 {
		t.Errorf("Apply by name = (%v, %v), direct = (%v, %v)", a1, b1, a2, b2)
	}

	if _, _, err := Apply("ICRS2TEME", 0, 0, true); !errors.Is(err, ErrUnknownTransformation) {
		t.Errorf("Apply unknown name: err = %v, want ErrUnknownTransformation", err)
	}
}
