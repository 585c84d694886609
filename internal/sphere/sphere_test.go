package sphere

import (
	"errors"
	"math"
	"testing"
)

func TestToCartesianKnownDirections(t *testing.T) {
	tests := []struct {
		name       string
		r          float64
		phi, theta float64
		want       Vec3
	}{
		{"x axis", 1, 0, 0, Vec3{1, 0, 0}},
		{"y axis", 1, math.Pi / 2, 0, Vec3{0, 1, 0}},
		{"north pole", 1, 0, math.Pi / 2, Vec3{0, 0, 1}},
		{"south pole", 1, 0, -math.Pi / 2, Vec3{0, 0, -1}},
		{"negative x", 1, math.Pi, 0, Vec3{-1, 0, 0}},
		{"scaled", 2, 0, 0, Vec3{2, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToCartesian(tt.r, tt.phi, tt.theta)
			if math.Abs(got.X-tt.want.X) > 1e-15 ||
				math.Abs(got.Y-tt.want.Y) > 1e-15 ||
				math.Abs(got.Z-tt.want.Z) > 1e-15 {
				t.Errorf("ToCartesian(%v, %v, %v) = %+v, want %+v", tt.r, tt.phi, tt.theta, got, tt.want)
			}
		})
	}
}

// TestCartesianRoundTrip checks FromCartesian(ToCartesian(1, φ, θ))
// reproduces (φ, θ) across a grid spanning both hemispheres.
func TestCartesianRoundTrip(t *testing.T) {
	for phiDeg := -179.0; phiDeg <= 180; phiDeg += 13 {
		for thetaDeg := -89.0; thetaDeg <= 89; thetaDeg += 11 {
			phi := phiDeg * math.Pi / 180
			theta := thetaDeg * math.Pi / 180

			s, err := FromCartesian(ToCartesian(1, phi, theta))
			if err != nil {
				t.Fatalf("FromCartesian(φ=%v°, θ=%v°): %v", phiDeg, thetaDeg, err)
			}
			if math.Abs(s.R-1) > 1e-12 {
				t.Errorf("r = %v, want 1 (φ=%v°, θ=%v°)", s.R, phiDeg, thetaDeg)
			}
			if math.Abs(s.Phi-phi) > 1e-12 {
				t.Errorf("φ = %v, want %v (φ=%v°, θ=%v°)", s.Phi, phi, phiDeg, thetaDeg)
			}
			if math.Abs(s.Theta-theta) > 1e-12 {
				t.Errorf("θ = %v, want %v (φ=%v°, θ=%v°)", s.Theta, theta, phiDeg, thetaDeg)
			}
		}
	}
}

func TestFromCartesianZeroRadius(t *testing.T) {
	_, err := FromCartesian(Vec3{0, 0, 0})
	if !errors.Is(err, ErrZeroRadius) {
		t.Errorf("FromCartesian(origin): err = %v, want ErrZeroRadius", err)
	}
}

func TestFromCartesianRanges(t *testing.T) {
	// Phi stays in (−π, π], theta in [−π/2, π/2], regardless of octant.
	points := []Vec3{
		{1, 1, 1}, {-1, 1, 1}, {-1, -1, 1}, {1, -1, 1},
		{1, 1, -1}, {-1, 1, -1}, {-1, -1, -1}, {1, -1, -1},
	}
	for _, p := range points {
		s, err := FromCartesian(p)
		if err != nil {
			t.Fatalf("FromCartesian(%+v): %v", p, err)
		}
		if s.Phi <= -math.Pi || s.Phi > math.Pi {
			t.Errorf("φ = %v out of (−π, π] for %+v", s.Phi, p)
		}
		if s.Theta < -math.Pi/2 || s.Theta > math.Pi/2 {
			t.Errorf("θ = %v out of [−π/2, π/2] for %+v", s.Theta, p)
		}
	}
}

func TestSeparationDeg(t *testing.T) {
	tests := []struct {
		name                   string
		lon1, lat1, lon2, lat2 float64
		want                   float64
	}{
		{"coincident", 10, 20, 10, 20, 0},
		{"poles", 0, 90, 0, -90, 180},
		{"quarter turn on equator", 0, 0, 90, 0, 90},
		{"antipodal on equator", 0, 0, 180, 0, 180},
		{"equator to pole", 45, 0, 45, 90, 90},
		{"small separation", 0, 0, 0, 0.001, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SeparationDeg(tt.lon1, tt.lat1, tt.lon2, tt.lat2)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SeparationDeg = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeparationSymmetric(t *testing.T) {
	pairs := [][4]float64{
		{10, 20, 30, 40},
		{-120, -45, 60, 80},
		{359, 1, 1, -1},
	}
	for _, p := range pairs {
		d1 := SeparationDeg(p[0], p[1], p[2], p[3])
		d2 := SeparationDeg(p[2], p[3], p[0], p[1])
		if math.Abs(d1-d2) > 1e-12 {
			t.Errorf("SeparationDeg not symmetric for %v: %v vs %v", p, d1, d2)
		}
		if d1 < 0 || d1 > 180 {
			t.Errorf("SeparationDeg(%v) = %v out of [0, 180]", p, d1)
		}
	}
}
