// Command diag sweeps directions through every frame transformation and
// its inverse, printing the worst round-trip error per pair. A healthy
// build reports errors at the floating-point noise floor.
package main

import (
	"fmt"
	"os"

	"github.com/sky/skycoord/internal/frame"
	"github.com/sky/skycoord/internal/sphere"
)

func main() {
	transformations := []frame.Transformation{
		frame.GalacticToICRS, frame.ICRSToGalactic,
		frame.EclipticToICRS, frame.ICRSToEcliptic,
		frame.GalacticToEcliptic, frame.EclipticToGalactic,
	}

	latitudes := []float64{-60, -30, 0, 30, 60}

	exitCode := 0
	for _, tr := range transformations {
		inv := tr.Inverse()
		var worst float64
		var worstPhi, worstTheta float64

		for _, theta := range latitudes {
			for phi := -180.0; phi < 180; phi++ {
				a, b, err := tr.Apply(phi, theta, true)
				if err != nil {
					fmt.Printf("%s(%.0f, %.0f): ERROR %v\n", tr, phi, theta, err)
					os.Exit(1)
				}
				phi2, theta2, err := inv.Apply(a, b, true)
				if err != nil {
					fmt.Printf("%s(%.3f, %.3f): ERROR %v\n", inv, a, b, err)
					os.Exit(1)
				}

				if sep := sphere.SeparationDeg(phi, theta, phi2, theta2); sep > worst {
					worst = sep
					worstPhi, worstTheta = phi, theta
				}
			}
		}

		status := "OK"
		if worst > 1e-9 {
			status = "FAIL"
			exitCode = 1
		}
		fmt.Printf("%-9s -> %-9s  worst round-trip %.3e deg at (%.0f, %.0f)  %s\n",
			tr, inv, worst, worstPhi, worstTheta, status)
	}

	// A fixed landmark for eyeballing: the galactic center in ICRS.
	l, b, err := frame.ICRSToGalactic.Apply(266.405, -28.936, true)
	if err != nil {
		fmt.Println("galactic center check: ERROR", err)
		os.Exit(1)
	}
	fmt.Printf("galactic center ICRS(266.405, -28.936) -> GAL(%.4f, %.4f)\n", l, b)

	os.Exit(exitCode)
}
