package llt_test

import (
	"fmt"
	"math"

	"github.com/aerokit/liftline/airfoil"
	"github.com/aerokit/liftline/llt"
	"github.com/aerokit/liftline/planform"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolveWing
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The classical sanity case: rectangular untwisted wing, mean chord 1 m,
//	aspect ratio 10 (span 10 m), uncambered thin-airfoil law Cl = 2π·alpha,
//	wing setting angle 14°, 30 interior stations.
//
// Expected behavior:
//
//	Converges within a handful of outer iterations to an overall wing lift
//	coefficient of about 1.23 — noticeably below the 2-D value 2π·alpha
//	because of the induced downwash the lifting line models.
//
// Complexity: O(MaxIter·N³) time, O(N²) memory.
func ExampleSolveWing() {
	wing, err := planform.NewRectangular(10, 1, 0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res, err := llt.SolveWing(wing, airfoil.ThinAirfoil(), 14*math.Pi/180, 30)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("converged=%v CL=%.2f\n", res.Converged, res.WingCL)
	// Output:
	// converged=true CL=1.23
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolve
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Array-level entry point with a hand-built three-station problem and a
//	loosened tolerance. Useful when the collocation data comes from
//	somewhere other than a Planform (a file, another discretization, …).
func ExampleSolve() {
	p := llt.Problem{
		Theta:       []float64{math.Pi / 4, math.Pi / 2, 3 * math.Pi / 4},
		Chord:       []float64{1, 1, 1},
		AlphaGeo:    []float64{0.1, 0.1, 0.1},
		Span:        8,
		AspectRatio: 8,
		Curve:       airfoil.ThinAirfoil(),
	}

	res, err := llt.Solve(p, llt.WithTol(1e-4), llt.WithDamping(1))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("converged=%v harmonics=%d\n", res.Converged, len(res.A))
	// Output:
	// converged=true harmonics=3
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleWingCL
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Re-derive the overall wing lift coefficient from a stored first
//	Fourier coefficient without re-running the solver: CL = π·AR·A₁.
func ExampleWingCL() {
	fmt.Printf("CL=%.4f\n", llt.WingCL(0.04, 10))
	// Output:
	// CL=1.2566
}
