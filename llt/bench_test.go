package llt_test

import (
	"math"
	"testing"

	"github.com/aerokit/liftline/airfoil"
	"github.com/aerokit/liftline/llt"
	"github.com/aerokit/liftline/span"
)

// benchmarkSolve runs the reference rectangular case at n stations with
// the given law. It resets the timer after grid setup and fails on
// unexpected errors.
func benchmarkSolve(b *testing.B, n int, curve airfoil.Curve) {
	grid, err := span.NewGrid(10, n)
	if err != nil {
		b.Fatalf("grid: %v", err)
	}
	chord := make([]float64, n)
	alphaGeo := make([]float64, n)
	for i := range chord {
		chord[i] = 1
		alphaGeo[i] = 14 * math.Pi / 180
	}
	p := llt.Problem{
		Theta:       grid.Thetas(),
		Chord:       chord,
		AlphaGeo:    alphaGeo,
		Span:        10,
		AspectRatio: 10,
		Curve:       curve,
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := llt.Solve(p); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Linear30 benchmarks the reference 30-station case with
// the linear thin-airfoil law.
func BenchmarkSolve_Linear30(b *testing.B) {
	benchmarkSolve(b, 30, airfoil.ThinAirfoil())
}

// BenchmarkSolve_Linear100 benchmarks a 100-station grid, where the dense
// LU solve dominates each outer pass.
func BenchmarkSolve_Linear100(b *testing.B) {
	benchmarkSolve(b, 100, airfoil.ThinAirfoil())
}

// BenchmarkSolve_Saturating30 benchmarks the nonlinear stall-like law at
// 30 stations.
func BenchmarkSolve_Saturating30(b *testing.B) {
	benchmarkSolve(b, 30, airfoil.NewSaturating(2*math.Pi, 1.5, 0))
}
