package llt

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/aerokit/liftline/airfoil"
	"github.com/aerokit/liftline/planform"
	"github.com/aerokit/liftline/span"
)

// normGuard keeps the relative-change denominator away from zero when the
// coefficient vector itself is (near) zero.
const normGuard = 1e-12

// Solve runs the nonlinear lifting-line iteration for the given problem.
//
// Contracts:
//   - p passes validate (see types.go for the sentinel per violation);
//     validation completes before any linear algebra.
//   - The returned Result is always populated on success: on iteration
//     exhaustion it carries the best estimate with Converged=false.
//   - Deterministic: identical inputs and options yield identical results.
//
// Errors: configuration sentinels from validate; ErrSingularSystem when
// the influence matrix cannot be solved; ErrNonFiniteValue when the law
// or the solve produces NaN/Inf.
//
// Complexity: O(MaxIter·N³) time, O(N²) space.
func Solve(p Problem, opts ...Option) (Result, error) {
	// Stage 1 - configuration and input validation.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	n, err := validate(p, cfg)
	if err != nil {
		return Result{}, err
	}

	// Stage 2 - initial state: no induced effects assumed, so the
	// effective angles start at the geometric angles, and the pointwise
	// zero-lift angle is extracted from the law there. That estimate is
	// frozen for the whole solve; later passes re-evaluate only the slope.
	alphaEff := append([]float64(nil), p.AlphaGeo...)
	slope := make([]float64, n)
	alphaZero := make([]float64, n)
	for i := 0; i < n; i++ {
		if err = estimateZeroLift(p.Curve, alphaEff[i], &slope[i], &alphaZero[i]); err != nil {
			return Result{}, err
		}
	}

	// Stage 3 - iteration workspace, allocated once and reused.
	var (
		a         = make([]float64, n) // relaxed Fourier coefficients
		aNew      = make([]float64, n) // raw solution of the current pass
		mu        = make([]float64, n)
		clSection = make([]float64, n)
		x         = mat.NewDense(n, n, nil)
		rhs       = mat.NewVecDense(n, nil)
		sol       = mat.NewVecDense(n, nil)
		lu        mat.LU
	)

	iterations := 0
	converged := false

	// Stage 4 - outer relaxed fixed-point loop.
	for it := 0; it < cfg.MaxIter; it++ {
		iterations = it + 1

		// 4.1) Local influence parameter at the current operating point.
		for i := 0; i < n; i++ {
			mu[i] = p.Chord[i] * slope[i] / (4 * p.Span)
		}

		// 4.2) Assemble the influence matrix and right-hand side.
		for i := 0; i < n; i++ {
			sinTheta := math.Sin(p.Theta[i])
			for k := 1; k <= n; k++ {
				x.Set(i, k-1, math.Sin(float64(k)*p.Theta[i])*(1+mu[i]*float64(k)/sinTheta))
			}
			rhs.SetVec(i, mu[i]*(p.AlphaGeo[i]-alphaZero[i]))
		}

		// 4.3) Dense LU solve. Ill-conditioning is a hard failure of this
		// solve attempt; retry policy belongs to the caller.
		lu.Factorize(x)
		if err = lu.SolveVecTo(sol, false, rhs); err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrSingularSystem, err)
		}
		for i := 0; i < n; i++ {
			aNew[i] = sol.AtVec(i)
			if !isFinite(aNew[i]) {
				return Result{}, ErrNonFiniteValue
			}
		}

		// 4.4) Relaxation: A ← damping·A_new + (1−damping)·A.
		floats.Scale(1-cfg.Damping, a)
		floats.AddScaled(a, cfg.Damping, aNew)

		// 4.5) Sectional lift from the relaxed series.
		if err = reconstruct(p, a, clSection); err != nil {
			return Result{}, err
		}

		// 4.6) Per-station Newton correction of the effective angles,
		// then refresh the slope field there for the next pass's mu. The
		// zero-lift estimate keeps its initialization value.
		for i := 0; i < n; i++ {
			alphaEff[i], err = newtonStep(p.Curve, alphaEff[i], clSection[i], cfg.MaxInnerIter)
			if err != nil {
				return Result{}, err
			}
			if slope[i], err = lawSlope(p.Curve, alphaEff[i]); err != nil {
				return Result{}, err
			}
		}

		// 4.7) Relative change of the coefficients, measured between the
		// raw solution and the relaxed iterate.
		relChange := floats.Distance(aNew, a, 2) / (floats.Norm(aNew, 2) + normGuard)
		if relChange < cfg.Tol {
			converged = true

			break
		}
	}

	// Stage 5 - snapshot. a and clSection are loop-local, so the Result
	// owns them outright.
	return Result{
		A:          a,
		ClSection:  clSection,
		Iterations: iterations,
		Converged:  converged,
		WingCL:     WingCL(a[0], p.AspectRatio),
	}, nil
}

// SolveWing builds the array-level problem from a planform and delegates
// to Solve: cosine collocation grid over the planform's span, chord and
// twist sampled at the station positions, AlphaGeo = alphaWing + twist(y),
// aspect ratio b²/S from the planform's analytic area.
//
// alphaWing is the geometric wing setting angle in radians; n is the
// number of interior collocation stations.
//
// Errors: ErrNilPlanform, grid errors from span.NewGrid, and everything
// Solve returns.
func SolveWing(pf planform.Planform, curve airfoil.Curve, alphaWing float64, n int, opts ...Option) (Result, error) {
	if pf == nil {
		return Result{}, ErrNilPlanform
	}

	grid, err := span.NewGrid(pf.Span(), n)
	if err != nil {
		return Result{}, err
	}

	ys := grid.Positions()
	chord := make([]float64, n)
	alphaGeo := make([]float64, n)
	for i, y := range ys {
		chord[i] = pf.Chord(y)
		alphaGeo[i] = alphaWing + pf.Twist(y)
	}

	return Solve(Problem{
		Theta:       grid.Thetas(),
		Chord:       chord,
		AlphaGeo:    alphaGeo,
		Span:        pf.Span(),
		AspectRatio: planform.AspectRatio(pf),
		Curve:       curve,
	}, opts...)
}

// WingCL derives the overall wing lift coefficient from the first Fourier
// coefficient: CL = π·AR·A₁. Pure function of a solve result; classical
// theory puts the whole of total lift in the first harmonic.
func WingCL(a1, aspectRatio float64) float64 {
	return math.Pi * aspectRatio * a1
}

// reconstruct evaluates Cl_i = (4b/c_i)·Σ_k A_k·sin(k·theta_i) into dst.
// Returns ErrNonFiniteValue if the sum degenerates.
func reconstruct(p Problem, a, dst []float64) error {
	n := len(a)
	for i := 0; i < n; i++ {
		sum := 0.0
		for k := 1; k <= n; k++ {
			sum += a[k-1] * math.Sin(float64(k)*p.Theta[i])
		}
		dst[i] = (4 * p.Span / p.Chord[i]) * sum
		if !isFinite(dst[i]) {
			return ErrNonFiniteValue
		}
	}

	return nil
}

// estimateZeroLift evaluates the law at alpha and stores the slope and
// the pointwise zero-lift angle alpha − Cl/(dCl/dalpha), with the same
// slope guard as the Newton correction. Called once per station at
// initialization; the zero-lift estimate then stays fixed for the whole
// solve while the slope field is tracked separately via lawSlope.
func estimateZeroLift(curve airfoil.Curve, alpha float64, slope, alphaZero *float64) error {
	cl, dcl := curve.Lift(alpha)
	if !isFinite(cl) || !isFinite(dcl) {
		return ErrNonFiniteValue
	}
	*slope = dcl
	*alphaZero = alpha - cl/(dcl+slopeGuard)
	if !isFinite(*alphaZero) {
		return ErrNonFiniteValue
	}

	return nil
}

// lawSlope evaluates the law at alpha and returns the lift-curve slope,
// rejecting non-finite law outputs.
func lawSlope(curve airfoil.Curve, alpha float64) (float64, error) {
	cl, dcl := curve.Lift(alpha)
	if !isFinite(cl) || !isFinite(dcl) {
		return 0, ErrNonFiniteValue
	}

	return dcl, nil
}
