package llt

import (
	"math"

	"github.com/aerokit/liftline/airfoil"
)

const (
	// slopeGuard regularizes the Newton denominator against near-zero
	// lift-curve slopes (e.g. a saturating law deep past stall).
	slopeGuard = 1e-12
	// innerTol terminates the inner correction once an update is this small.
	innerTol = 1e-8
)

// newtonStep corrects one station's effective angle of attack so that the
// law's Cl(alphaEff) approaches clTarget, the circulation-implied sectional
// lift. It applies at most maxIter damped-free Newton updates
//
//	alphaEff ← alphaEff − (Cl(alphaEff) − clTarget) / (dCl/dalpha + 1e−12)
//
// exiting early once |update| < 1e−8. State in, state out: the caller owns
// the field; stations are independent.
//
// Returns ErrNonFiniteValue if the law produces a NaN/Inf or the update
// leaves the finite range — a diverging station must surface, not leak
// into the next outer iteration.
func newtonStep(curve airfoil.Curve, alphaEff, clTarget float64, maxIter int) (float64, error) {
	for j := 0; j < maxIter; j++ {
		cl, slope := curve.Lift(alphaEff)
		if !isFinite(cl) || !isFinite(slope) {
			return 0, ErrNonFiniteValue
		}
		delta := (cl - clTarget) / (slope + slopeGuard)
		alphaEff -= delta
		if !isFinite(alphaEff) {
			return 0, ErrNonFiniteValue
		}
		if math.Abs(delta) < innerTol {
			break
		}
	}

	return alphaEff, nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
