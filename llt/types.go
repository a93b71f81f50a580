// Package llt core types, configuration options and sentinel errors.
package llt

import (
	"errors"

	"github.com/aerokit/liftline/airfoil"
)

// Sentinel errors returned by the solver.
//
// The first group classifies malformed input; it is surfaced by validate
// before any linear algebra runs. The second group classifies numerical
// failures of a solve attempt; retrying (e.g. with different damping or
// geometry) is the caller's decision.
var (
	// ErrNilCurve indicates a nil lift-curve law.
	ErrNilCurve = errors.New("llt: lift-curve law is nil")
	// ErrNilPlanform indicates a nil planform passed to SolveWing.
	ErrNilPlanform = errors.New("llt: planform is nil")
	// ErrTooFewStations indicates an empty collocation grid.
	ErrTooFewStations = errors.New("llt: at least one collocation station is required")
	// ErrLengthMismatch indicates Theta, Chord and AlphaGeo differ in length.
	ErrLengthMismatch = errors.New("llt: theta, chord and alphaGeo must have equal length")
	// ErrNonPositiveSpan indicates span ≤ 0.
	ErrNonPositiveSpan = errors.New("llt: span must be positive")
	// ErrNonPositiveChord indicates a station chord ≤ 0.
	ErrNonPositiveChord = errors.New("llt: chord must be positive at every station")
	// ErrNonPositiveAspectRatio indicates aspect ratio ≤ 0.
	ErrNonPositiveAspectRatio = errors.New("llt: aspect ratio must be positive")
	// ErrThetaOutOfRange indicates collocation angles outside (0, π) or not
	// strictly increasing.
	ErrThetaOutOfRange = errors.New("llt: collocation angles must be strictly increasing inside (0, π)")
	// ErrNonFiniteAlphaGeo indicates a NaN or Inf geometric angle of attack.
	ErrNonFiniteAlphaGeo = errors.New("llt: alphaGeo must be finite at every station")
	// ErrBadMaxIter indicates MaxIter < 1.
	ErrBadMaxIter = errors.New("llt: MaxIter must be at least 1")
	// ErrBadTol indicates Tol ≤ 0.
	ErrBadTol = errors.New("llt: Tol must be positive")
	// ErrBadDamping indicates Damping outside (0, 1].
	ErrBadDamping = errors.New("llt: Damping must lie in (0, 1]")
	// ErrBadMaxInnerIter indicates MaxInnerIter < 1.
	ErrBadMaxInnerIter = errors.New("llt: MaxInnerIter must be at least 1")

	// ErrSingularSystem indicates a singular or ill-conditioned influence
	// matrix at the dense-solve step (e.g. from degenerate geometry).
	ErrSingularSystem = errors.New("llt: singular or ill-conditioned system matrix")
	// ErrNonFiniteValue indicates a NaN or Inf produced by the lift-curve
	// law, the linear solve, or the sectional reconstruction.
	ErrNonFiniteValue = errors.New("llt: non-finite value encountered")
)

// Problem is the array-level solver input. All slices must share one
// length N ≥ 1; angles are radians, lengths share one consistent unit.
//
// Theta       – collocation angles, strictly increasing inside (0, π).
// Chord       – local chord per station, positive.
// AlphaGeo    – local geometric angle of attack per station (wing setting
//
//	angle plus local twist).
//
// Span        – full wingspan b > 0.
// AspectRatio – b²/S > 0; only used for the WingCL derivation.
// Curve       – the sectional lift-curve law Cl(alpha).
type Problem struct {
	Theta       []float64
	Chord       []float64
	AlphaGeo    []float64
	Span        float64
	AspectRatio float64
	Curve       airfoil.Curve
}

// Options configures the solver iteration.
//
// MaxIter      – outer iteration bound (≥ 1). Reaching it is reported via
//
//	Result.Converged=false, not as an error.
//
// Tol          – relative-change convergence tolerance on the Fourier
//
//	coefficients (> 0).
//
// Damping      – relaxation factor in (0, 1]; 1 disables relaxation.
// MaxInnerIter – Newton updates per station per outer pass (≥ 1). The
//
//	default of 1 keeps the single-step inner correction;
//	see the package documentation before raising it.
type Options struct {
	MaxIter      int
	Tol          float64
	Damping      float64
	MaxInnerIter int
}

// Option is a functional option for configuring the solver.
type Option func(*Options)

// WithMaxIter sets the outer iteration bound.
// Must be ≥ 1; out-of-domain values panic (invalid configuration).
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadMaxIter.Error())
		}
		o.MaxIter = n
	}
}

// WithTol sets the relative-change convergence tolerance.
// Must be > 0; out-of-domain values panic (invalid configuration).
func WithTol(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic(ErrBadTol.Error())
		}
		o.Tol = tol
	}
}

// WithDamping sets the relaxation factor.
// Must lie in (0, 1]; out-of-domain values panic (invalid configuration).
func WithDamping(d float64) Option {
	return func(o *Options) {
		if d <= 0 || d > 1 {
			panic(ErrBadDamping.Error())
		}
		o.Damping = d
	}
}

// WithMaxInnerIter sets the per-station Newton update bound per outer pass.
// Must be ≥ 1; out-of-domain values panic (invalid configuration).
func WithMaxInnerIter(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadMaxInnerIter.Error())
		}
		o.MaxInnerIter = n
	}
}

// DefaultOptions returns the standard configuration:
//
//   - MaxIter:      50
//   - Tol:          1e-6
//   - Damping:      0.8
//   - MaxInnerIter: 1 (single-step inner correction)
func DefaultOptions() Options {
	return Options{
		MaxIter:      50,
		Tol:          1e-6,
		Damping:      0.8,
		MaxInnerIter: 1,
	}
}

// Result is the immutable outcome of one solve invocation. It is always
// populated — on iteration exhaustion it carries the best available
// estimate with Converged=false.
type Result struct {
	// A holds the Fourier coefficients A_n, n = 1..N, in harmonic order.
	A []float64
	// ClSection holds the sectional lift coefficients, aligned to the
	// input stations.
	ClSection []float64
	// Iterations is the number of outer iterations actually performed.
	Iterations int
	// Converged reports whether the relative-change test was satisfied
	// within MaxIter iterations.
	Converged bool
	// WingCL is the overall wing lift coefficient π·AR·A₁.
	WingCL float64
}
