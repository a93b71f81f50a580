// Package planform sentinel errors and shared capability interface.
package planform

import "errors"

// Sentinel errors for planform construction.
var (
	// ErrNonPositiveSpan indicates a span value ≤ 0.
	ErrNonPositiveSpan = errors.New("planform: span must be positive")
	// ErrNonPositiveChord indicates a chord value ≤ 0.
	ErrNonPositiveChord = errors.New("planform: chord must be positive")
	// ErrNonPositiveArea indicates an area value ≤ 0.
	ErrNonPositiveArea = errors.New("planform: area must be positive")
	// ErrNilDistribution indicates a nil chord or twist function.
	ErrNilDistribution = errors.New("planform: chord and twist functions must be non-nil")
)

// Planform supplies wing geometry as pure functions of spanwise position.
//
// Span returns the full wingspan b. Chord and Twist are evaluated at
// positions y in [−b/2, +b/2]; the solver only queries interior
// collocation stations, never the tips. Area returns the planform area S,
// used to derive the aspect ratio b²/S.
type Planform interface {
	Span() float64
	Chord(y float64) float64
	Twist(y float64) float64
	Area() float64
}

// AspectRatio returns b²/S for the given planform.
func AspectRatio(p Planform) float64 {
	b := p.Span()

	return b * b / p.Area()
}
