package llt

import "math"

// validate checks Options and Problem before any linear algebra runs and
// returns the station count N. Checks run in a fixed order so callers get
// deterministic errors for multiply-invalid input.
//
// Complexity: O(N).
func validate(p Problem, cfg Options) (int, error) {
	// 1) Options first: a malformed configuration invalidates any solve.
	if cfg.MaxIter < 1 {
		return 0, ErrBadMaxIter
	}
	if cfg.Tol <= 0 || math.IsNaN(cfg.Tol) {
		return 0, ErrBadTol
	}
	if !(cfg.Damping > 0 && cfg.Damping <= 1) {
		return 0, ErrBadDamping
	}
	if cfg.MaxInnerIter < 1 {
		return 0, ErrBadMaxInnerIter
	}

	// 2) The lift-curve law is mandatory.
	if p.Curve == nil {
		return 0, ErrNilCurve
	}

	// 3) Shape: equal, non-empty slice lengths.
	n := len(p.Theta)
	if n < 1 {
		return 0, ErrTooFewStations
	}
	if len(p.Chord) != n || len(p.AlphaGeo) != n {
		return 0, ErrLengthMismatch
	}

	// 4) Scalars.
	if !(p.Span > 0) || math.IsInf(p.Span, 1) {
		return 0, ErrNonPositiveSpan
	}
	if !(p.AspectRatio > 0) || math.IsInf(p.AspectRatio, 1) {
		return 0, ErrNonPositiveAspectRatio
	}

	// 5) Station data. The strict (0, π) window also rejects NaN angles,
	//    and the positivity check rejects NaN chords.
	prev := 0.0
	for i := 0; i < n; i++ {
		if !(p.Theta[i] > prev && p.Theta[i] < math.Pi) {
			return 0, ErrThetaOutOfRange
		}
		prev = p.Theta[i]
		if !(p.Chord[i] > 0) || math.IsInf(p.Chord[i], 1) {
			return 0, ErrNonPositiveChord
		}
		if math.IsNaN(p.AlphaGeo[i]) || math.IsInf(p.AlphaGeo[i], 0) {
			return 0, ErrNonFiniteAlphaGeo
		}
	}

	return n, nil
}
