package planform

import "math"

// Rectangular is a constant-chord, constant-twist planform.
// Area = span·chord, aspect ratio = span/chord.
type Rectangular struct {
	span  float64
	chord float64
	twist float64
}

// NewRectangular returns a rectangular planform with the given span,
// chord (both > 0) and uniform geometric twist (radians).
func NewRectangular(span, chord, twist float64) (Rectangular, error) {
	if span <= 0 {
		return Rectangular{}, ErrNonPositiveSpan
	}
	if chord <= 0 {
		return Rectangular{}, ErrNonPositiveChord
	}

	return Rectangular{span: span, chord: chord, twist: twist}, nil
}

// Span returns the full wingspan.
func (r Rectangular) Span() float64 { return r.span }

// Chord returns the constant chord, independent of y.
func (r Rectangular) Chord(float64) float64 { return r.chord }

// Twist returns the constant twist, independent of y.
func (r Rectangular) Twist(float64) float64 { return r.twist }

// Area returns span·chord.
func (r Rectangular) Area() float64 { return r.span * r.chord }

// Tapered is a linearly tapered planform, symmetric about the centerline:
// chord and twist vary linearly in |2y/b| from their root values at y=0
// to their tip values at y=±b/2. Area is the trapezoid value
// b·(rootChord+tipChord)/2.
type Tapered struct {
	span      float64
	rootChord float64
	tipChord  float64
	rootTwist float64
	tipTwist  float64
}

// NewTapered returns a symmetric linearly tapered planform. Span and both
// chords must be positive; twists (radians) are unrestricted, a tip twist
// below the root twist models washout.
func NewTapered(span, rootChord, tipChord, rootTwist, tipTwist float64) (Tapered, error) {
	if span <= 0 {
		return Tapered{}, ErrNonPositiveSpan
	}
	if rootChord <= 0 || tipChord <= 0 {
		return Tapered{}, ErrNonPositiveChord
	}

	return Tapered{
		span:      span,
		rootChord: rootChord,
		tipChord:  tipChord,
		rootTwist: rootTwist,
		tipTwist:  tipTwist,
	}, nil
}

// Span returns the full wingspan.
func (t Tapered) Span() float64 { return t.span }

// Chord interpolates linearly from root to tip in |2y/b|.
func (t Tapered) Chord(y float64) float64 {
	return t.rootChord + (t.tipChord-t.rootChord)*t.fraction(y)
}

// Twist interpolates linearly from root to tip in |2y/b|.
func (t Tapered) Twist(y float64) float64 {
	return t.rootTwist + (t.tipTwist-t.rootTwist)*t.fraction(y)
}

// Area returns the trapezoid planform area b·(cRoot+cTip)/2.
func (t Tapered) Area() float64 {
	return t.span * (t.rootChord + t.tipChord) / 2
}

// fraction maps y to the tip fraction |2y/b|, clamped to [0, 1] so that
// evaluation a hair outside the tips stays well defined.
func (t Tapered) fraction(y float64) float64 {
	f := math.Abs(2 * y / t.span)
	if f > 1 {
		f = 1
	}

	return f
}

// Elliptic is the elliptic planform c(y) = c0·sqrt(1 − (2y/b)²) with
// constant twist. Area = π·b·c0/4.
type Elliptic struct {
	span      float64
	rootChord float64
	twist     float64
}

// NewElliptic returns an elliptic planform with the given span and root
// chord (both > 0) and uniform geometric twist (radians).
func NewElliptic(span, rootChord, twist float64) (Elliptic, error) {
	if span <= 0 {
		return Elliptic{}, ErrNonPositiveSpan
	}
	if rootChord <= 0 {
		return Elliptic{}, ErrNonPositiveChord
	}

	return Elliptic{span: span, rootChord: rootChord, twist: twist}, nil
}

// Span returns the full wingspan.
func (e Elliptic) Span() float64 { return e.span }

// Chord returns c0·sqrt(1 − (2y/b)²), zero beyond the tips.
func (e Elliptic) Chord(y float64) float64 {
	f := 2 * y / e.span
	r := 1 - f*f
	if r < 0 {
		r = 0
	}

	return e.rootChord * math.Sqrt(r)
}

// Twist returns the constant twist, independent of y.
func (e Elliptic) Twist(float64) float64 { return e.twist }

// Area returns π·b·c0/4.
func (e Elliptic) Area() float64 {
	return math.Pi * e.span * e.rootChord / 4
}

// Distribution is a spanwise scalar law: position in, value out.
type Distribution func(y float64) float64

// Func is a fully custom planform built from arbitrary chord and twist
// distributions. The caller supplies the planform area explicitly because
// it cannot be derived from the distributions without quadrature.
type Func struct {
	span  float64
	area  float64
	chord Distribution
	twist Distribution
}

// NewFunc returns a custom planform. Span and area must be positive and
// both distributions non-nil; the chord distribution must stay positive
// over the open span (validated per station by the solver).
func NewFunc(span, area float64, chord, twist Distribution) (Func, error) {
	if span <= 0 {
		return Func{}, ErrNonPositiveSpan
	}
	if area <= 0 {
		return Func{}, ErrNonPositiveArea
	}
	if chord == nil || twist == nil {
		return Func{}, ErrNilDistribution
	}

	return Func{span: span, area: area, chord: chord, twist: twist}, nil
}

// Span returns the full wingspan.
func (f Func) Span() float64 { return f.span }

// Chord evaluates the chord distribution at y.
func (f Func) Chord(y float64) float64 { return f.chord(y) }

// Twist evaluates the twist distribution at y.
func (f Func) Twist(y float64) float64 { return f.twist(y) }

// Area returns the caller-supplied planform area.
func (f Func) Area() float64 { return f.area }
