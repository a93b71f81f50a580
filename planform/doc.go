// Package planform defines wing geometry providers for lifting-line
// computations.
//
// A Planform supplies the full span b, the chord distribution c(y), the
// geometric twist distribution t(y) and the planform area S, with y the
// spanwise position measured from the wing centerline (−b/2 at the left
// tip, +b/2 at the right tip). Angles are radians, lengths share one
// consistent linear unit.
//
// Shipped planforms:
//
//   - Rectangular — constant chord and twist.
//   - Tapered     — chord and twist vary linearly from root to tip,
//     symmetric about the centerline.
//   - Elliptic    — elliptic chord c(y) = c0·sqrt(1 − (2y/b)²).
//   - Func        — arbitrary chord/twist functions with caller-supplied
//     span and area.
//
// The aspect ratio b²/S, needed to derive the overall wing lift
// coefficient from the first Fourier harmonic, is available through
// AspectRatio.
//
// Errors (sentinel):
//
//   - ErrNonPositiveSpan  if a constructor receives span ≤ 0.
//   - ErrNonPositiveChord if a constructor receives a chord ≤ 0.
//   - ErrNonPositiveArea  if a Func planform receives area ≤ 0.
//   - ErrNilDistribution  if a Func planform receives a nil chord or
//     twist function.
package planform
