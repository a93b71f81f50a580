// Package span builds the interior collocation grid used by lifting-line
// solvers.
//
// The classical substitution y = −(b/2)·cos(theta) maps the angular
// coordinate theta ∈ (0, π) onto spanwise positions y ∈ (−b/2, +b/2).
// The grid places n stations at the uniform interior angles
//
//	theta_i = i·π/(n+1),  i = 1..n
//
// which deliberately excludes the endpoints 0 and π: they correspond to
// the wingtips, where the 1/sin(theta) term of the lifting-line system
// is singular.
//
// Guarantees:
//
//   - thetas are strictly increasing inside (0, π), no duplicates;
//   - positions are strictly increasing inside (−b/2, +b/2);
//   - no station ever coincides with a wingtip.
//
// Errors (sentinel):
//
//   - ErrTooFewStations  if n < 1.
//   - ErrNonPositiveSpan if span ≤ 0.
package span
