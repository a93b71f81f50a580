// Package airfoil defines sectional lift-curve laws for lifting-line
// computations.
//
// A lift-curve law maps an effective angle of attack (radians) to the
// sectional lift coefficient Cl and its slope dCl/dalpha. The solver in
// package llt drives a Newton correction with the slope, so every law
// must return both values from a single evaluation.
//
// Laws:
//
//   - Linear     — Cl = Slope·(alpha − AlphaZero); the classical linear
//     lift curve. ThinAirfoil() is the 2π-per-radian special case.
//   - Saturating — Cl = ClMax·tanh(Slope·(alpha − AlphaZero)/ClMax); a
//     smooth stall-like law that is linear near AlphaZero and levels off
//     at ±ClMax. Useful for exercising the nonlinear solve path.
//   - CurveFunc  — adapter turning any func(alpha) (cl, slope) into a Curve.
//
// Contracts:
//
//   - Laws are total functions: evaluable at any real angle, including
//     negative angles. They never return an error; a law that produces
//     non-finite values is rejected by the solver, not here.
//   - Angles are radians; Cl and the slope are dimensionless (slope per
//     radian).
package airfoil
