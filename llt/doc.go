// Package llt solves Prandtl's lifting-line equation with nonlinear
// sectional lift-curve laws, arbitrary chord/twist distributions, and
// full-span (asymmetric-capable) evaluation.
//
// Description:
//
//	The circulation over a finite wing is expanded as a sine series in the
//	angular coordinate theta (y = −(b/2)·cos(theta)):
//
//	    Γ(theta) = 2·b·V∞ · Σ_n A_n · sin(n·theta)
//
//	Enforcing the lifting-line relation at N interior collocation stations
//	yields an N×N system for the Fourier coefficients A_n. With a nonlinear
//	law Cl(alpha) the system's operating point depends on the solution, so
//	the solver iterates: linearize at the current effective angles, solve
//	the dense system, relax, then correct the effective angles so the
//	circulation-implied sectional lift matches the airfoil law.
//
// Algorithm Outline (per outer iteration, bounded by MaxIter):
//  1. mu_i = c_i·(dCl/dalpha)_i / (4b) at every station, using the current
//     iteration's slope field.
//  2. Assemble X[i][n-1] = sin(n·theta_i)·(1 + mu_i·n/sin(theta_i)) and
//     RHS_i = mu_i·(alphaGeo_i − alphaZero_i).
//  3. Solve X·A_new = RHS by dense LU. A singular or ill-conditioned X is
//     a hard ErrSingularSystem failure, never absorbed.
//  4. Relax: A ← damping·A_new + (1−damping)·A.
//  5. Reconstruct sectional lift: Cl_i = (4b/c_i)·Σ_n A_n·sin(n·theta_i).
//  6. Per-station Newton correction of the effective angle of attack so
//     that Cl(alphaEff_i) matches the reconstructed value; at most
//     MaxInnerIter updates per station per outer pass (default 1 — see
//     "Inner correction" below), slope guarded by 1e−12, early exit at
//     |delta| < 1e−8. The slope field is then re-evaluated at the
//     corrected angles for the next pass's mu; the zero-lift-angle
//     estimate keeps its initialization value throughout the solve.
//  7. Converged when ||A_new − A||₂ / (||A_new||₂ + 1e−12) < Tol, where A
//     is the relaxed iterate. Exhausting MaxIter is NOT an error: the best
//     estimate is returned with Converged=false and the caller decides.
//
// Inner correction:
//
//	The single-update default (MaxInnerIter=1) is deliberate: the outer
//	relaxation supplies global coupling every pass, so fully converging
//	the inner root-find against a stale circulation field buys little.
//	Raise MaxInnerIter via WithMaxInnerIter to converge each station's
//	root-find per pass instead.
//
// Entry points:
//
//   - Solve     — array-level contract: collocation angles, chords,
//     geometric angles, span, aspect ratio, lift-curve law.
//   - SolveWing — wing-level convenience: builds the grid from a
//     planform.Planform, samples chord/twist, derives the aspect ratio,
//     then delegates to Solve.
//   - WingCL    — the pure derivation CL = π·AR·A₁, reproducible by any
//     caller from a Result without re-running the solver.
//
// Complexity:
//
//   - Time:  O(MaxIter · N³) — the dense LU solve dominates each pass.
//   - Space: O(N²) for the system matrix.
//
// Errors (sentinel): see types.go. Configuration errors are surfaced
// before any linear algebra; non-finite values from the law or the solve
// surface as ErrNonFiniteValue rather than corrupting later iterations.
package llt
