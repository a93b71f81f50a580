// Package liftline is an in-memory toolkit for classical lifting-line
// aerodynamics — from planform geometry primitives to a nonlinear
// Prandtl lifting-line solver with pluggable airfoil laws.
//
// 🚀 What is liftline?
//
//	A small, deterministic library that brings together:
//		• Airfoil laws: linear thin-airfoil and smooth stall-like Cl(alpha) curves
//		• Planforms: rectangular, linearly tapered, elliptic, or fully custom
//		• Collocation: the cosine spanwise grid y = -(b/2)·cos(theta)
//		• Solver: damped fixed-point iteration over the Fourier circulation
//		  series with a per-station Newton correction of the effective angle
//		  of attack
//
// ✨ Why choose liftline?
//
//   - Pluggable laws – chord, twist and Cl(alpha) are capabilities, not constants
//   - Explicit configuration – functional options, no process-wide state
//   - Honest results – non-convergence is reported, never silently clamped
//   - Deterministic – identical inputs produce identical outputs
//
// Under the hood, everything is organized under four subpackages:
//
//	airfoil/  — sectional lift-curve laws Cl(alpha) and their derivatives
//	planform/ — wing geometry providers: span, chord(y), twist(y), area
//	span/     — interior collocation grid on (0, π), wingtips excluded
//	llt/      — the nonlinear lifting-line solver and its result types
//
// Quick sketch of the pipeline:
//
//	planform ──┐
//	           ├──> span.Grid ──> llt.Solve ──> llt.Result{A, ClSection, WingCL}
//	airfoil ───┘
//
// Dive into llt's package documentation for the iteration scheme, the
// convergence contract and worked examples.
//
//	go get github.com/aerokit/liftline
package liftline
