package airfoil

import "math"

// Curve is the sectional lift-curve capability consumed by the solver.
//
// Lift evaluates the law at the given angle of attack (radians) and
// returns the lift coefficient together with its derivative with respect
// to alpha. Implementations must be pure: same alpha, same outputs.
type Curve interface {
	Lift(alpha float64) (cl, slope float64)
}

// CurveFunc adapts a plain function to the Curve interface.
type CurveFunc func(alpha float64) (cl, slope float64)

// Lift calls f(alpha).
func (f CurveFunc) Lift(alpha float64) (cl, slope float64) {
	return f(alpha)
}

// Linear is the classical linear lift curve Cl = Slope·(alpha − AlphaZero).
// Its slope is constant, so the solver's Newton correction converges in a
// single step for this law.
type Linear struct {
	// Slope is the lift-curve slope dCl/dalpha, per radian.
	Slope float64
	// AlphaZero is the zero-lift angle of attack, radians.
	AlphaZero float64
}

// NewLinear returns a linear lift curve with the given slope (per radian)
// and zero-lift angle (radians).
func NewLinear(slope, alphaZero float64) Linear {
	return Linear{Slope: slope, AlphaZero: alphaZero}
}

// ThinAirfoil returns the thin-airfoil-theory law: slope 2π per radian,
// zero-lift angle at zero (uncambered section).
func ThinAirfoil() Linear {
	return Linear{Slope: 2 * math.Pi}
}

// Lift evaluates the linear law.
func (l Linear) Lift(alpha float64) (cl, slope float64) {
	return l.Slope * (alpha - l.AlphaZero), l.Slope
}

// Saturating is a smooth stall-like lift curve
//
//	Cl(alpha) = ClMax · tanh(Slope·(alpha − AlphaZero)/ClMax)
//
// which matches the linear law with the same Slope near AlphaZero and
// saturates at ±ClMax far from it. The derivative is analytic:
//
//	dCl/dalpha = Slope · (1 − tanh²(u)),  u = Slope·(alpha − AlphaZero)/ClMax
//
// so the slope decays toward zero past stall but never changes sign.
type Saturating struct {
	// Slope is the linear-range lift-curve slope, per radian.
	Slope float64
	// ClMax is the saturation lift coefficient (> 0).
	ClMax float64
	// AlphaZero is the zero-lift angle of attack, radians.
	AlphaZero float64
}

// NewSaturating returns a saturating lift curve with the given
// linear-range slope, saturation level and zero-lift angle.
func NewSaturating(slope, clMax, alphaZero float64) Saturating {
	return Saturating{Slope: slope, ClMax: clMax, AlphaZero: alphaZero}
}

// Lift evaluates the saturating law and its analytic derivative.
func (s Saturating) Lift(alpha float64) (cl, slope float64) {
	u := s.Slope * (alpha - s.AlphaZero) / s.ClMax
	t := math.Tanh(u)

	return s.ClMax * t, s.Slope * (1 - t*t)
}
