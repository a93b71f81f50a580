package airfoil_test

import (
	"fmt"
	"math"

	"github.com/aerokit/liftline/airfoil"
)

// ExampleThinAirfoil evaluates the thin-airfoil-theory law at a 5° angle
// of attack: Cl = 2π·alpha, slope constant at 2π per radian.
func ExampleThinAirfoil() {
	law := airfoil.ThinAirfoil()
	cl, slope := law.Lift(5 * math.Pi / 180)
	fmt.Printf("Cl=%.3f slope=%.3f\n", cl, slope)
	// Output:
	// Cl=0.548 slope=6.283
}

// ExampleSaturating compares the stall-like law against its linear-range
// slope well past stall: the lift levels off below ClMax while the linear
// extrapolation keeps climbing.
func ExampleSaturating() {
	law := airfoil.NewSaturating(2*math.Pi, 1.2, 0)
	cl, _ := law.Lift(0.3)
	linear := 2 * math.Pi * 0.3
	fmt.Printf("saturating=%.2f linear=%.2f\n", cl, linear)
	// Output:
	// saturating=1.10 linear=1.88
}
