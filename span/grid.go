package span

import (
	"errors"
	"math"
)

// Sentinel errors for grid construction.
var (
	// ErrTooFewStations indicates a station count below one.
	ErrTooFewStations = errors.New("span: station count must be at least 1")
	// ErrNonPositiveSpan indicates a span ≤ 0.
	ErrNonPositiveSpan = errors.New("span: span must be positive")
)

// Grid is an immutable interior collocation grid over a full wingspan.
// Construct it with NewGrid; the zero value is empty but safe to query.
type Grid struct {
	span   float64
	thetas []float64
	ys     []float64
}

// NewGrid builds the n-station cosine collocation grid for the given full
// span. theta_i = i·π/(n+1) for i = 1..n and y_i = −(span/2)·cos(theta_i),
// so positions run from the left half-span toward the right, tips excluded.
//
// Complexity: O(n) time and space.
func NewGrid(span float64, n int) (Grid, error) {
	if n < 1 {
		return Grid{}, ErrTooFewStations
	}
	if span <= 0 {
		return Grid{}, ErrNonPositiveSpan
	}

	thetas := make([]float64, n)
	ys := make([]float64, n)
	step := math.Pi / float64(n+1)
	for i := 0; i < n; i++ {
		theta := float64(i+1) * step
		thetas[i] = theta
		ys[i] = -(span / 2) * math.Cos(theta)
	}

	return Grid{span: span, thetas: thetas, ys: ys}, nil
}

// Len returns the number of collocation stations.
func (g Grid) Len() int { return len(g.thetas) }

// Span returns the full wingspan the grid was built for.
func (g Grid) Span() float64 { return g.span }

// Thetas returns a copy of the angular coordinates, strictly increasing
// in (0, π).
func (g Grid) Thetas() []float64 {
	return append([]float64(nil), g.thetas...)
}

// Positions returns a copy of the spanwise positions, strictly increasing
// in (−span/2, +span/2).
func (g Grid) Positions() []float64 {
	return append([]float64(nil), g.ys...)
}
