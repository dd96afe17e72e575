package views

import (
	"fmt"

	"github.com/okian/podium/internal/domain/types"
	"gonum.org/v1/gonum/interp"
)

// MinSplinePoints is the fewest distinct x values a not-a-knot cubic
// spline can be fitted through.
const MinSplinePoints = 4

// Smooth fits a not-a-knot cubic spline through the strictly increasing xs
// and samples it at n evenly spaced points from xs[0] to xs[len-1].
func Smooth(xs, ys []float64, n int) (types.Curve, error) {
	if len(xs) < MinSplinePoints {
		return types.Curve{}, fmt.Errorf("%w: got %d, need %d", ErrInsufficientPoints, len(xs), MinSplinePoints)
	}
	if n < 2 {
		return types.Curve{}, fmt.Errorf("%w: %d samples", ErrInsufficientPoints, n)
	}

	var spline interp.NotAKnotCubic
	if err := spline.Fit(xs, ys); err != nil {
		return types.Curve{}, fmt.Errorf("fit spline: %w", err)
	}

	lo, hi := xs[0], xs[len(xs)-1]
	step := (hi - lo) / float64(n-1)
	c := types.Curve{X: make([]float64, n), Y: make([]float64, n)}
	for i := 0; i < n; i++ {
		x := lo + float64(i)*step
		if i == n-1 {
			x = hi
		}
		c.X[i] = x
		c.Y[i] = spline.Predict(x)
	}
	return c, nil
}
