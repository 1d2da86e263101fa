// Package escape evaluates how quickly points of the plane escape under
// iteration of a quadratic map.
package escape

import (
	"github.com/willbeason/fractal-gallery/pkg/transforms"
	"math"
)

const (
	MaxIterations = 256
	Bailout       = 2.0
)

// Result is the outcome of iterating a single point.
type Result struct {
	// Iterations is the number of steps taken before the orbit left the
	// bailout circle, or the iteration cap if it never did.
	Iterations int
	Escaped    bool
}

// Evaluator iterates a map from z = 0 until the orbit escapes or the
// iteration cap is reached.
type Evaluator struct {
	Map           transforms.Quadratic
	MaxIterations int
	Bailout       float64
}

// Default returns the evaluator for the Mandelbrot set with a cap of 256
// iterations and a bailout radius of 2.
func Default() Evaluator {
	return Evaluator{
		Map:           transforms.Mandelbrot{},
		MaxIterations: MaxIterations,
		Bailout:       Bailout,
	}
}

// Evaluate iterates c = (cReal, cImag).
//
// The modulus is checked before every step, so the returned count is the
// number of completed steps at the moment the orbit is first seen outside
// the bailout circle.
func (e Evaluator) Evaluate(cReal, cImag float64) Result {
	zx, zy := 0.0, 0.0
	count := 0
	for count < e.MaxIterations && math.Sqrt(zx*zx+zy*zy) <= e.Bailout {
		zx, zy = e.Map.Next(zx, zy, cReal, cImag)
		count++
	}

	return Result{
		Iterations: count,
		Escaped:    count < e.MaxIterations,
	}
}
