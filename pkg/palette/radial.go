package palette

import (
	"github.com/willbeason/fractal-gallery/pkg/escape"
	"github.com/willbeason/fractal-gallery/pkg/geometry"
	"image/color"
	"math"
)

// SectorAngle is the width of each band of the radial gradient: 15 degrees.
//
// It is the float64 quotient of math.Pi and 12, not the exactly folded
// constant, which is one ulp larger and moves pi/2 and every other multiple
// of 15 degrees into the band below.
var SectorAngle = quotient(math.Pi, 12)

func quotient(a, b float64) float64 {
	return a / b
}

// Radial colors quickly escaping points with a black and white gradient
// radiating from the canvas center, whose direction flips every
// SectorAngle. Points that never escape are black, and the rest are drawn
// with a single pass of the rainbow.
type Radial struct {
	// GradientLimit is the largest iteration count drawn with the gradient.
	GradientLimit int
}

// Color returns the color of the pixel at circle coordinates p whose escape
// result is r.
func (rd Radial) Color(p geometry.XY, r escape.Result) color.NRGBA {
	switch {
	case r.Iterations <= rd.GradientLimit:
		return Gradient(p)
	case !r.Escaped:
		return Black
	default:
		return Rainbow(float64(r.Iterations) / 255)
	}
}

// Gradient is the gray of the radial gradient at circle coordinates p. It is
// black at the center and white at the corners for even sectors, and the
// reverse for odd ones.
func Gradient(p geometry.XY) color.NRGBA {
	value := 255 * p.Radius() / math.Sqrt2
	if isOdd(floorDiv(p.Angle(), SectorAngle)) {
		value = 255 - value
	}
	return Gray(value)
}
