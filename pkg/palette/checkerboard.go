package palette

import (
	"github.com/willbeason/fractal-gallery/pkg/escape"
	"image/color"
)

// Checkerboard fills points that never escape with a black and white board
// and colors escaping points by a rainbow that wraps Wraps times over the
// iteration range.
type Checkerboard struct {
	Width, Height int

	// Boxes is the number of board squares along each axis.
	Boxes int

	Wraps float64
}

// Cell returns the board column and row containing device pixel (x, y).
func (c Checkerboard) Cell(x, y int) (int, int) {
	return x / (c.Width / c.Boxes), y / (c.Height / c.Boxes)
}

// Color returns the color of device pixel (x, y) whose escape result is r.
func (c Checkerboard) Color(x, y int, r escape.Result) color.NRGBA {
	if !r.Escaped {
		col, row := c.Cell(x, y)
		if (col+row)%2 == 1 {
			return White
		}
		return Black
	}

	return Rainbow(float64(r.Iterations) / 255 * c.Wraps)
}
