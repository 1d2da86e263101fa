// Package viewport maps device pixels onto rectangles of the plane.
package viewport

import "github.com/willbeason/fractal-gallery/pkg/geometry"

// Region is a rectangle of the plane shown on a canvas.
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Width of the region in plane units.
func (r Region) Width() float64 {
	return r.Xmax - r.Xmin
}

// Height of the region in plane units.
func (r Region) Height() float64 {
	return r.Ymax - r.Ymin
}

// ToPlane maps device pixel (x, y) on a width by height canvas into r.
//
// Device rows grow downward while plane y grows upward, so row 0 maps to
// Ymax and the bottom-left of the canvas is (Xmin, Ymin).
func (r Region) ToPlane(x, y, width, height int) geometry.XY {
	return geometry.XY{
		X: float64(x)*r.Width()/float64(width) + r.Xmin,
		Y: float64(height-y)*r.Height()/float64(height) + r.Ymin,
	}
}

// ToCircle maps device pixel (x, y) into [-1, 1] x [-1, 1] without flipping
// the vertical axis: row 0 maps to -1.
func ToCircle(x, y, width, height int) geometry.XY {
	return geometry.XY{
		X: float64(x)*2/float64(width) - 1,
		Y: float64(y)*2/float64(height) - 1,
	}
}

// ToCircleFlipped is ToCircle with row 0 mapped to +1.
func ToCircleFlipped(x, y, width, height int) geometry.XY {
	return geometry.XY{
		X: float64(x)*2/float64(width) - 1,
		Y: float64(height-y)*2/float64(height) - 1,
	}
}
