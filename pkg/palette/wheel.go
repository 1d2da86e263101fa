package palette

import (
	"github.com/willbeason/fractal-gallery/pkg/geometry"
	"image/color"
	"math"
)

// Wheel colors points by their direction from the center: the hue goes
// once around the color wheel as the direction turns through a half
// circle, offset by Shift turns.
type Wheel struct {
	Shift float64
}

// Color returns the wheel's color at circle coordinates p.
func (w Wheel) Color(p geometry.XY) color.NRGBA {
	angle := p.Angle()
	if angle < 0 {
		angle += math.Pi
	}
	return Rainbow(angle/math.Pi + w.Shift)
}

// Rings alternates two wheels in concentric rings Step wide. Pixels marked
// by an overlay, such as the branches of a tree, are pushed into the next
// ring so that the overlay shows as a seam wherever it crosses a ring.
type Rings struct {
	Step      float64
	Even, Odd Wheel
}

// Index is the ring containing a point at radius, shifted by one if marked.
func (r Rings) Index(radius float64, marked bool) int {
	i := int(floorDiv(radius, r.Step))
	if marked {
		i++
	}
	return i
}

// Color returns the ring color at circle coordinates p.
func (r Rings) Color(p geometry.XY, marked bool) color.NRGBA {
	if r.Index(p.Radius(), marked)%2 == 0 {
		return r.Even.Color(p)
	}
	return r.Odd.Color(p)
}
