package tree

import (
	"github.com/willbeason/fractal-gallery/pkg/geometry"
	"math"
)

const (
	// SpreadAngle is how far, in degrees, each child branch turns away from
	// its parent.
	SpreadAngle = 21.0

	// UnitWidth is the canvas width at which each layer of a branch is one
	// pixel long. Wider canvases scale branches proportionally so that the
	// tree keeps the same shape at any resolution.
	UnitWidth = 256
)

// A Branch is a junction in a fractal tree: the point a branch starts from,
// the direction it grows and how many layers are still to grow from it.
//
// The recursive structure mimics the rendered structure.
type Branch struct {
	Origin geometry.XY

	// Angle is measured in degrees counter-clockwise from the positive x
	// axis. Device y grows downward, so 90 points up the canvas.
	Angle float64

	// Remaining is the number of layers left. A Branch with no layers left
	// is a leaf and draws nothing.
	Remaining int
}

// A Drawer renders the segments of a tree.
type Drawer interface {
	DrawSegment(geometry.Segment)
}

// Generator grows binary trees whose branches shorten by one Scale every
// layer.
type Generator struct {
	// Scale is the length in pixels each remaining layer adds to a branch.
	Scale float64

	// Spread is the angle in degrees between a branch and each child.
	Spread float64
}

// ForWidth returns the Generator for a canvas width pixels wide.
func ForWidth(width int) Generator {
	return Generator{
		Scale:  float64(width) / UnitWidth,
		Spread: SpreadAngle,
	}
}

// End returns where b stops growing. The offset along each axis is truncated
// to whole pixels, so branches starting on a pixel end on one.
func (g Generator) End(b Branch) geometry.XY {
	radians := b.Angle * (math.Pi / 180)
	length := float64(b.Remaining) * g.Scale

	return geometry.XY{
		X: b.Origin.X + math.Trunc(math.Cos(radians)*length),
		Y: b.Origin.Y - math.Trunc(math.Sin(radians)*length),
	}
}

// Children returns the two branches growing from the end of b.
func (g Generator) Children(b Branch) (Branch, Branch) {
	end := g.End(b)
	left := Branch{Origin: end, Angle: b.Angle + g.Spread, Remaining: b.Remaining - 1}
	right := Branch{Origin: end, Angle: b.Angle - g.Spread, Remaining: b.Remaining - 1}
	return left, right
}

// Draw renders b and everything that grows from it with d.
func (g Generator) Draw(b Branch, d Drawer) {
	g.Grow(b, func(_ Branch, s geometry.Segment) {
		d.DrawSegment(s)
	})
}

// Grow visits b and all of its descendants depth first, left before right,
// along with the segment each one covers. Leaves are not visited.
func (g Generator) Grow(b Branch, visit func(Branch, geometry.Segment)) {
	if b.Remaining <= 0 {
		return
	}

	visit(b, geometry.Segment{From: b.Origin, To: g.End(b)})

	left, right := g.Children(b)
	g.Grow(left, visit)
	g.Grow(right, visit)
}
