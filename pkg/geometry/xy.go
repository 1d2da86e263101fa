package geometry

import "math"

// XY is a point in either device or mathematical coordinates.
type XY struct {
	X, Y float64
}

// Radius is the distance of the point from the origin.
func (xy XY) Radius() float64 {
	return math.Sqrt(xy.X*xy.X + xy.Y*xy.Y)
}

// Angle is the arctangent of Y/X, in radians between -pi/2 and pi/2.
// Points on the vertical axis are treated as lying at pi/2 so that X == 0
// never divides by zero.
func (xy XY) Angle() float64 {
	if xy.X == 0 {
		return math.Pi / 2
	}
	return math.Atan(xy.Y / xy.X)
}

// Pixel rounds the point to the nearest device pixel.
func (xy XY) Pixel() (int, int) {
	return int(math.Round(xy.X)), int(math.Round(xy.Y))
}

// A Segment is a straight line between two points.
type Segment struct {
	From, To XY
}
