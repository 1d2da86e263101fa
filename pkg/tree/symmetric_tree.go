package tree

import "github.com/willbeason/fractal-gallery/pkg/geometry"

const (
	Up   = 90.0
	Down = 270.0
)

// Symmetric returns the trunks of a tree mirrored about center, one growing
// toward the bottom of the canvas and one toward the top, each with the
// given number of layers.
func Symmetric(center geometry.XY, layers int) []Branch {
	return []Branch{
		{Origin: center, Angle: Down, Remaining: layers},
		{Origin: center, Angle: Up, Remaining: layers},
	}
}
