package canvas

import (
	"github.com/willbeason/fractal-gallery/pkg/geometry"
	"image"
	"image/color"
)

// Mask records which pixels of a canvas an overlay has been drawn on.
//
// Recording the overlay separately rather than painting it in a reserved
// color means no legitimate output color can be mistaken for the overlay.
type Mask struct {
	*image.Alpha
}

// NewMask returns an empty Mask for a width by height canvas.
func NewMask(width, height int) Mask {
	return Mask{Alpha: image.NewAlpha(image.Rect(0, 0, width, height))}
}

// Mark records pixel (x, y). Pixels outside the mask are ignored.
func (m Mask) Mark(x, y int) {
	m.SetAlpha(x, y, color.Alpha{A: 0xff})
}

// Marked reports whether pixel (x, y) has been marked.
func (m Mask) Marked(x, y int) bool {
	return m.AlphaAt(x, y).A != 0
}

// Count returns the number of marked pixels.
func (m Mask) Count() int {
	n := 0
	for _, a := range m.Pix {
		if a != 0 {
			n++
		}
	}
	return n
}

// DrawSegment marks a one pixel wide line between the pixels nearest the
// segment's ends, both ends included.
func (m Mask) DrawSegment(s geometry.Segment) {
	x0, y0 := s.From.Pixel()
	x1, y1 := s.To.Pixel()

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	e := dx + dy
	for {
		m.Mark(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}

		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
