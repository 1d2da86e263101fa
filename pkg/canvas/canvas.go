// Package canvas holds the pixel buffers images are rendered into and the
// operations applied to them before they are written out.
package canvas

import (
	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	"image"
	"image/color"
)

// New returns an opaque black canvas width by height pixels.
func New(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(colornames.Black), image.Point{}, draw.Src)
	return img
}

// A Painter decides the color of each device pixel of a canvas.
type Painter interface {
	Color(x, y int) color.NRGBA
}

// PainterFunc adapts a function to a Painter.
type PainterFunc func(x, y int) color.NRGBA

func (f PainterFunc) Color(x, y int) color.NRGBA {
	return f(x, y)
}

// Paint sets every pixel of img to the color p chooses for it, exactly once,
// column by column.
func Paint(img *image.NRGBA, p Painter) {
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			img.SetNRGBA(x, y, p.Color(x, y))
		}
	}
}

// Frame returns a copy of img surrounded by a border of color c, thickness
// pixels wide on every side. The result's origin is (0, 0).
func Frame(img image.Image, thickness int, c color.Color) *image.NRGBA {
	b := img.Bounds()
	framed := image.NewNRGBA(image.Rect(0, 0, b.Dx()+2*thickness, b.Dy()+2*thickness))

	draw.Draw(framed, framed.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	inner := image.Rect(thickness, thickness, thickness+b.Dx(), thickness+b.Dy())
	draw.Draw(framed, inner, img, b.Min, draw.Src)

	return framed
}
