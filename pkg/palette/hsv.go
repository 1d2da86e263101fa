// Package palette maps escape counts and positions on the canvas to colors.
package palette

import (
	"image/color"
	"math"
)

// Value is the brightness the rainbows are drawn at. HSV values are scaled
// to 0-255 directly, so converted channels need only be truncated.
const Value = 255.0

// HSV converts a hue, saturation and value to red, green and blue in the
// same range as v.
//
// Hue is measured in turns; hues above 1 wrap around the color wheel again.
func HSV(h, s, v float64) (float64, float64, float64) {
	if s == 0 {
		return v, v, v
	}

	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch ((i % 6) + 6) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// Rainbow is the fully saturated, full brightness color at hue h.
func Rainbow(h float64) color.NRGBA {
	r, g, b := HSV(h, 1, Value)
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}

// Gray is an opaque gray with all channels set to v, truncated.
func Gray(v float64) color.NRGBA {
	g := uint8(math.Max(0, math.Min(v, 255)))
	return color.NRGBA{R: g, G: g, B: g, A: 0xff}
}

var (
	Black = color.NRGBA{A: 0xff}
	White = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// floorDiv is the floor of the exact quotient a/b.
//
// Plain math.Floor(a/b) rounds the quotient before flooring, so 1/0.1 lands
// in band 10 even though 0.1 as a float64 is slightly more than a tenth.
func floorDiv(a, b float64) float64 {
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div--
	}
	if div == 0 {
		return 0
	}

	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor++
	}
	return floor
}

func isOdd(i float64) bool {
	return math.Mod(i, 2) != 0
}
