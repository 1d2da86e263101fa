package render

import (
	"github.com/willbeason/fractal-gallery/pkg/canvas"
	"github.com/willbeason/fractal-gallery/pkg/palette"
	"image"
	"image/color"
)

// Checkerboard renders the Mandelbrot set over cfg.Checkerboard with the
// interior drawn as a black and white board and escaping points in a
// rainbow that cycles cfg.Wraps times. It fails if cfg is invalid.
func Checkerboard(cfg Config) (*image.NRGBA, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	img := canvas.New(cfg.Width, cfg.Height)
	e := cfg.evaluator()
	board := palette.Checkerboard{
		Width:  cfg.Width,
		Height: cfg.Height,
		Boxes:  cfg.Boxes,
		Wraps:  cfg.Wraps,
	}

	canvas.Paint(img, canvas.PainterFunc(func(x, y int) color.NRGBA {
		c := cfg.Checkerboard.ToPlane(x, y, cfg.Width, cfg.Height)
		return board.Color(x, y, e.Evaluate(c.X, c.Y))
	}))

	return img, nil
}
