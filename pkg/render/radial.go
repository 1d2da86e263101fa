package render

import (
	"github.com/willbeason/fractal-gallery/pkg/canvas"
	"github.com/willbeason/fractal-gallery/pkg/palette"
	"github.com/willbeason/fractal-gallery/pkg/viewport"
	"image"
	"image/color"
)

// Radial renders the Mandelbrot set over cfg.Radial. Fast escapes show a
// black and white gradient radiating from the canvas center, slow ones a
// rainbow, and the interior is black. The result is smoothed. It fails if
// cfg is invalid.
func Radial(cfg Config) (*image.NRGBA, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	img := canvas.New(cfg.Width, cfg.Height)
	e := cfg.evaluator()
	policy := palette.Radial{GradientLimit: cfg.GradientLimit}

	canvas.Paint(img, canvas.PainterFunc(func(x, y int) color.NRGBA {
		c := cfg.Radial.ToPlane(x, y, cfg.Width, cfg.Height)
		return policy.Color(viewport.ToCircle(x, y, cfg.Width, cfg.Height), e.Evaluate(c.X, c.Y))
	}))

	return canvas.Smooth(img), nil
}
