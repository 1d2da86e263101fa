package render

import (
	"github.com/willbeason/fractal-gallery/pkg/canvas"
	"github.com/willbeason/fractal-gallery/pkg/geometry"
	"github.com/willbeason/fractal-gallery/pkg/palette"
	"github.com/willbeason/fractal-gallery/pkg/tree"
	"github.com/willbeason/fractal-gallery/pkg/viewport"
	"golang.org/x/image/colornames"
	"image"
	"image/color"
)

// Rings renders a symmetric fractal tree rooted at the canvas center over
// two alternating rainbow wheels. Wherever a branch crosses a ring it is
// drawn with the other ring's wheel. The image is framed in white and then
// black, so it is larger than the canvas by four frame widths. It fails if
// cfg is invalid.
func Rings(cfg Config) (*image.NRGBA, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	mask := treeMask(cfg)
	cfg.logger().Debug("grew tree", "layers", cfg.TreeDepth, "pixels", mask.Count())

	rings := palette.Rings{
		Step: cfg.RingStep,
		Even: palette.Wheel{},
		Odd:  palette.Wheel{Shift: cfg.WheelShift},
	}

	img := canvas.New(cfg.Width, cfg.Height)
	canvas.Paint(img, canvas.PainterFunc(func(x, y int) color.NRGBA {
		p := viewport.ToCircleFlipped(x, y, cfg.Width, cfg.Height)
		return rings.Color(p, mask.Marked(x, y))
	}))

	border := cfg.Width / cfg.BorderDivisor
	framed := canvas.Frame(img, border, colornames.White)
	return canvas.Frame(framed, border, colornames.Black), nil
}

// treeMask draws the symmetric tree of cfg into a mask the size of the
// canvas.
func treeMask(cfg Config) canvas.Mask {
	mask := canvas.NewMask(cfg.Width, cfg.Height)
	g := tree.ForWidth(cfg.Width)
	g.Spread = cfg.TreeSpread

	center := geometry.XY{X: float64(cfg.Width) / 2, Y: float64(cfg.Height) / 2}
	for _, trunk := range tree.Symmetric(center, cfg.TreeDepth) {
		g.Draw(trunk, mask)
	}

	return mask
}
