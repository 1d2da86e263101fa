// Package render assembles the gallery's images from the escape-time
// evaluator, the tree generator and the color policies.
package render

import (
	"errors"
	"fmt"
	"github.com/willbeason/fractal-gallery/pkg/escape"
	"github.com/willbeason/fractal-gallery/pkg/tree"
	"github.com/willbeason/fractal-gallery/pkg/viewport"
	"io"
	"log/slog"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// MaxTreeDepth bounds Config.TreeDepth. Each layer doubles the number of
// branches drawn.
const MaxTreeDepth = 20

// Config holds every parameter of the gallery.
type Config struct {
	Width, Height int

	MaxIterations int
	Bailout       float64

	// Boxes is the number of checkerboard squares along each axis.
	Boxes int
	// Wraps is how many times the checkerboard image's rainbow cycles.
	Wraps float64

	// GradientLimit is the slowest escape drawn with the radial gradient.
	GradientLimit int

	TreeDepth  int
	TreeSpread float64

	RingStep   float64
	WheelShift float64

	// BorderDivisor sets the frame thickness of the tree image to
	// Width/BorderDivisor.
	BorderDivisor int

	Checkerboard viewport.Region
	Radial       viewport.Region

	// Logger receives progress messages. Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns the parameters of the standard gallery.
func DefaultConfig() Config {
	return Config{
		Width:         512,
		Height:        512,
		MaxIterations: escape.MaxIterations,
		Bailout:       escape.Bailout,
		Boxes:         32,
		Wraps:         3,
		GradientLimit: 180,
		TreeDepth:     15,
		TreeSpread:    tree.SpreadAngle,
		RingStep:      0.05,
		WheelShift:    0.66,
		BorderDivisor: 32,
		Checkerboard: viewport.Region{
			Xmin: 0.27415, Xmax: 0.2746,
			Ymin: -0.00649, Ymax: -0.00604,
		},
		Radial: viewport.Region{
			Xmin: -0.67622, Xmax: -0.67582,
			Ymin: -0.3624, Ymax: -0.3620,
		},
	}
}

// Validate reports the first parameter that would make rendering fail or
// produce a degenerate image.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: canvas must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.MaxIterations <= 0:
		return fmt.Errorf("%w: max iterations must be positive, got %d", ErrInvalidConfig, c.MaxIterations)
	case c.GradientLimit >= c.MaxIterations:
		return fmt.Errorf("%w: gradient limit %d must be below max iterations %d", ErrInvalidConfig, c.GradientLimit, c.MaxIterations)
	case c.Boxes <= 0 || c.Width%c.Boxes != 0 || c.Height%c.Boxes != 0:
		return fmt.Errorf("%w: %d checkerboard boxes do not divide a %dx%d canvas", ErrInvalidConfig, c.Boxes, c.Width, c.Height)
	case c.TreeDepth < 0 || c.TreeDepth > MaxTreeDepth:
		return fmt.Errorf("%w: tree depth must be between 0 and %d, got %d", ErrInvalidConfig, MaxTreeDepth, c.TreeDepth)
	case c.RingStep <= 0:
		return fmt.Errorf("%w: ring step must be positive, got %v", ErrInvalidConfig, c.RingStep)
	case c.BorderDivisor <= 0:
		return fmt.Errorf("%w: border divisor must be positive, got %d", ErrInvalidConfig, c.BorderDivisor)
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.Logger
}

func (c Config) evaluator() escape.Evaluator {
	e := escape.Default()
	e.MaxIterations = c.MaxIterations
	e.Bailout = c.Bailout
	return e
}
