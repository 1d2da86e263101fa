package transforms

// Mandelbrot is the quadratic map z -> z^2 + c.
//
// Components are kept as separate float64 values rather than complex128 so
// that every step evaluates exactly zx*zx - zy*zy + cx and 2*zx*zy + cy.
type Mandelbrot struct{}

// Next applies one step of the map to z = (zx, zy) with parameter c = (cx, cy).
func (Mandelbrot) Next(zx, zy, cx, cy float64) (float64, float64) {
	return zx*zx - zy*zy + cx, 2*zx*zy + cy
}

// Quadratic is a one-step map of the plane parameterized by a point c.
type Quadratic interface {
	Next(zx, zy, cx, cy float64) (float64, float64)
}

var _ Quadratic = Mandelbrot{}
