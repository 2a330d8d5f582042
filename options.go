package greatcircle

// Option tunes a single call. Options that do not apply to an operation are
// ignored by it.
type Option func(c *callConfig)

type callConfig struct {
	radians   bool
	angular   bool
	formula   Formula
	tolerance float64
	maxIter   int
	maxHeight float64
	hasHeight bool
	npoints   int
	hasPoints bool
	shape     Shape
}

func newCallConfig(opts []Option) callConfig {
	c := callConfig{
		formula:   ShortForm,
		tolerance: 1e-12,
		maxIter:   500,
		shape:     Parabola,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Radians says that coordinates are passed in radians rather than degrees.
// Returned coordinates use the same unit.
func Radians() Option {
	return func(c *callConfig) { c.radians = true }
}

// Angular makes Distance return the central angle in radians instead of a
// length in the model unit.
func Angular() Option {
	return func(c *callConfig) { c.angular = true }
}

// WithFormula selects the Distance formula. Default ShortForm.
func WithFormula(f Formula) Option {
	return func(c *callConfig) { c.formula = f }
}

// WithTolerance sets the convergence tolerance of GeodesicDistance, in the
// model unit. Default 1e-12.
func WithTolerance(tol float64) Option {
	return func(c *callConfig) { c.tolerance = tol }
}

// WithMaxIterations caps the GeodesicDistance iterations. Default 500.
func WithMaxIterations(n int) Option {
	return func(c *callConfig) { c.maxIter = n }
}

// WithMaxHeight sets the peak of a projectile line. Default is half the
// distance between the end points.
func WithMaxHeight(h float64) Option {
	return func(c *callConfig) {
		c.maxHeight = h
		c.hasHeight = true
	}
}

// WithPoints sets the number of interior points of a projectile line.
// Default is one point every 20000 units with a floor of 100.
func WithPoints(n int) Option {
	return func(c *callConfig) {
		c.npoints = n
		c.hasPoints = true
	}
}

// WithShape selects the height profile of a projectile line. Default
// Parabola.
func WithShape(s Shape) Option {
	return func(c *callConfig) { c.shape = s }
}
