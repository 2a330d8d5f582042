package greatcircle

import (
	"math"

	"github.com/rs/zerolog"
)

// WGS84 constants used by the default model.
// https://en.wikipedia.org/wiki/World_Geodetic_System
const (
	DefaultRadius            = 6378137.0
	DefaultUnit              = "meter"
	DefaultInverseFlattening = 298.257223563
)

// Earth is a pre-initialized model representing Earth with WGS84 parameters.
// Treat it as read-only; use New to get a model that may be reconfigured.
var Earth = MustNew()

// Model is the sphere-like body on which all operations are performed.
//
// The radius doubles as the semi-major axis for the ellipsoidal solver. The
// unit is only a label: every linear distance returned by a Model is in that
// unit, and nothing checks that it matches the radius.
//
// A Model holds no state besides its configuration. It is safe for concurrent
// use as long as nobody calls a setter at the same time.
type Model struct {
	radius            float64
	unit              string
	inverseFlattening float64
	log               zerolog.Logger
}

// ModelOption configures a Model in New.
type ModelOption func(m *Model) error

// WithRadius sets the radius (or semi-major axis). It must be positive.
func WithRadius(radius float64) ModelOption {
	return func(m *Model) error {
		return m.SetRadius(radius)
	}
}

// WithUnit sets the linear unit label of the radius.
func WithUnit(unit string) ModelOption {
	return func(m *Model) error {
		return m.SetUnit(unit)
	}
}

// WithInverseFlattening sets 1/f. It must be at least 1.
func WithInverseFlattening(invf float64) ModelOption {
	return func(m *Model) error {
		return m.SetInverseFlattening(invf)
	}
}

// WithFlattening sets f directly. It must lie in [0,1]; zero is a sphere.
func WithFlattening(f float64) ModelOption {
	return func(m *Model) error {
		return m.SetFlattening(f)
	}
}

// WithLogger installs a logger for rejected arguments and solver diagnostics.
// The default logger discards everything.
func WithLogger(log zerolog.Logger) ModelOption {
	return func(m *Model) error {
		m.log = log
		return nil
	}
}

// New returns a model with the WGS84 defaults overridden by opts.
func New(opts ...ModelOption) (*Model, error) {
	m := &Model{
		radius:            DefaultRadius,
		unit:              DefaultUnit,
		inverseFlattening: DefaultInverseFlattening,
		log:               zerolog.Nop(),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew is like New but panics if an option is invalid.
func MustNew(opts ...ModelOption) *Model {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Radius of the model.
func (m *Model) Radius() float64 {
	return m.radius
}

// Unit label of the radius.
func (m *Model) Unit() string {
	return m.unit
}

// InverseFlattening returns 1/f. A sphere reports +Inf.
func (m *Model) InverseFlattening() float64 {
	return m.inverseFlattening
}

// Flattening returns f = (a-b)/a.
func (m *Model) Flattening() float64 {
	return 1 / m.inverseFlattening
}

// SetRadius changes the radius. The model is left unchanged on error.
func (m *Model) SetRadius(radius float64) error {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return m.invalid("SetRadius", "radius must be a finite positive number, got %v", radius)
	}
	m.radius = radius
	return nil
}

// SetUnit changes the unit label.
func (m *Model) SetUnit(unit string) error {
	m.unit = unit
	return nil
}

// SetInverseFlattening changes 1/f. The model is left unchanged on error.
func (m *Model) SetInverseFlattening(invf float64) error {
	if math.IsNaN(invf) || invf < 1 {
		return m.invalid("SetInverseFlattening",
			"inverse flattening must be greater than or equal to 1, got %v", invf)
	}
	m.inverseFlattening = invf
	return nil
}

// SetFlattening changes f and stores 1/f. The model is left unchanged on
// error.
func (m *Model) SetFlattening(f float64) error {
	if math.IsNaN(f) || f < 0 || f > 1 {
		return m.invalid("SetFlattening", "flattening must be between 0 and 1, got %v", f)
	}
	m.inverseFlattening = 1 / f
	return nil
}
