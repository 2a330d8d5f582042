package greatcircle

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is returned, wrapped, by every operation that rejects
// its input. Use errors.Is to test for it.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidf(op, format string, args ...interface{}) error {
	return fmt.Errorf("greatcircle: %s: %s: %w", op, fmt.Sprintf(format, args...), ErrInvalidArgument)
}

// invalid builds the error and reports it to the model logger.
func (m *Model) invalid(op, format string, args ...interface{}) error {
	err := invalidf(op, format, args...)
	m.log.Debug().Str("op", op).Err(err).Msg("rejected argument")
	return err
}

// checkCoords rejects NaN and infinite coordinates of a point pair.
func (m *Model) checkCoords(op string, sLat, sLon, eLat, eLon float64) error {
	for _, v := range [...]float64{sLat, sLon, eLat, eLon} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return m.invalid(op, "coordinates must be finite (%v, %v) -> (%v, %v)",
				sLat, sLon, eLat, eLon)
		}
	}
	return nil
}

// checkPoints rejects interior point counts that cannot be generated.
func (m *Model) checkPoints(op string, npoints int) error {
	if npoints < 1 || npoints > MaxPoints {
		return m.invalid(op, "npoints must be between 1 and %d, got %d", MaxPoints, npoints)
	}
	return nil
}
