// Great-circle distance routines in Go
//
// Copyright (c) Joshua Baker (2021) and licensed under the MIT License.
//
/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - */
/* Latitude/longitude spherical geodesy tools   (c) Chris Veness 2002-2019 */
/*                                                             MIT Licence */
/* www.movable-type.co.uk/scripts/latlong.html                             */
/* www.movable-type.co.uk/scripts/geodesy-library.html#latlon-spherical    */
/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - */

package greatcircle

import "math"

// Distance returns the great-circle distance from (sLat, sLon) to
// (eLat, eLon), ignoring flattening.
//
// The result is in the model unit, or the central angle in radians when the
// Angular option is given. Coordinates are degrees unless Radians is given.
// WithFormula picks the formula; an unknown Formula is an error.
func (m *Model) Distance(sLat, sLon, eLat, eLon float64, opts ...Option) (float64, error) {
	c := newCallConfig(opts)
	if err := m.checkCoords("Distance", sLat, sLon, eLat, eLon); err != nil {
		return 0, err
	}
	if !c.formula.valid() {
		return 0, m.invalid("Distance", "requested formula %v is not recognized", c.formula)
	}
	if !c.radians {
		sLat, sLon = sLat*radians, sLon*radians
		eLat, eLon = eLat*radians, eLon*radians
	}
	δ := centralAngle(c.formula, sLat, sLon, eLat, eLon)
	if c.angular {
		return δ, nil
	}
	return δ * m.radius, nil
}

// centralAngle works in radians. f must be valid.
func centralAngle(f Formula, φ1, λ1, φ2, λ2 float64) float64 {
	switch f {
	case GreatCircle:
		return math.Acos(clamp1(math.Sin(φ1)*math.Sin(φ2) +
			math.Cos(φ1)*math.Cos(φ2)*math.Cos(λ1-λ2)))
	case Haversine:
		sΔφ2 := math.Sin((φ2 - φ1) / 2)
		sΔλ2 := math.Sin((λ2 - λ1) / 2)
		a := clamp1(sΔφ2*sΔφ2 + math.Cos(φ1)*math.Cos(φ2)*sΔλ2*sΔλ2)
		return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	default:
		sΔφ2 := math.Sin((φ1 - φ2) / 2)
		sΔλ2 := math.Sin((λ1 - λ2) / 2)
		return 2 * math.Asin(math.Sqrt(clamp1(sΔφ2*sΔφ2+math.Cos(φ1)*math.Cos(φ2)*sΔλ2*sΔλ2)))
	}
}

// clamp1 keeps rounding error from pushing a cosine or haversine past 1,
// which would turn a zero or antipodal distance into NaN.
func clamp1(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
