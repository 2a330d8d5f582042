package greatcircle

import "math"

// GeodesicDistance solves the inverse geodesic problem on the model ellipsoid
// with Vincenty's iteration and returns the distance in the model unit.
//
// The radius is the semi-major axis a, and b = (1-f)·a. Iteration stops once
// successive distances differ by no more than the tolerance, or after the
// maximum number of iterations, in which case the last estimate is returned.
// Vincenty does not converge for nearly antipodal points; callers that care
// must check for it themselves.
//
// Options: Radians, WithTolerance, WithMaxIterations.
func (m *Model) GeodesicDistance(sLat, sLon, eLat, eLon float64, opts ...Option) (float64, error) {
	c := newCallConfig(opts)
	if err := m.checkCoords("GeodesicDistance", sLat, sLon, eLat, eLon); err != nil {
		return 0, err
	}
	if math.IsNaN(c.tolerance) || c.tolerance < 0 {
		return 0, m.invalid("GeodesicDistance", "tolerance must be a non-negative number, got %v", c.tolerance)
	}
	if c.maxIter < 1 {
		return 0, m.invalid("GeodesicDistance", "max iterations must be at least 1, got %d", c.maxIter)
	}
	if !c.radians {
		sLat, sLon = sLat*radians, sLon*radians
		eLat, eLon = eLat*radians, eLon*radians
	}
	s, ok := m.vincenty(sLat, sLon, eLat, eLon, c.tolerance, c.maxIter)
	if !ok {
		m.log.Debug().Int("iterations", c.maxIter).Float64("distance", s).
			Msg("geodesic distance stopped at iteration limit")
	}
	return s, nil
}

// vincenty returns the distance and whether it converged within maxIter.
// Input is in radians.
func (m *Model) vincenty(φ1, λ1, φ2, λ2, tol float64, maxIter int) (float64, bool) {
	a := m.radius
	f := m.Flattening()
	b := (1 - f) * a

	U1 := math.Atan((1 - f) * math.Tan(φ1))
	U2 := math.Atan((1 - f) * math.Tan(φ2))
	sinU1, cosU1 := math.Sincos(U1)
	sinU2, cosU2 := math.Sincos(U2)
	L := λ2 - λ1

	// second eccentricity squared, scaled by cos²α each round
	ep2 := (a*a - b*b) / (b * b)

	λ := L
	var s float64
	for i := 1; i <= maxIter; i++ {
		prev := s
		sinλ, cosλ := math.Sincos(λ)
		x := cosU2 * sinλ
		y := cosU1*sinU2 - sinU1*cosU2*cosλ
		sinσ := math.Sqrt(x*x + y*y)
		cosσ := sinU1*sinU2 + cosU1*cosU2*cosλ
		if sinσ == 0 && cosσ > 0 {
			// coincident points
			return 0, true
		}
		σ := math.Atan2(sinσ, cosσ)
		sinα := cosU1 * cosU2 * sinλ / math.Sin(σ)
		cos2α := 1 - sinα*sinα

		var cos2σm, C float64
		if cos2α == 0 {
			cos2σm = -1
			C = 0
		} else {
			cos2σm = math.Cos(σ) - 2*sinU1*sinU2/cos2α
			C = f / 16 * cos2α * (4 + f*(4-3*cos2α))
		}
		λ = L + (1-C)*f*sinα*(σ+C*math.Sin(σ)*(cos2σm+C*math.Cos(σ)*(-1+2*cos2σm*cos2σm)))

		u2 := cos2α * ep2
		k1 := (math.Sqrt(1+u2) - 1) / (math.Sqrt(1+u2) + 1)
		A := (1 + k1*k1/4) / (1 - k1)
		B := k1 * (1 - 3*k1*k1/8)
		sin2σ := math.Sin(σ) * math.Sin(σ)
		cc := cos2σm * cos2σm
		Δσ := B * math.Sin(σ) * (cos2σm + B/4*(math.Cos(σ)*(-1+2*cc)-
			B/6*cos2σm*(-3+4*sin2σ)*(-3+4*cc)))

		s = b * A * (σ - Δσ)
		if math.Abs(s-prev) <= tol {
			return s, true
		}
	}
	return s, false
}
