package greatcircle

import "math"

// ProfilePoint is a path point with a height above the surface.
type ProfilePoint struct {
	Lat    float64
	Lon    float64
	Height float64
}

// Profile is a projectile line as returned by ProjectileLine.
type Profile []ProfilePoint

// Path drops the heights.
func (p Profile) Path() Path {
	path := make(Path, len(p))
	for i, pt := range p {
		path[i] = Point{Lat: pt.Lat, Lon: pt.Lon}
	}
	return path
}

// unitsPerPoint is the default spacing of projectile points, in model units.
const unitsPerPoint = 20000

// ProjectileLine returns a synthetic trajectory from (sLat, sLon) to
// (eLat, eLon): the great-circle path with a height assigned to every point.
//
// WithMaxHeight sets the peak height, by default half the shortform distance
// between the end points. WithPoints sets the number of interior points, by
// default one every 20000 units of the model and no fewer than 100.
// WithShape picks the height profile:
//
//	Parabola  zero at both end points, maxHeight at the midpoint
//	Constant  maxHeight everywhere
//
// Heights are in whatever unit maxHeight is in, which by default is the
// model unit. The parabola is maxHeight·(1-4d²) with d in [-0.5,0.5], so it
// peaks at exactly maxHeight, not maxHeight/4.
//
// At most MaxPoints interior points are generated. A default count above that
// is an error; pass WithPoints for such lines.
func (m *Model) ProjectileLine(sLat, sLon, eLat, eLon float64, opts ...Option) (Profile, error) {
	c := newCallConfig(opts)
	if err := m.checkCoords("ProjectileLine", sLat, sLon, eLat, eLon); err != nil {
		return nil, err
	}
	if c.hasHeight && (math.IsNaN(c.maxHeight) || math.IsInf(c.maxHeight, 0) || c.maxHeight < 0) {
		return nil, m.invalid("ProjectileLine", "max height must be finite and non-negative, got %v", c.maxHeight)
	}
	if c.hasPoints {
		if err := m.checkPoints("ProjectileLine", c.npoints); err != nil {
			return nil, err
		}
	}
	if !c.shape.valid() {
		return nil, m.invalid("ProjectileLine", "requested shape %v is not recognized", c.shape)
	}

	φ1, λ1, φ2, λ2 := sLat, sLon, eLat, eLon
	if !c.radians {
		φ1, λ1 = φ1*radians, λ1*radians
		φ2, λ2 = φ2*radians, λ2*radians
	}
	total := centralAngle(ShortForm, φ1, λ1, φ2, λ2) * m.radius

	maxHeight := c.maxHeight
	if !c.hasHeight {
		maxHeight = total / 2
	}
	npoints := c.npoints
	if !c.hasPoints {
		n, ok := defaultPoints(total)
		if !ok {
			return nil, m.invalid("ProjectileLine",
				"distance %v %s needs more than %d default points", total, m.unit, MaxPoints)
		}
		npoints = n
	}

	path := interpolate(sLat, sLon, eLat, eLon, npoints, c.radians)
	prof := make(Profile, len(path))
	for i, pt := range path {
		prof[i] = ProfilePoint{Lat: pt.Lat, Lon: pt.Lon}
	}
	switch c.shape {
	case Constant:
		for i := range prof {
			prof[i].Height = maxHeight
		}
	case Parabola:
		for i := 1; i <= npoints; i++ {
			d := float64(i)/float64(npoints+1) - 0.5
			prof[i].Height = -4 * maxHeight * (d - 0.5) * (d + 0.5)
		}
	}
	return prof, nil
}

// defaultPoints reports false when total is not finite or would need more
// than MaxPoints points.
func defaultPoints(total float64) (int, bool) {
	n := math.Round(total/unitsPerPoint) - 1
	if math.IsNaN(n) || n > MaxPoints {
		return 0, false
	}
	if n < 100 {
		return 100, true
	}
	return int(n), true
}
