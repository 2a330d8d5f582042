package greatcircle

import "math"

// Point is a latitude/longitude pair in whatever unit the call used.
type Point struct {
	Lat float64
	Lon float64
}

// Path is a sequence of points from a start to an end point.
type Path []Point

// IntermediatePoint returns the point at fraction of the way along the great
// circle from (sLat, sLon) to (eLat, eLon).
//
// Fraction must be in [0,1]. Zero and one return the start and end point
// exactly as given. The output is in the input unit: degrees, or radians with
// the Radians option.
//
// Identical start and end points divide by zero and yield NaN coordinates for
// any fraction strictly between 0 and 1.
func (m *Model) IntermediatePoint(sLat, sLon, eLat, eLon, fraction float64, opts ...Option) (Point, error) {
	c := newCallConfig(opts)
	if err := m.checkCoords("IntermediatePoint", sLat, sLon, eLat, eLon); err != nil {
		return Point{}, err
	}
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return Point{}, m.invalid("IntermediatePoint", "fraction must be between zero and one, got %v", fraction)
	}
	return intermediate(sLat, sLon, eLat, eLon, fraction, c.radians), nil
}

// intermediate does the work of IntermediatePoint on validated input.
func intermediate(sLat, sLon, eLat, eLon, fraction float64, inRadians bool) Point {
	switch fraction {
	case 0:
		return Point{Lat: sLat, Lon: sLon}
	case 1:
		return Point{Lat: eLat, Lon: eLon}
	}
	if !inRadians {
		sLat, sLon = sLat*radians, sLon*radians
		eLat, eLon = eLat*radians, eLon*radians
	}
	d := centralAngle(Haversine, sLat, sLon, eLat, eLon)
	sind := math.Sin(d)
	A := math.Sin((1-fraction)*d) / sind
	B := math.Sin(fraction*d) / sind

	sinφ1, cosφ1 := math.Sincos(sLat)
	sinφ2, cosφ2 := math.Sincos(eLat)
	x := A*cosφ1*math.Cos(sLon) + B*cosφ2*math.Cos(eLon)
	y := A*cosφ1*math.Sin(sLon) + B*cosφ2*math.Sin(eLon)
	z := A*sinφ1 + B*sinφ2

	p := Point{
		Lat: math.Atan2(z, math.Sqrt(x*x+y*y)),
		Lon: math.Atan2(y, x),
	}
	if !inRadians {
		p.Lat *= degrees
		p.Lon *= degrees
	}
	return p
}

// MaxPoints is the largest number of interior points a path may have.
const MaxPoints = 1 << 24

// IntermediatePoints returns npoints+2 points: the start point, npoints
// points evenly spaced along the great circle, and the end point. The end
// points are returned exactly as given.
func (m *Model) IntermediatePoints(sLat, sLon, eLat, eLon float64, npoints int, opts ...Option) (Path, error) {
	c := newCallConfig(opts)
	if err := m.checkCoords("IntermediatePoints", sLat, sLon, eLat, eLon); err != nil {
		return nil, err
	}
	if err := m.checkPoints("IntermediatePoints", npoints); err != nil {
		return nil, err
	}
	return interpolate(sLat, sLon, eLat, eLon, npoints, c.radians), nil
}

func interpolate(sLat, sLon, eLat, eLon float64, npoints int, inRadians bool) Path {
	path := make(Path, npoints+2)
	path[0] = Point{Lat: sLat, Lon: sLon}
	for i := 1; i <= npoints; i++ {
		f := float64(i) / float64(npoints+1)
		path[i] = intermediate(sLat, sLon, eLat, eLon, f, inRadians)
	}
	path[npoints+1] = Point{Lat: eLat, Lon: eLon}
	return path
}
