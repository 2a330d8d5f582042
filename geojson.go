package greatcircle

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LineString returns the path as an orb line string. Orb points are
// longitude first.
func (p Path) LineString() orb.LineString {
	ls := make(orb.LineString, len(p))
	for i, pt := range p {
		ls[i] = orb.Point{pt.Lon, pt.Lat}
	}
	return ls
}

// LineString returns the ground track of the profile.
func (p Profile) LineString() orb.LineString {
	return p.Path().LineString()
}

// Bound is the lon/lat bounding box of the ground track.
func (p Profile) Bound() orb.Bound {
	return p.LineString().Bound()
}

// Heights returns the height of every point, in order.
func (p Profile) Heights() []float64 {
	hs := make([]float64, len(p))
	for i, pt := range p {
		hs[i] = pt.Height
	}
	return hs
}

// Feature returns the profile as a GeoJSON LineString feature with the
// heights in the "heights" property. GeoJSON expects degrees, so the profile
// should come from a call made in degrees.
func (p Profile) Feature() *geojson.Feature {
	f := geojson.NewFeature(p.LineString())
	f.Properties["heights"] = p.Heights()
	return f
}

// Feature returns the profile as a GeoJSON feature that also records the
// model unit of the heights, as generated by m.
func (m *Model) Feature(p Profile) *geojson.Feature {
	f := p.Feature()
	f.Properties["unit"] = m.unit
	return f
}
