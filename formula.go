package greatcircle

import (
	"strconv"
	"strings"
)

// Formula selects the great-circle distance formula.
type Formula int

const (
	// ShortForm is 2·asin(√haversine). It is the default.
	ShortForm Formula = iota
	// GreatCircle is the spherical law of cosines. It loses precision for
	// points that are very close together.
	GreatCircle
	// Haversine is the 2·atan2 form of the haversine formula.
	Haversine
)

var formulaNames = [...]string{
	ShortForm:   "shortform",
	GreatCircle: "greatcircle",
	Haversine:   "haversine",
}

func (f Formula) valid() bool {
	return f >= ShortForm && f <= Haversine
}

func (f Formula) String() string {
	if !f.valid() {
		return "Formula(" + strconv.Itoa(int(f)) + ")"
	}
	return formulaNames[f]
}

// ParseFormula resolves a formula name, ignoring case.
func ParseFormula(name string) (Formula, error) {
	for i, n := range formulaNames {
		if strings.EqualFold(n, name) {
			return Formula(i), nil
		}
	}
	return 0, invalidf("ParseFormula", "requested formula %q is not recognized", name)
}

// Shape selects the height profile of a projectile line.
type Shape int

const (
	// Parabola is zero at both ends and peaks at the midpoint. It is the
	// default.
	Parabola Shape = iota
	// Constant puts every point at the same height.
	Constant
)

var shapeNames = [...]string{
	Parabola: "parabola",
	Constant: "constant",
}

func (s Shape) valid() bool {
	return s >= Parabola && s <= Constant
}

func (s Shape) String() string {
	if !s.valid() {
		return "Shape(" + strconv.Itoa(int(s)) + ")"
	}
	return shapeNames[s]
}

// ParseShape resolves a shape name, ignoring case.
func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if strings.EqualFold(n, name) {
			return Shape(i), nil
		}
	}
	return 0, invalidf("ParseShape", "requested shape %q is not recognized", name)
}
