// Angle conversion routines in Go
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

import (
	"fmt"
	"math"
)

const radians = math.Pi / 180
const degrees = 180 / math.Pi

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * radians
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 {
	return rad * degrees
}

// DMS is a decimal degree split into degree, minute, second and the leftover
// fraction of a degree.
//
// The sign lives on Degree. Minute, Second and Remainder are magnitudes.
// Negative is also set for values in (-1,0), where Degree is zero and cannot
// carry the sign.
type DMS struct {
	Degree    int
	Minute    int
	Second    int
	Remainder float64
	Negative  bool
}

// DecimalDegreeToDMS splits value into degree, minute and truncated second.
// Whatever is left over, in degrees, goes to Remainder.
func DecimalDegreeToDMS(value float64) (DMS, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || math.Abs(value) >= float64(math.MaxInt) {
		return DMS{}, invalidf("DecimalDegreeToDMS", "value must be finite and fit an int degree, got %v", value)
	}
	abs := math.Abs(value)
	deg := math.Floor(abs)
	frac := abs - deg
	min := math.Floor(frac * 60)
	// the product can round up onto the next whole minute or second
	if min > 0 && frac-min/60 < 0 {
		min--
	}
	rest := frac - min/60
	sec := math.Floor(rest * 3600)
	if sec > 0 && rest-sec/3600 < 0 {
		sec--
	}
	var d DMS
	d.Degree = int(deg)
	d.Minute = int(min)
	d.Second = int(sec)
	d.Remainder = rest - sec/3600
	if value < 0 {
		d.Degree = -d.Degree
		d.Negative = true
	}
	return d, nil
}

// DMSToDecimalDegree joins degree, minute, second and remainder into a decimal
// degree. The sign of the result is the sign of degree, zero counting as
// positive. Minute, second and remainder are taken as magnitudes.
func DMSToDecimalDegree(degree, minute, second, remainder float64) (float64, error) {
	if math.IsNaN(degree) || math.IsNaN(minute) || math.IsNaN(second) || math.IsNaN(remainder) {
		return 0, invalidf("DMSToDecimalDegree", "only non-NaN values are accepted")
	}
	v := math.Abs(degree) + minute/60 + second/3600 + remainder
	if degree < 0 {
		return -v, nil
	}
	return v, nil
}

// Decimal converts d back to a signed decimal degree.
func (d DMS) Decimal() float64 {
	v := math.Abs(float64(d.Degree)) + float64(d.Minute)/60 +
		float64(d.Second)/3600 + d.Remainder
	if d.Negative || d.Degree < 0 {
		return -v
	}
	return v
}

func (d DMS) String() string {
	sign := ""
	if d.Negative && d.Degree == 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%d°%d'%d\"", sign, d.Degree, d.Minute, d.Second)
}
