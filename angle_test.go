package greatcircle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDegRad(t *testing.T) {
	assert.Equal(t, math.Pi, Deg2Rad(180))
	assert.Equal(t, 90.0, Rad2Deg(math.Pi/2))
	assert.Equal(t, 0.0, Deg2Rad(0))

	rng := newRand()
	for i := 0; i < 100_000; i++ {
		x := rng.Float64()*2000 - 1000
		if !eqish(Deg2Rad(Rad2Deg(x)), x, 9) || !eqish(Rad2Deg(Deg2Rad(x)), x, 9) {
			t.Fatalf("round trip failure for %v", x)
		}
	}
}

func TestDecimalDegreeToDMS(t *testing.T) {
	tests := []struct {
		in   float64
		want DMS
	}{
		{0, DMS{}},
		{10.25, DMS{Degree: 10, Minute: 15}},
		{-45.5, DMS{Degree: -45, Minute: 30, Negative: true}},
		{-0.5, DMS{Degree: 0, Minute: 30, Negative: true}},
		{180, DMS{Degree: 180}},
	}
	for _, tt := range tests {
		got, err := DecimalDegreeToDMS(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %v", tt.in)
	}

	d, err := DecimalDegreeToDMS(12.3456789)
	require.NoError(t, err)
	assert.Equal(t, 12, d.Degree)
	assert.Equal(t, 20, d.Minute)
	assert.Equal(t, 44, d.Second)
	assert.GreaterOrEqual(t, d.Remainder, 0.0)
	assert.Less(t, d.Remainder, 1.0/3600)

	_, err = DecimalDegreeToDMS(math.NaN())
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = DecimalDegreeToDMS(math.Inf(-1))
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDMSToDecimalDegree(t *testing.T) {
	v, err := DMSToDecimalDegree(-45, 30, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, -45.5, v)

	v, err = DMSToDecimalDegree(10, 15, 36, 0)
	require.NoError(t, err)
	assert.InDelta(t, 10.26, v, 1e-12)

	// zero degree counts as positive
	v, err = DMSToDecimalDegree(0, 30, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)

	v, err = DMSToDecimalDegree(-1, 0, 0, 0.25)
	require.NoError(t, err)
	assert.Equal(t, -1.25, v)

	for _, args := range [][4]float64{
		{math.NaN(), 0, 0, 0},
		{0, math.NaN(), 0, 0},
		{0, 0, math.NaN(), 0},
		{0, 0, 0, math.NaN()},
	} {
		_, err := DMSToDecimalDegree(args[0], args[1], args[2], args[3])
		require.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestDMSRoundTrip(t *testing.T) {
	rng := newRand()
	for i := 0; i < 100_000; i++ {
		x := rng.Float64()*720 - 360
		d, err := DecimalDegreeToDMS(x)
		require.NoError(t, err)
		if d.Minute < 0 || d.Minute > 59 || d.Second < 0 || d.Second > 59 {
			t.Fatalf("out of range components %+v for %v", d, x)
		}
		if !eqish(d.Decimal(), x, 9) {
			t.Fatalf("expected %v, got %v", x, d.Decimal())
		}
		if math.Abs(x) >= 1 {
			v, err := DMSToDecimalDegree(float64(d.Degree), float64(d.Minute),
				float64(d.Second), d.Remainder)
			require.NoError(t, err)
			if !eqish(v, x, 9) {
				t.Fatalf("expected %v, got %v", x, v)
			}
		}
	}
}

func TestDMSString(t *testing.T) {
	assert.Equal(t, `-45°30'0"`, DMS{Degree: -45, Minute: 30, Negative: true}.String())
	assert.Equal(t, `-0°30'0"`, DMS{Minute: 30, Negative: true}.String())
	assert.Equal(t, `10°15'36"`, DMS{Degree: 10, Minute: 15, Second: 36}.String())
}

func TestDecimalDegreeToDMSTooLarge(t *testing.T) {
	for _, v := range []float64{1e300, -1e19, math.MaxFloat64} {
		_, err := DecimalDegreeToDMS(v)
		require.ErrorIs(t, err, ErrInvalidArgument, "value %v", v)
	}
}
