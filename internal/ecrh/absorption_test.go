package ecrh

import (
	"math"
	"testing"

	"github.com/san-kum/snowsim/internal/field"
	"github.com/stretchr/testify/assert"
)

func TestEstimateDefaultConditions(t *testing.T) {
	f := field.NewSnowflake(5.3, 6.2)

	a := Estimate(f, 1.5e19, 3.0, field.Point{R: 8.0, Z: -2.5})

	// tau = 1.5 * 1.0 * (4.1075/5.0) * 1.0
	assert.InDelta(t, 1.23225, a.OpticalDepth, 1e-9)
	assert.InDelta(t, 1-math.Exp(-1.23225), a.Fraction, 1e-9)
	assert.InDelta(t, 4.1075, a.FieldTotal, 1e-9)
}

func TestFractionCapped(t *testing.T) {
	f := field.NewSnowflake(5.3, 6.2)

	// Dense cold plasma drives tau far above the saturation point.
	a := Estimate(f, 2e20, 0.5, field.Point{R: 8.0, Z: -2.5})

	assert.Greater(t, a.OpticalDepth, 5.0)
	assert.Equal(t, AbsorptionCap, a.Fraction)
}

func TestFractionBounds(t *testing.T) {
	f := field.NewSnowflake(5.3, 6.2)

	cases := []struct {
		ne, te float64
	}{
		{1e17, 3.0},
		{1.5e19, 3.0},
		{5e19, 1.0},
		{1e21, 10.0},
	}

	for _, tc := range cases {
		a := Estimate(f, tc.ne, tc.te, field.Point{R: 8.0, Z: -2.5})
		assert.GreaterOrEqual(t, a.Fraction, 0.0, "ne=%g te=%g", tc.ne, tc.te)
		assert.LessOrEqual(t, a.Fraction, AbsorptionCap, "ne=%g te=%g", tc.ne, tc.te)
	}
}

func TestTauScalesWithDensity(t *testing.T) {
	f := field.NewSnowflake(5.3, 6.2)
	p := field.Point{R: 8.0, Z: -2.5}

	a1 := Estimate(f, 1e19, 3.0, p)
	a2 := Estimate(f, 2e19, 3.0, p)

	assert.InDelta(t, 2*a1.OpticalDepth, a2.OpticalDepth, 1e-12)
}
