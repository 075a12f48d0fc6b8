package scan

import (
	"errors"
	"testing"

	"github.com/san-kum/snowsim/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunUnknownParameter(t *testing.T) {
	_, err := Run(config.DefaultConfig(), "bogus", 0, 1, 10)

	var unknownErr ErrUnknownParameter
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "bogus", unknownErr.Name)
}

func TestRunPowerSweep(t *testing.T) {
	s, err := Run(config.DefaultConfig(), ParamPower, 10, 100, 10)
	require.NoError(t, err)

	require.Len(t, s.Values, 10)
	require.Len(t, s.Results, 10)
	assert.Equal(t, 10.0, s.Values[0])
	assert.Equal(t, 100.0, s.Values[9])

	// Final heat flux grows monotonically with heating power.
	flux := s.FinalHeatFlux()
	for i := 1; i < len(flux); i++ {
		assert.Greater(t, flux[i], flux[i-1])
	}
}

func TestViabilityBoundary(t *testing.T) {
	// Sweeping power far enough crosses the ITER limit.
	s, err := Run(config.DefaultConfig(), ParamPower, 10, 2000, 50)
	require.NoError(t, err)

	boundary := s.ViabilityBoundary()
	require.GreaterOrEqual(t, boundary, 1)
	assert.True(t, s.Results[boundary-1].Viable)
	assert.False(t, s.Results[boundary].Viable)
}

func TestViabilityBoundaryAllViable(t *testing.T) {
	s, err := Run(config.DefaultConfig(), ParamPower, 10, 30, 5)
	require.NoError(t, err)

	assert.Equal(t, -1, s.ViabilityBoundary())
}

func TestSweepDoesNotMutateBase(t *testing.T) {
	base := config.DefaultConfig()
	_, err := Run(base, ParamDensity, 1e18, 1e20, 5)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultDensity, base.Density)
}

func TestAbsorptionSeriesBounded(t *testing.T) {
	s, err := Run(config.DefaultConfig(), ParamDensity, 1e18, 1e20, 20)
	require.NoError(t, err)

	for _, a := range s.Absorption() {
		assert.GreaterOrEqual(t, a, 0.0)
		assert.LessOrEqual(t, a, 0.75)
	}
}
