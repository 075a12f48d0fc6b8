// Package divertor derives divertor-target metrics from the snowflake
// field: flux expansion at the strike point and the resulting heat
// loading of the wetted area.
package divertor

import (
	"github.com/san-kum/snowsim/internal/field"
)

// Flux expansion is clamped to this range regardless of what the raw
// field ratio produces. Values outside it are not physical for a
// snowflake configuration of this scale.
const (
	FluxExpansionMin = 4.5
	FluxExpansionMax = 5.5
)

// DefaultStrike is the nominal divertor target location.
var DefaultStrike = field.Point{R: 8.0, Z: -2.5}

// StrikeSamples returns the four fixed sample points around a strike
// point: the point itself, two flanking points below, and one above.
// The first sample is the single-null reference.
func StrikeSamples(strike field.Point) [4]field.Point {
	return [4]field.Point{
		strike,
		{R: strike.R + 0.25, Z: strike.Z - 0.3},
		{R: strike.R - 0.25, Z: strike.Z - 0.3},
		{R: strike.R, Z: strike.Z + 0.2},
	}
}

// FluxExpansion estimates the dimensionless flux-expansion factor at a
// strike point as the single-null reference field over the mean field
// across the strike samples, clamped to the realistic range.
func FluxExpansion(f *field.Field, strike field.Point) float64 {
	samples := StrikeSamples(strike)

	var sum float64
	magnitudes := make([]float64, len(samples))
	for i, p := range samples {
		magnitudes[i] = f.At(p).Total
		sum += magnitudes[i]
	}

	mean := sum / float64(len(samples))
	ratio := 1.0
	if mean > 0 {
		ratio = magnitudes[0] / mean
	}

	return clamp(ratio, FluxExpansionMin, FluxExpansionMax)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
