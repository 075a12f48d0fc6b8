// Package ecrh estimates electron cyclotron resonance heating
// absorption for edge plasma conditions. The optical depth is a
// heuristic proxy for the full ray-tracing path integral.
package ecrh

import (
	"math"

	"github.com/san-kum/snowsim/internal/field"
)

const (
	// PathLength is the microwave path length at the plasma edge, m.
	PathLength = 2.5

	// AbsorptionCap is the realistic saturation ceiling.
	AbsorptionCap = 0.75

	refDensity     = 1e19 // m^-3
	refPathLength  = 2.5  // m
	refField       = 5.0  // T
	refTemperature = 3.0  // keV
)

// Absorption is one ECRH evaluation: the absorbed power fraction, the
// field magnitude at the queried point, and the optical depth that
// produced the fraction.
type Absorption struct {
	Fraction     float64
	FieldTotal   float64
	OpticalDepth float64
}

// Estimate computes ECRH absorption at p for electron density ne
// (m^-3) and temperature te (keV). te must be positive; the exponent
// term is not guarded.
func Estimate(f *field.Field, ne, te float64, p field.Point) Absorption {
	b := f.At(p).Total

	tau := (ne / refDensity) *
		(PathLength / refPathLength) *
		(b / refField) *
		math.Pow(refTemperature/te, 1.5)

	fraction := 1 - math.Exp(-tau)
	if fraction > AbsorptionCap {
		fraction = AbsorptionCap
	}

	return Absorption{
		Fraction:     fraction,
		FieldTotal:   b,
		OpticalDepth: tau,
	}
}
