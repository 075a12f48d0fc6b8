package field

import "math"

const (
	// NullCutoff is the distance beyond which a null contributes nothing.
	// The cutoff is hard; the field jumps discontinuously across it.
	NullCutoff = 0.8

	// gaussWidth sets the Gaussian falloff of a null's perturbation.
	gaussWidth = 0.3

	// eps keeps the poloidal terms finite at a null center.
	eps = 0.001
)

// Point is a position in the poloidal plane (major radius R, height Z),
// both in meters.
type Point struct {
	R float64
	Z float64
}

// Null is a localized magnetic null perturbation. Strength is a
// dimensionless fraction of the on-axis toroidal field.
type Null struct {
	R        float64
	Z        float64
	Strength float64
}

// Sample is the field evaluated at one point. Total is the Euclidean
// norm of the toroidal component and the two poloidal accumulators.
type Sample struct {
	Total float64
	PolR  float64
	PolZ  float64
}

// Field is the snowflake field model: toroidal field B0*R0/R plus the
// null perturbations. Immutable after construction.
type Field struct {
	B0    float64
	R0    float64
	Nulls []Null
}

// NewSnowflake builds the four-null snowflake layout around the major
// radius r0: a primary null below the midplane, two secondary nulls
// flanking it, and a weak tertiary null above.
func NewSnowflake(b0, r0 float64) *Field {
	return &Field{
		B0: b0,
		R0: r0,
		Nulls: []Null{
			{R: r0 + 0.15, Z: -2.3, Strength: 0.25},
			{R: r0 + 0.35, Z: -2.6, Strength: 0.18},
			{R: r0 - 0.35, Z: -2.6, Strength: 0.18},
			{R: r0, Z: -2.0, Strength: 0.12},
		},
	}
}

// At evaluates the field at p. Requires p.R > 0.
func (f *Field) At(p Point) Sample {
	bTor := f.B0 * f.R0 / p.R

	var polR, polZ float64
	for _, n := range f.Nulls {
		dR := p.R - n.R
		dZ := p.Z - n.Z
		dist := math.Sqrt(dR*dR + dZ*dZ)
		if dist >= NullCutoff {
			continue
		}
		scale := n.Strength * f.B0 * math.Exp(-dist*dist/gaussWidth)
		polR += scale * dZ / (dist + eps)
		polZ += scale * dR / (dist + eps)
	}

	return Sample{
		Total: math.Sqrt(bTor*bTor + polR*polR + polZ*polZ),
		PolR:  polR,
		PolZ:  polZ,
	}
}

// Toroidal returns the 1/R toroidal component alone.
func (f *Field) Toroidal(r float64) float64 {
	return f.B0 * f.R0 / r
}
