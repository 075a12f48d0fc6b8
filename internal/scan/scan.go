// Package scan sweeps one scenario parameter across a range and
// collects the evaluation results, for terminal plotting and viability
// boundary hunting.
package scan

import (
	"fmt"

	"github.com/san-kum/snowsim/internal/config"
	"github.com/san-kum/snowsim/internal/sim"
)

// Parameter names accepted by Run.
const (
	ParamDensity     = "density"
	ParamTemperature = "temperature"
	ParamField       = "field"
	ParamRadius      = "radius"
	ParamPower       = "power"
	ParamArea        = "area"
	ParamDivertorR   = "divertor-r"
	ParamDivertorZ   = "divertor-z"
)

// ErrUnknownParameter reports a sweep over a parameter Run does not know.
type ErrUnknownParameter struct {
	Name string
}

func (e ErrUnknownParameter) Error() string {
	return fmt.Sprintf("scan: unknown parameter %q (known: %v)", e.Name, Parameters())
}

// Sweep is one completed parameter sweep.
type Sweep struct {
	Param   string
	Values  []float64
	Results []sim.Result
}

// Parameters lists the sweepable parameter names.
func Parameters() []string {
	return []string{
		ParamDensity, ParamTemperature, ParamField, ParamRadius,
		ParamPower, ParamArea, ParamDivertorR, ParamDivertorZ,
	}
}

// Run evaluates the scenario at steps evenly spaced values of param in
// [min, max], holding every other parameter at its base value.
func Run(base *config.Config, param string, min, max float64, steps int) (*Sweep, error) {
	if !known(param) {
		return nil, ErrUnknownParameter{Name: param}
	}
	if steps < 2 {
		steps = 2
	}

	s := &Sweep{
		Param:   param,
		Values:  make([]float64, steps),
		Results: make([]sim.Result, steps),
	}

	for i := 0; i < steps; i++ {
		v := min + (max-min)*float64(i)/float64(steps-1)
		cfg := *base
		apply(&cfg, param, v)
		s.Values[i] = v
		s.Results[i] = sim.Run(&cfg)
	}

	return s, nil
}

// FinalHeatFlux extracts the final heat flux series for plotting.
func (s *Sweep) FinalHeatFlux() []float64 {
	out := make([]float64, len(s.Results))
	for i, r := range s.Results {
		out[i] = r.FinalHeatFlux
	}
	return out
}

// Absorption extracts the ECRH efficiency series for plotting.
func (s *Sweep) Absorption() []float64 {
	out := make([]float64, len(s.Results))
	for i, r := range s.Results {
		out[i] = r.ECRHEfficiency
	}
	return out
}

// ViabilityBoundary returns the index of the first non-viable result,
// or -1 if every point stays inside the limit.
func (s *Sweep) ViabilityBoundary() int {
	for i, r := range s.Results {
		if !r.Viable {
			return i
		}
	}
	return -1
}

func known(param string) bool {
	for _, p := range Parameters() {
		if p == param {
			return true
		}
	}
	return false
}

func apply(cfg *config.Config, param string, v float64) {
	switch param {
	case ParamDensity:
		cfg.Density = v
	case ParamTemperature:
		cfg.Temperature = v
	case ParamField:
		cfg.FieldOnAxis = v
	case ParamRadius:
		cfg.MajorRadius = v
	case ParamPower:
		cfg.HeatingPower = v
	case ParamArea:
		cfg.WettedArea = v
	case ParamDivertorR:
		cfg.Divertor.R = v
	case ParamDivertorZ:
		cfg.Divertor.Z = v
	}
}
