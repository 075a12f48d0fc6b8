// Package sim orchestrates one complete snowflake divertor evaluation:
// field and flux expansion at the strike point, ECRH absorption, and
// the resulting heat-flux figures against the ITER limit.
package sim

import (
	"github.com/san-kum/snowsim/internal/config"
	"github.com/san-kum/snowsim/internal/divertor"
	"github.com/san-kum/snowsim/internal/ecrh"
	"github.com/san-kum/snowsim/internal/field"
)

// Result is one evaluation pass. Constructed once per run and never
// mutated afterwards.
type Result struct {
	FieldTotal      float64 `json:"field_total"`
	FluxExpansion   float64 `json:"flux_expansion"`
	OpticalDepth    float64 `json:"optical_depth"`
	ECRHEfficiency  float64 `json:"ecrh_efficiency"`
	PowerToDivertor float64 `json:"power_to_divertor"`
	RawHeatFlux     float64 `json:"raw_heat_flux"`
	FinalHeatFlux   float64 `json:"final_heat_flux"`
	HeatReduction   float64 `json:"heat_reduction"`
	SafetyMargin    float64 `json:"safety_margin"`
	Viable          bool    `json:"viable"`
}

// Run performs the full evaluation for cfg. Pure function of the
// configuration: identical inputs produce bit-identical results.
func Run(cfg *config.Config) Result {
	f := field.NewSnowflake(cfg.FieldOnAxis, cfg.MajorRadius)
	strike := field.Point{R: cfg.Divertor.R, Z: cfg.Divertor.Z}

	fluxExpansion := divertor.FluxExpansion(f, strike)
	absorption := ecrh.Estimate(f, cfg.Density, cfg.Temperature, strike)
	loading := divertor.Load(cfg.HeatingPower, absorption.Fraction, cfg.WettedArea, fluxExpansion)

	return Result{
		FieldTotal:      absorption.FieldTotal,
		FluxExpansion:   fluxExpansion,
		OpticalDepth:    absorption.OpticalDepth,
		ECRHEfficiency:  absorption.Fraction,
		PowerToDivertor: loading.PowerToDivertor,
		RawHeatFlux:     loading.Raw,
		FinalHeatFlux:   loading.Final,
		HeatReduction:   loading.ReductionPct,
		SafetyMargin:    loading.SafetyMargin,
		Viable:          loading.Viable,
	}
}
