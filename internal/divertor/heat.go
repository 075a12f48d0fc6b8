package divertor

// ITERLimit is the steady-state heat-flux limit used for the viability
// verdict, in MW/m².
const ITERLimit = 10.0

// Loading is the heat-flux picture at the divertor target. Raw is the
// flux before flux-expansion spreading, Final after.
type Loading struct {
	PowerToDivertor float64 // MW
	Raw             float64 // MW/m²
	Final           float64 // MW/m²
	ReductionPct    float64
	SafetyMargin    float64
	Viable          bool
}

// Load computes the divertor heat loading. heatPower is the total
// heating power in MW, absorbed the ECRH absorption fraction,
// wettedArea the target area in m². A zero wetted area or flux
// expansion propagates a non-finite result; inputs are not validated.
func Load(heatPower, absorbed, wettedArea, fluxExpansion float64) Loading {
	power := heatPower * (1 - absorbed)
	raw := power / wettedArea
	final := raw / fluxExpansion

	return Loading{
		PowerToDivertor: power,
		Raw:             raw,
		Final:           final,
		ReductionPct:    (raw - final) / raw * 100,
		SafetyMargin:    ITERLimit / final,
		Viable:          final < ITERLimit,
	}
}
