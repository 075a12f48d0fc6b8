package config

// Presets are named scenario variations layered over the defaults.
var Presets = map[string]*Config{
	"iter-edge": DefaultConfig(),
	"high-power": {
		Density: DefaultDensity, Temperature: DefaultTemperature,
		FieldOnAxis: DefaultFieldOnAxis, MajorRadius: DefaultMajorRadius,
		HeatingPower: 40.0, WettedArea: DefaultWettedArea,
		Divertor: DivertorConfig{R: DefaultDivertorR, Z: DefaultDivertorZ},
	},
	"low-density": {
		Density: 5e18, Temperature: DefaultTemperature,
		FieldOnAxis: DefaultFieldOnAxis, MajorRadius: DefaultMajorRadius,
		HeatingPower: DefaultHeatingPower, WettedArea: DefaultWettedArea,
		Divertor: DivertorConfig{R: DefaultDivertorR, Z: DefaultDivertorZ},
	},
	"hot-edge": {
		Density: DefaultDensity, Temperature: 6.0,
		FieldOnAxis: DefaultFieldOnAxis, MajorRadius: DefaultMajorRadius,
		HeatingPower: DefaultHeatingPower, WettedArea: DefaultWettedArea,
		Divertor: DivertorConfig{R: DefaultDivertorR, Z: DefaultDivertorZ},
	},
	"compact": {
		Density: DefaultDensity, Temperature: DefaultTemperature,
		FieldOnAxis: 4.0, MajorRadius: 3.1,
		HeatingPower: 10.0, WettedArea: 2.0,
		Divertor: DivertorConfig{R: 4.0, Z: -1.6},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
