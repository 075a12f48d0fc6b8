package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ITER-like edge conditions, the defaults for every scenario.
const (
	DefaultDensity      = 1.5e19 // m^-3
	DefaultTemperature  = 3.0    // keV
	DefaultFieldOnAxis  = 5.3    // T
	DefaultMajorRadius  = 6.2    // m
	DefaultHeatingPower = 20.0   // MW
	DefaultWettedArea   = 4.0    // m²
	DefaultDivertorR    = 8.0    // m
	DefaultDivertorZ    = -2.5   // m
)

// Config holds the fixed plasma and divertor parameters for one
// scenario evaluation. It is never mutated after construction.
type Config struct {
	Density      float64        `yaml:"density" json:"density"`
	Temperature  float64        `yaml:"temperature" json:"temperature"`
	FieldOnAxis  float64        `yaml:"field_on_axis" json:"field_on_axis"`
	MajorRadius  float64        `yaml:"major_radius" json:"major_radius"`
	HeatingPower float64        `yaml:"heating_power" json:"heating_power"`
	WettedArea   float64        `yaml:"wetted_area" json:"wetted_area"`
	Divertor     DivertorConfig `yaml:"divertor" json:"divertor"`
}

// DivertorConfig is the strike-point target location.
type DivertorConfig struct {
	R float64 `yaml:"r" json:"r"`
	Z float64 `yaml:"z" json:"z"`
}

func DefaultConfig() *Config {
	return &Config{
		Density:      DefaultDensity,
		Temperature:  DefaultTemperature,
		FieldOnAxis:  DefaultFieldOnAxis,
		MajorRadius:  DefaultMajorRadius,
		HeatingPower: DefaultHeatingPower,
		WettedArea:   DefaultWettedArea,
		Divertor: DivertorConfig{
			R: DefaultDivertorR,
			Z: DefaultDivertorZ,
		},
	}
}

// Load reads a yaml scenario file layered over the defaults, so a file
// only needs to name the parameters it changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
