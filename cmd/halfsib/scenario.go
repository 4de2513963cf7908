package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RameezRoshan/halfsib/simulate"
)

// scenario is the YAML-facing mirror of simulate.Config. Omitted fields keep
// the value pre-filled from the default scenario, so partial files work.
type scenario struct {
	Sires       int       `yaml:"sires"`
	DamsPerSire int       `yaml:"dams_per_sire"`
	Individuals int       `yaml:"individuals"`
	DamSizeMin  int       `yaml:"dam_size_min"`
	DamSizeMax  int       `yaml:"dam_size_max"`
	SireSD      float64   `yaml:"sire_sd"`
	DamSD       float64   `yaml:"dam_sd"`
	ResidualSD  float64   `yaml:"residual_sd"`
	Intercept   float64   `yaml:"intercept"`
	PondEffects []float64 `yaml:"pond_effects"`
	PondCounts  []int     `yaml:"pond_counts"`
	SexEffects  []float64 `yaml:"sex_effects"`
	SexCounts   []int     `yaml:"sex_counts"`
}

// fromConfig seeds a scenario with every field of cfg.
func fromConfig(cfg simulate.Config) scenario {
	return scenario{
		Sires:       cfg.Sires,
		DamsPerSire: cfg.DamsPerSire,
		Individuals: cfg.Individuals,
		DamSizeMin:  cfg.DamSizeMin,
		DamSizeMax:  cfg.DamSizeMax,
		SireSD:      cfg.SireSD,
		DamSD:       cfg.DamSD,
		ResidualSD:  cfg.ResidualSD,
		Intercept:   cfg.Intercept,
		PondEffects: cfg.PondEffects,
		PondCounts:  cfg.PondCounts,
		SexEffects:  cfg.SexEffects,
		SexCounts:   cfg.SexCounts,
	}
}

// toConfig converts back to the generator configuration.
func (s scenario) toConfig() simulate.Config {
	return simulate.Config{
		Sires:       s.Sires,
		DamsPerSire: s.DamsPerSire,
		Individuals: s.Individuals,
		DamSizeMin:  s.DamSizeMin,
		DamSizeMax:  s.DamSizeMax,
		SireSD:      s.SireSD,
		DamSD:       s.DamSD,
		ResidualSD:  s.ResidualSD,
		Intercept:   s.Intercept,
		PondEffects: s.PondEffects,
		PondCounts:  s.PondCounts,
		SexEffects:  s.SexEffects,
		SexCounts:   s.SexCounts,
	}
}

// loadScenario reads the YAML scenario at path over the default scenario.
// An empty path returns the defaults untouched. The result is validated.
func loadScenario(path string) (simulate.Config, error) {
	s := fromConfig(simulate.DefaultConfig())
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return simulate.Config{}, fmt.Errorf("read scenario: %w", err)
		}
		if err := yaml.Unmarshal(raw, &s); err != nil {
			return simulate.Config{}, fmt.Errorf("parse scenario: %w", err)
		}
	}

	cfg := s.toConfig()
	if err := cfg.Validate(); err != nil {
		return simulate.Config{}, fmt.Errorf("scenario %q: %w", path, err)
	}
	return cfg, nil
}
