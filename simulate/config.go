// SPDX-License-Identifier: MIT
// Package: halfsib/simulate
//
// config.go — the scenario configuration and its validation.
//
// Design:
//   • Config is the single source of truth for every scalar input of a run.
//   • Validation is explicit, ordered, and returns wrapped sentinels;
//     Generate refuses to sample from an invalid Config.
//   • DefaultConfig returns the canonical 100-individual scenario used in
//     docs, examples and golden tests.

package simulate

import "fmt"

// Config holds every scenario input, fixed at run start. The zero value is
// not usable; start from DefaultConfig or fill all fields.
type Config struct {
	// Sires is the number of paternal families (≥ 1).
	Sires int

	// DamsPerSire is the fixed block size: consecutive dam families
	// aggregated under one sire (≥ 1). Total dams = Sires * DamsPerSire.
	DamsPerSire int

	// Individuals is the total population count N (≥ 1).
	Individuals int

	// DamSizeMin and DamSizeMax bound the per-dam family size draw
	// (inclusive, 1 ≤ min ≤ max). Feasibility requires
	// Dams()*DamSizeMin ≤ Individuals ≤ Dams()*DamSizeMax.
	DamSizeMin int
	DamSizeMax int

	// SireSD, DamSD and ResidualSD are the standard deviations of the
	// zero-mean normal sire, dam and residual effects (each ≥ 0).
	SireSD     float64
	DamSD      float64
	ResidualSD float64

	// Intercept is the grand mean added to every response.
	Intercept float64

	// PondEffects[i] is the externally specified effect of pond level i+1;
	// PondCounts[i] is the number of individuals assigned to it. The two
	// slices must have equal nonzero length and the counts must sum to
	// Individuals. One allocation drives both the Pond id vector and the
	// pond-effect broadcast.
	PondEffects []float64
	PondCounts  []int

	// SexEffects and SexCounts follow the same contract for the sex factor.
	SexEffects []float64
	SexCounts  []int
}

// Canonical defaults (named, no magic numbers in DefaultConfig).
const (
	defaultSires       = 5
	defaultDamsPerSire = 2
	defaultIndividuals = 100
	defaultDamSizeMin  = 5
	defaultDamSizeMax  = 15
	defaultSireSD      = 3.0
	defaultDamSD       = 2.0
	defaultResidualSD  = 6.0
	defaultIntercept   = 50.0
)

// DefaultConfig returns the canonical scenario: 5 sires × 2 dams each,
// 100 individuals with dam families sized in [5,15], pond effects
// {5,-6,3,-2} over counts {30,20,25,25}, sex effects {5,-5} over counts
// {50,50}, intercept 50.
func DefaultConfig() Config {
	return Config{
		Sires:       defaultSires,
		DamsPerSire: defaultDamsPerSire,
		Individuals: defaultIndividuals,
		DamSizeMin:  defaultDamSizeMin,
		DamSizeMax:  defaultDamSizeMax,
		SireSD:      defaultSireSD,
		DamSD:       defaultDamSD,
		ResidualSD:  defaultResidualSD,
		Intercept:   defaultIntercept,
		PondEffects: []float64{5, -6, 3, -2},
		PondCounts:  []int{30, 20, 25, 25},
		SexEffects:  []float64{5, -5},
		SexCounts:   []int{50, 50},
	}
}

// Dams returns the total number of maternal families, Sires * DamsPerSire.
func (c Config) Dams() int { return c.Sires * c.DamsPerSire }

// methodValidate tags validation errors with a stable context prefix.
const methodValidate = "Config.Validate"

// Validate checks every field against its documented domain. Checks run in
// the priority order documented in errors.go and stop at the first failure.
func (c Config) Validate() error {
	// Counts first: family structure and population size.
	if c.Sires < 1 {
		return fmt.Errorf("%s: Sires=%d < 1: %w", methodValidate, c.Sires, ErrBadCount)
	}
	if c.DamsPerSire < 1 {
		return fmt.Errorf("%s: DamsPerSire=%d < 1: %w", methodValidate, c.DamsPerSire, ErrBadCount)
	}
	if c.Individuals < 1 {
		return fmt.Errorf("%s: Individuals=%d < 1: %w", methodValidate, c.Individuals, ErrBadCount)
	}

	// Sample range for dam-family sizes.
	if c.DamSizeMin < 1 || c.DamSizeMax < c.DamSizeMin {
		return fmt.Errorf("%s: range [%d,%d]: %w",
			methodValidate, c.DamSizeMin, c.DamSizeMax, ErrBadRange)
	}

	// Distribution parameters.
	if c.SireSD < 0 || c.DamSD < 0 || c.ResidualSD < 0 {
		return fmt.Errorf("%s: SDs (sire=%g, dam=%g, residual=%g): %w",
			methodValidate, c.SireSD, c.DamSD, c.ResidualSD, ErrInvalidStdDev)
	}

	// Fixed-factor allocation shape.
	if err := c.validateFactor("pond", c.PondEffects, c.PondCounts); err != nil {
		return err
	}
	if err := c.validateFactor("sex", c.SexEffects, c.SexCounts); err != nil {
		return err
	}

	// Partition reachability: the resampling loop must be able to hit N.
	dams := c.Dams()
	if dams*c.DamSizeMin > c.Individuals || dams*c.DamSizeMax < c.Individuals {
		return fmt.Errorf("%s: %d dams in [%d,%d] cannot sum to %d: %w",
			methodValidate, dams, c.DamSizeMin, c.DamSizeMax, c.Individuals, ErrInfeasiblePartition)
	}

	return nil
}

// validateFactor checks one fixed factor's effect/count slices: equal
// nonzero length, nonnegative counts, counts summing to Individuals.
func (c Config) validateFactor(name string, effects []float64, counts []int) error {
	if len(effects) == 0 || len(effects) != len(counts) {
		return fmt.Errorf("%s: %s effects=%d counts=%d: %w",
			methodValidate, name, len(effects), len(counts), ErrLengthMismatch)
	}
	sum := 0
	for i, n := range counts {
		if n < 0 {
			return fmt.Errorf("%s: %s count[%d]=%d < 0: %w", methodValidate, name, i, n, ErrBadCount)
		}
		sum += n
	}
	if sum != c.Individuals {
		return fmt.Errorf("%s: %s counts sum to %d, want %d: %w",
			methodValidate, name, sum, c.Individuals, ErrCountSum)
	}
	return nil
}
