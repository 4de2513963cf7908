// SPDX-License-Identifier: MIT
// Package: halfsib/simulate
//
// generate.go — Generate: the single public orchestrator.
//
// Design contract (strict):
//   - One entry-point: Generate(cfg, opts...). Validates cfg, resolves the
//     run options, then executes the pipeline in a fixed order with no
//     branching states.
//   - Draw order (public contract): dam group sizes → sire effects →
//     dam effects → residuals → fixed-effect permutation.
//   - The fixed-effect table (pond and sex, ids and effects) is permuted as
//     one unit, independent of the family ordering; the positional join of
//     the two tables is what realizes random allocation of families to
//     ponds and sexes.
//   - Records are assembled once with every field populated; nothing is
//     mutated afterwards.
//
// Complexity: O(N) time and space beyond the partitioner's bounded retries.

package simulate

import "fmt"

const methodGenerate = "Generate"

// Generate produces one half-sib dataset from cfg. Same cfg, options and
// seed ⇒ identical Dataset; a different seed keeps the row count and schema
// but changes every sampled value.
func Generate(cfg Config, opts ...Option) (Dataset, error) {
	// Refuse to sample from an invalid scenario.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	gc := newGenConfig(opts...)
	rng := gc.rng
	dams := cfg.Dams()

	// 1) Dam-family sizes: exact-sum partition of the population.
	damSizes, err := PartitionSizes(rng, cfg.Individuals, dams, cfg.DamSizeMin, cfg.DamSizeMax, gc.maxAttempts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	// 2) Sire-family sizes: consecutive dam blocks rolled up.
	sireSizes, err := AggregateBlocks(damSizes, cfg.DamsPerSire)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	// 3) Family id vectors in natural (unshuffled) order.
	sireIDs, err := Expand(Levels(cfg.Sires), sireSizes)
	if err != nil {
		return nil, fmt.Errorf("%s: sire ids: %w", methodGenerate, err)
	}
	damIDs, err := Expand(Levels(dams), damSizes)
	if err != nil {
		return nil, fmt.Errorf("%s: dam ids: %w", methodGenerate, err)
	}

	// 4) Random effects, in the documented draw order.
	sireEff, err := NormalEffects(rng, cfg.Sires, cfg.SireSD)
	if err != nil {
		return nil, fmt.Errorf("%s: sire effects: %w", methodGenerate, err)
	}
	sireEffRow, err := Expand(sireEff, sireSizes)
	if err != nil {
		return nil, fmt.Errorf("%s: sire broadcast: %w", methodGenerate, err)
	}
	damEff, err := NormalEffects(rng, dams, cfg.DamSD)
	if err != nil {
		return nil, fmt.Errorf("%s: dam effects: %w", methodGenerate, err)
	}
	damEffRow, err := Expand(damEff, damSizes)
	if err != nil {
		return nil, fmt.Errorf("%s: dam broadcast: %w", methodGenerate, err)
	}
	resid, err := NormalEffects(rng, cfg.Individuals, cfg.ResidualSD)
	if err != nil {
		return nil, fmt.Errorf("%s: residuals: %w", methodGenerate, err)
	}

	// 5) Fixed-effect table in level order: ids and broadcast effects.
	pondIDs, err := Expand(Levels(len(cfg.PondEffects)), cfg.PondCounts)
	if err != nil {
		return nil, fmt.Errorf("%s: pond ids: %w", methodGenerate, err)
	}
	pondEffRow, err := Expand(cfg.PondEffects, cfg.PondCounts)
	if err != nil {
		return nil, fmt.Errorf("%s: pond broadcast: %w", methodGenerate, err)
	}
	sexIDs, err := Expand(Levels(len(cfg.SexEffects)), cfg.SexCounts)
	if err != nil {
		return nil, fmt.Errorf("%s: sex ids: %w", methodGenerate, err)
	}
	sexEffRow, err := Expand(cfg.SexEffects, cfg.SexCounts)
	if err != nil {
		return nil, fmt.Errorf("%s: sex broadcast: %w", methodGenerate, err)
	}

	// 6) Permute the fixed-effect table as one unit: shuffled row i is the
	// level-order row perm[i]. Pond and sex stay paired per row; the family
	// columns keep their natural order.
	perm := rng.Perm(cfg.Individuals)

	// 7) Positional join + response assembly, one Record per individual.
	data := make(Dataset, cfg.Individuals)
	for i := range data {
		src := perm[i]
		data[i] = Record{
			Sire: sireIDs[i],
			Dam:  damIDs[i],
			Pond: pondIDs[src],
			Sex:  sexIDs[src],
			BW: cfg.Intercept + sireEffRow[i] + damEffRow[i] + resid[i] +
				pondEffRow[src] + sexEffRow[src],
		}
	}
	return data, nil
}
