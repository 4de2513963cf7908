// SPDX-License-Identifier: MIT
// Package: halfsib/mixedmodel
//
// anova.go — NestedComponents: unbalanced two-level nested ANOVA.
//
// Model for the (fixed-effect-adjusted) observations r:
//
//	r = group effect + nested effect + residual
//
// with the nested factor strictly inside the outer one. Sums of squares:
//
//	C  = (Σr)²/n
//	A  = Σ_g R_g²/n_g            (outer group totals)
//	B  = Σ_d R_d²/n_d            (nested group totals)
//	SS_group  = A − C            df = G−1
//	SS_nested = B − A            df = D−G
//	SS_within = Σr² − B          df = n−D
//
// Unbalanced expected-mean-square coefficients (Henderson):
//
//	k1 = (n − Σ_g (Σ_{d∈g} n_d²)/n_g) / (D−G)
//	k2 = (Σ_g (Σ_{d∈g} n_d²)/n_g − Σ_d n_d²/n) / (G−1)
//	k3 = (n − Σ_g n_g²/n) / (G−1)
//
// solved as σ²e = MS_within, σ²nested = (MS_nested − σ²e)/k1,
// σ²group = (MS_group − σ²e − k2·σ²nested)/k3, each truncated at zero.
//
// Determinism: group ids are iterated in sorted order so float summation
// order is stable across runs.

package mixedmodel

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

const methodComponents = "NestedComponents"

// nestedGroup accumulates one nested-level (dam) group.
type nestedGroup struct {
	outer int // owning outer-level id; must be unique per nested id
	n     int
	sum   float64
}

// outerGroup accumulates one outer-level (sire) group.
type outerGroup struct {
	n        int
	sum      float64
	sqNested float64 // Σ n_d² over its nested groups
}

// NestedComponents runs the unbalanced nested ANOVA on r grouped by the
// parallel outer and nested id columns, and solves the expected mean
// squares for the variance components.
func NestedComponents(r []float64, outer, nested []int) (ANOVA, VarianceComponents, error) {
	var av ANOVA
	var vc VarianceComponents

	n := len(r)
	if n == 0 {
		return av, vc, fmt.Errorf("%s: %w", methodComponents, ErrEmptyData)
	}
	if len(outer) != n || len(nested) != n {
		return av, vc, fmt.Errorf("%s: columns %d/%d for %d observations: %w",
			methodComponents, len(outer), len(nested), n, ErrEmptyData)
	}

	// Accumulate per-group totals; verify strict nesting along the way.
	nestedStats := make(map[int]*nestedGroup)
	outerStats := make(map[int]*outerGroup)
	for i := 0; i < n; i++ {
		d, ok := nestedStats[nested[i]]
		if !ok {
			d = &nestedGroup{outer: outer[i]}
			nestedStats[nested[i]] = d
		} else if d.outer != outer[i] {
			return av, vc, fmt.Errorf("%s: nested id %d under outer ids %d and %d: %w",
				methodComponents, nested[i], d.outer, outer[i], ErrNotNested)
		}
		d.n++
		d.sum += r[i]

		g, ok := outerStats[outer[i]]
		if !ok {
			g = &outerGroup{}
			outerStats[outer[i]] = g
		}
		g.n++
		g.sum += r[i]
	}

	gCount := len(outerStats)
	dCount := len(nestedStats)
	if gCount < 2 {
		return av, vc, fmt.Errorf("%s: %d outer group(s), need ≥ 2: %w",
			methodComponents, gCount, ErrTooFewGroups)
	}
	if dCount <= gCount {
		return av, vc, fmt.Errorf("%s: %d nested groups under %d outer groups leave no nested df: %w",
			methodComponents, dCount, gCount, ErrTooFewGroups)
	}
	if n <= dCount {
		return av, vc, fmt.Errorf("%s: %d observations in %d nested groups: %w",
			methodComponents, n, dCount, ErrNoResidualDF)
	}

	// Fold nested sizes into their outer groups in sorted id order.
	nestedIDs := make([]int, 0, dCount)
	for id := range nestedStats {
		nestedIDs = append(nestedIDs, id)
	}
	sort.Ints(nestedIDs)

	outerIDs := make([]int, 0, gCount)
	for id := range outerStats {
		outerIDs = append(outerIDs, id)
	}
	sort.Ints(outerIDs)

	fn := float64(n)
	grand := floats.Sum(r)
	totalSq := floats.Dot(r, r)
	c := grand * grand / fn

	var b, sqNestedOverN float64
	for _, id := range nestedIDs {
		d := nestedStats[id]
		b += d.sum * d.sum / float64(d.n)
		sqNestedOverN += float64(d.n) * float64(d.n)
		outerStats[d.outer].sqNested += float64(d.n) * float64(d.n)
	}
	sqNestedOverN /= fn

	var a, sqNestedOverOuter, sqOuterOverN float64
	for _, id := range outerIDs {
		g := outerStats[id]
		a += g.sum * g.sum / float64(g.n)
		sqNestedOverOuter += g.sqNested / float64(g.n)
		sqOuterOverN += float64(g.n) * float64(g.n)
	}
	sqOuterOverN /= fn

	av.GroupDF = gCount - 1
	av.NestedDF = dCount - gCount
	av.WithinDF = n - dCount
	av.GroupMS = (a - c) / float64(av.GroupDF)
	av.NestedMS = (b - a) / float64(av.NestedDF)
	av.WithinMS = (totalSq - b) / float64(av.WithinDF)
	av.K1 = (fn - sqNestedOverOuter) / float64(av.NestedDF)
	av.K2 = (sqNestedOverOuter - sqNestedOverN) / float64(av.GroupDF)
	av.K3 = (fn - sqOuterOverN) / float64(av.GroupDF)

	// Invert the expected mean squares, truncating at zero.
	vc.Residual = av.WithinMS
	vc.Nested = max(0, (av.NestedMS-vc.Residual)/av.K1)
	vc.Group = max(0, (av.GroupMS-vc.Residual-av.K2*vc.Nested)/av.K3)

	return av, vc, nil
}
