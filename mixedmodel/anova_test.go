package mixedmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RameezRoshan/halfsib/mixedmodel"
)

// Balanced fixture: 2 sires × 2 dams × 3 offspring, responses 1..12.
// All expected numbers below are hand-computed from the EMS equations.
var (
	balR      = []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	balOuter  = []int{1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2}
	balNested = []int{1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4}
)

// TestNestedComponents_Balanced verifies the full ANOVA table and component
// solution against hand-computed values, including the textbook reduction
// k1 = k2 = m and k3 = m·b for a balanced design.
func TestNestedComponents_Balanced(t *testing.T) {
	av, vc, err := mixedmodel.NestedComponents(balR, balOuter, balNested)
	require.NoError(t, err)

	assert.Equal(t, 1, av.GroupDF)
	assert.Equal(t, 2, av.NestedDF)
	assert.Equal(t, 8, av.WithinDF)

	assert.InDelta(t, 108.0, av.GroupMS, 1e-9, "SS_sire=108 over df=1")
	assert.InDelta(t, 13.5, av.NestedMS, 1e-9, "SS_dam=27 over df=2")
	assert.InDelta(t, 1.0, av.WithinMS, 1e-9, "SS_within=8 over df=8")

	assert.InDelta(t, 3.0, av.K1, 1e-9, "balanced k1 = m")
	assert.InDelta(t, 3.0, av.K2, 1e-9, "balanced k2 = m")
	assert.InDelta(t, 6.0, av.K3, 1e-9, "balanced k3 = m·b")

	assert.InDelta(t, 1.0, vc.Residual, 1e-9)
	assert.InDelta(t, 25.0/6.0, vc.Nested, 1e-9, "(13.5-1)/3")
	assert.InDelta(t, 15.75, vc.Group, 1e-9, "(108-1-3·25/6)/6")
	assert.InDelta(t, 1.0+25.0/6.0+15.75, vc.Total(), 1e-9)
}

// TestNestedComponents_SumOfSquaresPartition verifies that the strata sums
// of squares add up to the corrected total on an unbalanced grouping.
func TestNestedComponents_SumOfSquaresPartition(t *testing.T) {
	r := []float64{2.5, -1, 0.5, 3, -2, 4, 1, -0.5, 2, 0}
	outer := []int{1, 1, 1, 1, 1, 2, 2, 2, 2, 2}
	nested := []int{1, 1, 2, 2, 2, 3, 3, 4, 4, 4}

	av, _, err := mixedmodel.NestedComponents(r, outer, nested)
	require.NoError(t, err)

	// Rebuild the corrected total from the table.
	total := av.GroupMS*float64(av.GroupDF) +
		av.NestedMS*float64(av.NestedDF) +
		av.WithinMS*float64(av.WithinDF)

	var sum, sq float64
	for _, v := range r {
		sum += v
		sq += v * v
	}
	want := sq - sum*sum/float64(len(r))
	assert.InDelta(t, want, total, 1e-9, "SS_group+SS_nested+SS_within = corrected total")
}

// TestNestedComponents_Truncation verifies that pure-noise strata cannot go
// negative: with zero between-group signal the component estimates clamp
// at zero whenever their mean square falls below the within mean square.
func TestNestedComponents_Truncation(t *testing.T) {
	// Group means are identical; all variation is within dams.
	r := []float64{-3, 3, -3, 3, -3, 3, -3, 3, -3, 3, -3, 3}
	_, vc, err := mixedmodel.NestedComponents(r, balOuter, balNested)
	require.NoError(t, err)

	assert.Zero(t, vc.Group, "no between-sire signal")
	assert.Zero(t, vc.Nested, "no between-dam signal")
	assert.Greater(t, vc.Residual, 0.0)
}

// TestNestedComponents_Validation covers the structural sentinels.
func TestNestedComponents_Validation(t *testing.T) {
	_, _, err := mixedmodel.NestedComponents(nil, nil, nil)
	assert.ErrorIs(t, err, mixedmodel.ErrEmptyData, "empty input")

	_, _, err = mixedmodel.NestedComponents([]float64{1, 2}, []int{1}, []int{1, 2})
	assert.ErrorIs(t, err, mixedmodel.ErrEmptyData, "column length mismatch")

	// Dam 1 appears under both sires.
	_, _, err = mixedmodel.NestedComponents(
		[]float64{1, 2, 3, 4},
		[]int{1, 1, 2, 2},
		[]int{1, 2, 1, 3},
	)
	assert.ErrorIs(t, err, mixedmodel.ErrNotNested)

	// Single outer group.
	_, _, err = mixedmodel.NestedComponents(
		[]float64{1, 2, 3, 4},
		[]int{1, 1, 1, 1},
		[]int{1, 1, 2, 2},
	)
	assert.ErrorIs(t, err, mixedmodel.ErrTooFewGroups, "one sire")

	// One dam per sire: nested df would be zero.
	_, _, err = mixedmodel.NestedComponents(
		[]float64{1, 2, 3, 4},
		[]int{1, 1, 2, 2},
		[]int{1, 1, 2, 2},
	)
	assert.ErrorIs(t, err, mixedmodel.ErrTooFewGroups, "no nested df")

	// Every observation alone in its dam: no residual df.
	_, _, err = mixedmodel.NestedComponents(
		[]float64{1, 2, 3, 4},
		[]int{1, 1, 2, 2},
		[]int{1, 2, 3, 4},
	)
	assert.ErrorIs(t, err, mixedmodel.ErrNoResidualDF)
}
