package simulate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RameezRoshan/halfsib/simulate"
)

// TestLevels verifies the 1-based label helper.
func TestLevels(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4}, simulate.Levels(4))
	assert.Equal(t, []int{1}, simulate.Levels(1))
	assert.Nil(t, simulate.Levels(0), "n < 1 yields nil, not an error")
	assert.Nil(t, simulate.Levels(-3))
}

// TestExpand_Labels verifies output length and exact per-label multiplicity,
// with label order preserved.
func TestExpand_Labels(t *testing.T) {
	out, err := simulate.Expand(simulate.Levels(3), []int{2, 0, 3})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 1, 3, 3, 3}, out, "label order preserved, counts exact")
	assert.Len(t, out, 5, "output length equals the count sum")
}

// TestExpand_Effects verifies the float64 broadcast used for group effects.
func TestExpand_Effects(t *testing.T) {
	out, err := simulate.Expand([]float64{1.5, -2.5}, []int{3, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 1.5, 1.5, -2.5, -2.5}, out)
}

// TestExpand_Validation covers shape sentinels.
func TestExpand_Validation(t *testing.T) {
	_, err := simulate.Expand([]int{1, 2}, []int{3})
	assert.ErrorIs(t, err, simulate.ErrLengthMismatch, "parallel slices must match")

	_, err = simulate.Expand([]int{1, 2}, []int{3, -1})
	assert.ErrorIs(t, err, simulate.ErrBadCount, "negative repeat count")
}

// TestExpand_Empty verifies that empty inputs produce an empty (non-nil
// semantics unimportant) broadcast without error.
func TestExpand_Empty(t *testing.T) {
	out, err := simulate.Expand([]int{}, []int{})
	require.NoError(t, err)
	assert.Empty(t, out)
}
