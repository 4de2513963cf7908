package simulate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/RameezRoshan/halfsib/simulate"
)

// TestNormalEffects_Shape verifies draw count and determinism per seed.
func TestNormalEffects_Shape(t *testing.T) {
	a, err := simulate.NormalEffects(newRNG(11), 25, 2.0)
	require.NoError(t, err)
	require.Len(t, a, 25)

	b, err := simulate.NormalEffects(newRNG(11), 25, 2.0)
	require.NoError(t, err)
	assert.Equal(t, a, b, "identical seed must reproduce identical draws")

	c, err := simulate.NormalEffects(newRNG(12), 25, 2.0)
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "different seed must change the draws")
}

// TestNormalEffects_ZeroSD verifies that sd=0 yields exact zeros while still
// consuming the stream (so later draws stay aligned across scenarios).
func TestNormalEffects_ZeroSD(t *testing.T) {
	rng := newRNG(5)
	zeros, err := simulate.NormalEffects(rng, 10, 0)
	require.NoError(t, err)
	for i, v := range zeros {
		assert.Zero(t, v, "draw %d must be exactly zero", i)
	}

	// The stream advanced: a fresh seed-5 stream that skips 10 draws lands
	// on the same next value.
	next, err := simulate.NormalEffects(rng, 1, 1.0)
	require.NoError(t, err)

	ref := newRNG(5)
	if _, err = simulate.NormalEffects(ref, 10, 1.0); err != nil {
		t.Fatal(err)
	}
	refNext, err := simulate.NormalEffects(ref, 1, 1.0)
	require.NoError(t, err)
	assert.Equal(t, refNext, next, "sd=0 must consume the same number of draws as sd>0")
}

// TestNormalEffects_Moments sanity-checks mean and standard deviation on a
// large sample (tolerances are many standard errors wide).
func TestNormalEffects_Moments(t *testing.T) {
	draws, err := simulate.NormalEffects(newRNG(202), 10000, 1.0)
	require.NoError(t, err)

	mean, std := stat.MeanStdDev(draws, nil)
	assert.InDelta(t, 0.0, mean, 0.05, "sample mean of N(0,1)")
	assert.InDelta(t, 1.0, std, 0.05, "sample std of N(0,1)")
}

// TestNormalEffects_Validation covers the parameter sentinels.
func TestNormalEffects_Validation(t *testing.T) {
	_, err := simulate.NormalEffects(newRNG(1), -1, 1.0)
	assert.ErrorIs(t, err, simulate.ErrBadCount, "negative draw count")

	_, err = simulate.NormalEffects(newRNG(1), 3, -0.5)
	assert.ErrorIs(t, err, simulate.ErrInvalidStdDev, "negative sd")

	_, err = simulate.NormalEffects(nil, 3, 1.0)
	assert.ErrorIs(t, err, simulate.ErrNeedRandSource, "nil rng")
}
