// SPDX-License-Identifier: MIT
// Package: halfsib/simulate
//
// effects.go — NormalEffects: zero-mean normal group and residual draws.
//
// Contract:
//   - n ≥ 0 (else ErrBadCount), sd ≥ 0 (else ErrInvalidStdDev),
//     rng non-nil (else ErrNeedRandSource).
//   - Draws come from distuv.Normal{Mu:0, Sigma:sd} over the supplied RNG.
//   - sd == 0 still consumes n draws from the stream, so switching a single
//     variance off does not shift every later draw in the run.
//
// Complexity: O(n) time and space.

package simulate

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

const methodEffects = "NormalEffects"

// effectMean is the fixed mean of every random effect distribution.
const effectMean = 0.0

// NormalEffects returns n independent draws from Normal(0, sd). Group-level
// callers broadcast the result with Expand; the residual caller uses it
// per-individual as-is.
func NormalEffects(rng *rand.Rand, n int, sd float64) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d < 0: %w", methodEffects, n, ErrBadCount)
	}
	if sd < 0 {
		return nil, fmt.Errorf("%s: sd=%g < 0: %w", methodEffects, sd, ErrInvalidStdDev)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodEffects, ErrNeedRandSource)
	}

	dist := distuv.Normal{Mu: effectMean, Sigma: sd, Src: rng}
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out, nil
}
