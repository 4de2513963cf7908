// SPDX-License-Identifier: MIT
// Package: halfsib/simulate
//
// partition.go — PartitionSizes: exact-sum group-size sampling.
//
// Canonical model:
//   - Draw G independent uniforms from the inclusive range [lo,hi]; accept
//     the whole set iff it sums exactly to the target; otherwise redraw the
//     whole set.
//
// Contract:
//   - groups ≥ 1 (else ErrBadCount), 1 ≤ lo ≤ hi (else ErrBadRange),
//     maxAttempts ≥ 1 (else ErrBadCount), rng non-nil (else ErrNeedRandSource).
//   - Reachability precondition: groups*lo ≤ total ≤ groups*hi
//     (else ErrInfeasiblePartition) — the loop can never be entered on an
//     impossible target, removing the non-termination hazard.
//   - Attempt budget: after maxAttempts whole-set redraws without an exact
//     sum, returns ErrPartitionExhausted with full diagnostics.
//
// Complexity:
//   - Time: O(groups) per attempt, maxAttempts attempts worst case.
//   - Space: O(groups), the candidate buffer is reused across attempts.
//
// Determinism:
//   - Draw order is i ascending within each attempt; attempts consume the
//     stream in order. Fixed seed ⇒ identical accepted set.

package simulate

import (
	"fmt"

	"golang.org/x/exp/rand"
)

const methodPartition = "PartitionSizes"

// PartitionSizes draws groups integers uniformly from [lo,hi] until they sum
// exactly to total, redrawing the whole set on a miss, up to maxAttempts
// attempts. The returned slice has length groups, every value in [lo,hi],
// and sums to total.
func PartitionSizes(rng *rand.Rand, total, groups, lo, hi, maxAttempts int) ([]int, error) {
	// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
	if groups < 1 {
		return nil, fmt.Errorf("%s: groups=%d < 1: %w", methodPartition, groups, ErrBadCount)
	}
	if lo < 1 || hi < lo {
		return nil, fmt.Errorf("%s: range [%d,%d]: %w", methodPartition, lo, hi, ErrBadRange)
	}
	if maxAttempts < 1 {
		return nil, fmt.Errorf("%s: maxAttempts=%d < 1: %w", methodPartition, maxAttempts, ErrBadCount)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodPartition, ErrNeedRandSource)
	}

	// 2) Reachability: guard the loop before consuming any randomness.
	if groups*lo > total || groups*hi < total {
		return nil, fmt.Errorf("%s: %d draws in [%d,%d] cannot sum to %d: %w",
			methodPartition, groups, lo, hi, total, ErrInfeasiblePartition)
	}

	// 3) Constrained resampling with a hard attempt cap.
	span := hi - lo + 1
	sizes := make([]int, groups)
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		sum := 0
		for i := range sizes {
			sizes[i] = lo + rng.Intn(span)
			sum += sizes[i]
		}
		if sum == total {
			return sizes, nil
		}
	}

	return nil, fmt.Errorf("%s: no exact-sum draw after %d attempts (total=%d, groups=%d, range=[%d,%d]): %w",
		methodPartition, maxAttempts, total, groups, lo, hi, ErrPartitionExhausted)
}
