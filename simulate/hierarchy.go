// SPDX-License-Identifier: MIT
// Package: halfsib/simulate
//
// hierarchy.go — AggregateBlocks: dam families rolled up into sire families.
//
// Contract:
//   - block ≥ 1 (else ErrBadCount); len(sizes) ≥ 1 (else ErrBadCount);
//     len(sizes) must be an exact multiple of block (else ErrBlockMismatch).
//   - Output[i] = sizes[i*block] + … + sizes[i*block+block-1]; consecutive,
//     non-overlapping blocks, so Σ output == Σ sizes always.
//
// Complexity: O(len(sizes)) time, O(len(sizes)/block) space.

package simulate

import "fmt"

const methodAggregate = "AggregateBlocks"

// AggregateBlocks sums consecutive non-overlapping blocks of dam-family
// sizes into sire-family sizes. A short final block is an error, never a
// silent truncation.
func AggregateBlocks(sizes []int, block int) ([]int, error) {
	if block < 1 {
		return nil, fmt.Errorf("%s: block=%d < 1: %w", methodAggregate, block, ErrBadCount)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%s: empty size sequence: %w", methodAggregate, ErrBadCount)
	}
	if len(sizes)%block != 0 {
		return nil, fmt.Errorf("%s: %d groups not divisible by block=%d: %w",
			methodAggregate, len(sizes), block, ErrBlockMismatch)
	}

	out := make([]int, len(sizes)/block)
	for i := range out {
		for j := 0; j < block; j++ {
			out[i] += sizes[i*block+j]
		}
	}
	return out, nil
}
