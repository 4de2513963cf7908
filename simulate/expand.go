// SPDX-License-Identifier: MIT
// Package: halfsib/simulate
//
// expand.go — the categorical expander: values × repeat-counts → broadcast.
//
// One generic implementation serves every broadcast in the generator: Sire,
// Dam, Pond and Sex id vectors (int) and the per-group effect broadcasts
// (float64). Order is preserved: all repetitions of values[0] first, then
// values[1], and so on.

package simulate

import "fmt"

const methodExpand = "Expand"

// Levels returns the 1-based label sequence 1..n. Returns nil for n < 1
// (data helper: nil on invalid input, no error).
func Levels(n int) []int {
	if n < 1 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// Expand repeats values[i] exactly counts[i] times, preserving value order.
// The output length is Σ counts. Parallel slices must have equal length
// (else ErrLengthMismatch); counts must be nonnegative (else ErrBadCount).
//
// Complexity: O(Σ counts) time and space.
func Expand[T any](values []T, counts []int) ([]T, error) {
	if len(values) != len(counts) {
		return nil, fmt.Errorf("%s: values=%d counts=%d: %w",
			methodExpand, len(values), len(counts), ErrLengthMismatch)
	}

	total := 0
	for i, n := range counts {
		if n < 0 {
			return nil, fmt.Errorf("%s: counts[%d]=%d < 0: %w", methodExpand, i, n, ErrBadCount)
		}
		total += n
	}

	out := make([]T, 0, total)
	for i, v := range values {
		for j := 0; j < counts[i]; j++ {
			out = append(out, v)
		}
	}
	return out, nil
}
