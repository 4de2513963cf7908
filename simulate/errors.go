// SPDX-License-Identifier: MIT
// Package: halfsib/simulate
//
// errors.go — sentinel errors for the simulate package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context via fmt.Errorf("<Method>: ...: %w", ErrX).
//   • Operations MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package simulate

import "errors"

// ErrBadCount indicates a count parameter (group count, block size, repeat
// count, attempt budget, population size) outside its allowed domain.
// Usage: if errors.Is(err, ErrBadCount) { /* fix the offending count */ }.
var ErrBadCount = errors.New("simulate: count out of range")

// ErrBadRange indicates an invalid inclusive sample range [lo,hi] for the
// dam-family size draw (lo < 1 or hi < lo).
// Usage: if errors.Is(err, ErrBadRange) { /* fix DamSizeMin/DamSizeMax */ }.
var ErrBadRange = errors.New("simulate: invalid sample range")

// ErrInvalidStdDev indicates a negative standard deviation for one of the
// normal effect distributions (sire, dam, residual).
var ErrInvalidStdDev = errors.New("simulate: negative standard deviation")

// ErrLengthMismatch indicates parallel slices of unequal length, e.g. level
// effects vs. level counts, or expander values vs. repeat counts.
var ErrLengthMismatch = errors.New("simulate: parallel slice length mismatch")

// ErrCountSum indicates that a fixed-factor count allocation (pond or sex)
// does not sum to the configured total individual count.
var ErrCountSum = errors.New("simulate: level counts do not sum to total")

// ErrInfeasiblePartition indicates that no sequence of G draws in [lo,hi]
// can sum to the target: G*lo > S or G*hi < S. Checked before any sampling
// so the resampling loop can never be entered on an impossible target.
// Usage: if errors.Is(err, ErrInfeasiblePartition) { /* widen the range */ }.
var ErrInfeasiblePartition = errors.New("simulate: partition target unreachable")

// ErrPartitionExhausted indicates that the partitioner's attempt budget ran
// out before an exact-sum draw appeared. The target was feasible; retry with
// a larger budget (WithMaxAttempts) or a wider range.
var ErrPartitionExhausted = errors.New("simulate: partition attempts exhausted")

// ErrBlockMismatch indicates that the dam-family sequence length is not an
// exact multiple of the dams-per-sire block size. Aggregation never silently
// truncates a short final block.
var ErrBlockMismatch = errors.New("simulate: group count not divisible by block size")

// ErrNeedRandSource indicates that a sampling operation received a nil
// *rand.Rand. Every stochastic step requires an explicit generator handle;
// there is no hidden global fallback.
var ErrNeedRandSource = errors.New("simulate: rng is required")

// --- Implementation Notes ----------------------------------------------------
//
// 1) Wrapping style (required):
//      return fmt.Errorf("%s: groups=%d lo=%d: %w", methodPartition, g, lo, ErrBadRange)
//    This preserves the sentinel for errors.Is while adding deterministic
//    context.
//
// 2) Priority (tie-break guidance when multiple validations fail):
//    • ErrBadCount / ErrBadRange     — domain checks first.
//    • ErrInvalidStdDev              — then distribution parameters.
//    • ErrLengthMismatch / ErrCountSum — then allocation shape.
//    • ErrNeedRandSource             — then RNG presence.
//    • ErrInfeasiblePartition        — then reachability.
//    • ErrPartitionExhausted         — only after the attempt budget is spent.
//
// 3) Testing guidance:
//    Table tests asserting errors.Is(err, ErrX); never match error strings.
