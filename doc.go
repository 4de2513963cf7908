// Package halfsib simulates half-sib animal-breeding experiments and
// recovers their variance components.
//
// 🚀 What is halfsib?
//
//	A small, deterministic toolkit that brings together:
//		• Dataset generation: random sire/dam families crossed with fixed
//		  pond and sex effects, one flat observation table out
//		• Mixed-model estimation: fixed-effect least squares plus an
//		  unbalanced nested ANOVA for the sire, dam and residual variances
//		• Heritability: closed-form h² ratios from the fitted components
//
// ✨ Why choose halfsib?
//
//   - Reproducible – one explicit RNG handle, one documented draw order;
//     the same seed and configuration always produce the same table
//   - Honest failure – infeasible partitions and non-nested groupings are
//     sentinel errors, never hangs or silent truncation
//   - Pure computation – in-memory tables only, no persistence, no server
//
// Everything is organized under two subpackages and one command:
//
//	simulate/   — group-size partitioning, effect sampling, table assembly
//	mixedmodel/ — formula parsing, variance components, heritability
//	cmd/halfsib — CLI: load a YAML scenario, generate, print, fit, report
//
// Quick sketch of the design being simulated:
//
//	Sire 1 ────┬──── Dam 1 ──── offspring …
//	           └──── Dam 2 ──── offspring …
//	Sire 2 ────┬──── Dam 3 ──── offspring …
//	           └──── Dam 4 ──── offspring …
//
// Offspring of one sire through different dams are half-sibs; that nesting
// is what makes the sire and dam variances separately estimable.
//
//	go get github.com/RameezRoshan/halfsib
package halfsib
