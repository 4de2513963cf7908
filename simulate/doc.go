// Package simulate generates synthetic half-sib breeding datasets:
// offspring grouped into dam families nested within sire families, crossed
// with fixed pond and sex effects, one flat observation table out.
//
// 🚀 What does it build?
//
//	One call to Generate performs, in order:
//	  1. Partition the population into unequal dam-family sizes that sum
//	     exactly to the configured total (bounded resampling).
//	  2. Aggregate consecutive dam families into sire families.
//	  3. Expand family sizes into per-individual Sire and Dam id vectors.
//	  4. Sample zero-mean normal sire, dam and residual effects and
//	     broadcast the group-level ones across their families.
//	  5. Build pond and sex assignments in level order, then permute the
//	     fixed-effect rows as one table, independent of family order.
//	  6. Join the two tables positionally and sum
//	     BW = intercept + sire + dam + residual + pond + sex.
//
// ✨ Determinism contract:
//
//   - All randomness flows through one explicit *rand.Rand
//     (golang.org/x/exp/rand, the source type gonum samplers consume);
//     there is no package or process global state.
//   - Draw order is fixed and part of the public contract:
//     dam group sizes → sire effects → dam effects → residuals →
//     fixed-effect permutation.
//   - Same seed and Config ⇒ identical Dataset. Different seed ⇒ same
//     shape (row count, schema), different values.
//
// ⚙️ Usage:
//
//	cfg := simulate.DefaultConfig()
//	data, err := simulate.Generate(cfg, simulate.WithSeed(42))
//	if err != nil {
//	    // errors.Is against the package sentinels
//	}
//	_ = data.WriteCSV(os.Stdout)
//
// Error policy follows the package sentinels in errors.go: operations never
// panic; option constructors panic on programmer error (nil RNG, zero
// attempt budget); everything else is a wrapped sentinel checked with
// errors.Is.
package simulate
