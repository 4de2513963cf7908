// SPDX-License-Identifier: MIT
// Package: halfsib/mixedmodel
//
// heritability.go — closed-form h² ratios over fitted components.
//
// In a half-sib design the sire component estimates ¼ of the additive
// genetic variance, so h² = k·σ²g/σ²total with the relatedness constant k
// depending on which component carries the signal. The constants below are
// exported so callers with a different relatedness structure can substitute
// their own in Ratio.

package mixedmodel

// Relatedness constants for the half-sib design.
const (
	// RelatednessSire scales the sire component: σ²sire ≈ ¼·V_A.
	RelatednessSire = 4.0

	// RelatednessDam scales the dam-within-sire component.
	RelatednessDam = 2.0

	// RelatednessCombined scales the summed sire+dam components:
	// together they estimate ½·V_A.
	RelatednessCombined = 2.0
)

// Heritability holds the three conventional h² estimates of the design.
type Heritability struct {
	// Sire is 4·σ²sire/σ²total, the half-sib estimate.
	Sire float64

	// Dam is 2·σ²dam/σ²total; inflated by maternal and dominance variance
	// relative to the sire estimate.
	Dam float64

	// Combined is 2·(σ²sire+σ²dam)/σ²total.
	Combined float64
}

// Ratio computes one heritability ratio k·component/total, returning 0 for
// a non-positive total (degenerate all-zero fit) rather than NaN.
func Ratio(k, component, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return k * component / total
}

// Heritability derives the three standard estimates from the fitted
// variance components.
func (r *Result) Heritability() Heritability {
	total := r.Components.Total()
	return Heritability{
		Sire:     Ratio(RelatednessSire, r.Components.Group, total),
		Dam:      Ratio(RelatednessDam, r.Components.Nested, total),
		Combined: Ratio(RelatednessCombined, r.Components.Group+r.Components.Nested, total),
	}
}
