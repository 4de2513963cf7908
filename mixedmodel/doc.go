// Package mixedmodel estimates the variance components of a half-sib
// dataset from a linear mixed-model formula and derives heritability.
//
// 🚀 What does it fit?
//
//	A formula of the shape the breeding design calls for:
//
//	    BW ~ Pond + Sex + (1|Sire) + (1|Dam)
//
//	one response, any number of fixed factors, and exactly two random
//	intercept groupings: an outer one (sire) and one nested inside it
//	(dam). The nested spelling (1|Sire:Dam) is accepted as well.
//
// ⚙️ Estimation method:
//
//	Fixed effects are removed by ordinary least squares on a
//	treatment-coded design matrix (gonum/mat). The OLS residuals then feed
//	a two-level nested analysis of variance with unbalanced group-size
//	coefficients (Henderson's method of moments): the observed mean
//	squares are equated with their expectations
//
//	    E[MS_within] = σ²e
//	    E[MS_nested] = σ²e + k1·σ²dam
//	    E[MS_group]  = σ²e + k2·σ²dam + k3·σ²sire
//
//	and solved in closed form. Negative solutions are truncated at zero,
//	as moment estimators conventionally are. The method returns point
//	estimates only; no confidence intervals.
//
// Heritability is an outer calculation over the fitted components:
// h² = k·σ²g/σ²total with relatedness constants 4 (sire), 2 (dam) and
// 2 (sire+dam combined).
//
// ⚙️ Usage:
//
//	data, _ := simulate.Generate(simulate.DefaultConfig(), simulate.WithSeed(42))
//	res, err := mixedmodel.Fit(data, "BW ~ Pond + Sex + (1|Sire) + (1|Dam)")
//	if err != nil {
//	    // errors.Is against the package sentinels
//	}
//	h2 := res.Heritability()
//
// Operations never panic; every failure is a wrapped sentinel from
// errors.go checked with errors.Is.
package mixedmodel
