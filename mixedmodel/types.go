// SPDX-License-Identifier: MIT
// Package: halfsib/mixedmodel
//
// types.go — formula, ANOVA table and result types.

package mixedmodel

// Formula is the parsed form of a mixed-model formula string.
type Formula struct {
	// Response is the modeled column (BW in the half-sib schema).
	Response string

	// Fixed lists the fixed-factor columns in formula order; may be empty
	// for an intercept-only fixed part.
	Fixed []string

	// Group is the outer random grouping factor (sire level).
	Group string

	// Nested is the random grouping factor nested within Group (dam level).
	Nested string
}

// VarianceComponents are the fitted random-effect variances.
type VarianceComponents struct {
	// Group is σ² of the outer grouping (between-sire variance).
	Group float64

	// Nested is σ² of the nested grouping (between-dam-within-sire).
	Nested float64

	// Residual is the within-group variance σ²e.
	Residual float64
}

// Total returns the phenotypic variance, the sum of all three components.
func (v VarianceComponents) Total() float64 {
	return v.Group + v.Nested + v.Residual
}

// ANOVA is the two-level nested analysis-of-variance table the components
// were solved from, kept for inspection and reporting.
type ANOVA struct {
	// Mean squares per stratum.
	GroupMS, NestedMS, WithinMS float64

	// Degrees of freedom per stratum.
	GroupDF, NestedDF, WithinDF int

	// Unbalanced expected-mean-square coefficients:
	//   E[NestedMS] = σ²e + K1·σ²nested
	//   E[GroupMS]  = σ²e + K2·σ²nested + K3·σ²group
	// In a balanced design with m per nested group and b nested groups per
	// outer group these reduce to K1 = K2 = m and K3 = m·b.
	K1, K2, K3 float64
}

// Coefficient is one fixed-effect estimate from the least-squares step.
type Coefficient struct {
	// Name is "(Intercept)" or factor name + level id, e.g. "Pond3".
	Name string

	// Value is the treatment-coded estimate (difference from the factor's
	// first level).
	Value float64
}

// Result is a fitted model.
type Result struct {
	// Formula echoes the parsed input.
	Formula Formula

	// Coefficients are the fixed-effect estimates in design-column order.
	Coefficients []Coefficient

	// ANOVA is the nested variance table.
	ANOVA ANOVA

	// Components are the variance-component point estimates.
	Components VarianceComponents
}
