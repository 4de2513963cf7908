// SPDX-License-Identifier: MIT
// Package: halfsib/mixedmodel
//
// fit.go — Fit: the single public orchestrator.
//
// Design contract:
//   - One entry-point: Fit(data, formula). Parses, resolves columns against
//     the half-sib schema, removes fixed effects by least squares, then
//     solves the nested ANOVA. Errors are wrapped once at this boundary.
//   - Deterministic: no randomness anywhere in the fitting path; the same
//     dataset and formula always produce the same Result.

package mixedmodel

import (
	"fmt"

	"github.com/RameezRoshan/halfsib/simulate"
)

const methodFit = "Fit"

// Fit estimates the variance components of data under formula and returns
// the fitted result.
func Fit(data simulate.Dataset, formula string) (*Result, error) {
	f, err := ParseFormula(formula)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFit, err)
	}
	if data.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", methodFit, ErrEmptyData)
	}

	y, err := responseColumn(data, f.Response)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFit, err)
	}
	outer, err := factorColumn(data, f.Group)
	if err != nil {
		return nil, fmt.Errorf("%s: outer grouping: %w", methodFit, err)
	}
	nested, err := factorColumn(data, f.Nested)
	if err != nil {
		return nil, fmt.Errorf("%s: nested grouping: %w", methodFit, err)
	}

	cols := make([][]int, len(f.Fixed))
	for i, name := range f.Fixed {
		if cols[i], err = factorColumn(data, name); err != nil {
			return nil, fmt.Errorf("%s: fixed factor: %w", methodFit, err)
		}
	}

	x, names, err := designMatrix(data.Len(), f.Fixed, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFit, err)
	}
	resid, coefs, err := olsResiduals(x, y)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFit, err)
	}

	av, vc, err := NestedComponents(resid, outer, nested)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFit, err)
	}

	res := &Result{Formula: f, ANOVA: av, Components: vc}
	res.Coefficients = make([]Coefficient, len(coefs))
	for i := range coefs {
		res.Coefficients[i] = Coefficient{Name: names[i], Value: coefs[i]}
	}
	return res, nil
}

// responseColumn resolves a response name against the half-sib schema.
func responseColumn(data simulate.Dataset, name string) ([]float64, error) {
	if name != "BW" {
		return nil, fmt.Errorf("response %q: %w", name, ErrUnknownColumn)
	}
	return data.BW(), nil
}

// factorColumn resolves a categorical column name against the schema.
func factorColumn(data simulate.Dataset, name string) ([]int, error) {
	switch name {
	case "Sire":
		return data.Sires(), nil
	case "Dam":
		return data.Dams(), nil
	case "Pond":
		return data.Ponds(), nil
	case "Sex":
		return data.Sexes(), nil
	default:
		return nil, fmt.Errorf("factor %q: %w", name, ErrUnknownColumn)
	}
}
