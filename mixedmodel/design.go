// SPDX-License-Identifier: MIT
// Package: halfsib/mixedmodel
//
// design.go — treatment-coded fixed-effect design and least squares.
//
// Coding: an intercept column of ones, then for each fixed factor one 0/1
// dummy column per level beyond its first (sorted ascending). The first
// level of every factor is the reference absorbed by the intercept, matching
// the default treatment contrasts of standard mixed-model tooling.
//
// Determinism: levels are sorted, factors processed in formula order, so the
// column layout is stable for a given formula and dataset.

package mixedmodel

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

const methodDesign = "designMatrix"

// designMatrix builds the n×p treatment-coded matrix and its column names
// from parallel factor id columns.
func designMatrix(n int, names []string, cols [][]int) (*mat.Dense, []string, error) {
	if len(names) != len(cols) {
		return nil, nil, fmt.Errorf("%s: %d names for %d columns: %w",
			methodDesign, len(names), len(cols), ErrBadFormula)
	}

	colNames := []string{"(Intercept)"}
	type dummy struct {
		col   int // factor index
		level int // id coded as 1
	}
	var dummies []dummy
	for f, ids := range cols {
		for _, lvl := range sortedLevels(ids)[1:] {
			dummies = append(dummies, dummy{col: f, level: lvl})
			colNames = append(colNames, names[f]+strconv.Itoa(lvl))
		}
	}

	x := mat.NewDense(n, 1+len(dummies), nil)
	for i := 0; i < n; i++ {
		x.Set(i, 0, 1)
		for j, d := range dummies {
			if cols[d.col][i] == d.level {
				x.Set(i, j+1, 1)
			}
		}
	}
	return x, colNames, nil
}

// sortedLevels returns the distinct ids of one factor column, ascending.
func sortedLevels(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	var levels []int
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			levels = append(levels, id)
		}
	}
	sort.Ints(levels)
	return levels
}

const methodOLS = "olsResiduals"

// olsResiduals solves min‖y − Xβ‖² by QR and returns the residual vector and
// the coefficient estimates. A rank-deficient X surfaces ErrSingularDesign.
func olsResiduals(x *mat.Dense, y []float64) (resid, coefs []float64, err error) {
	n, p := x.Dims()
	if len(y) != n {
		return nil, nil, fmt.Errorf("%s: %d responses for %d rows: %w",
			methodOLS, len(y), n, ErrEmptyData)
	}

	var qr mat.QR
	qr.Factorize(x)

	var beta mat.VecDense
	if err = qr.SolveVecTo(&beta, false, mat.NewVecDense(n, y)); err != nil {
		return nil, nil, fmt.Errorf("%s: %v: %w", methodOLS, err, ErrSingularDesign)
	}

	fitted := mat.NewVecDense(n, nil)
	fitted.MulVec(x, &beta)

	resid = make([]float64, n)
	for i := range resid {
		resid[i] = y[i] - fitted.AtVec(i)
	}
	coefs = make([]float64, p)
	for j := range coefs {
		coefs[j] = beta.AtVec(j)
	}
	return resid, coefs, nil
}
