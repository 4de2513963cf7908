// SPDX-License-Identifier: MIT
// Package: halfsib/mixedmodel
//
// errors.go — sentinel errors for the mixedmodel package.
//
// Error policy mirrors halfsib/simulate: package-level sentinels only,
// context attached via fmt.Errorf("<Method>: ...: %w", ErrX), callers branch
// with errors.Is, no panics anywhere in this package.

package mixedmodel

import "errors"

// ErrBadFormula indicates a formula string outside the supported grammar:
// missing "~", empty terms, malformed random terms, or a random-term count
// other than exactly two (outer grouping plus nested grouping).
var ErrBadFormula = errors.New("mixedmodel: malformed formula")

// ErrUnknownColumn indicates a formula name that is not a column of the
// half-sib schema {Sire, Dam, Pond, Sex, BW}.
var ErrUnknownColumn = errors.New("mixedmodel: unknown column")

// ErrEmptyData indicates a dataset with no rows.
var ErrEmptyData = errors.New("mixedmodel: empty dataset")

// ErrNotNested indicates that the nested grouping violates the hierarchy:
// some nested-level id appears under more than one outer-level id.
var ErrNotNested = errors.New("mixedmodel: nested factor crosses outer factor")

// ErrTooFewGroups indicates that a variance component has no degrees of
// freedom: fewer than two outer groups, or no nested group beyond one per
// outer group.
var ErrTooFewGroups = errors.New("mixedmodel: too few groups for estimation")

// ErrNoResidualDF indicates that every observation is alone in its nested
// group, leaving nothing to estimate the residual variance from.
var ErrNoResidualDF = errors.New("mixedmodel: no residual degrees of freedom")

// ErrSingularDesign indicates that the fixed-effect design matrix is rank
// deficient (e.g. a factor level perfectly aliased with another), so the
// least-squares step has no unique solution.
var ErrSingularDesign = errors.New("mixedmodel: singular fixed-effect design")
