// SPDX-License-Identifier: MIT
// Package: halfsib/simulate
//
// types.go — the fixed observation schema produced by Generate.

package simulate

// Record is one simulated individual. Identifier fields are 1-based
// categorical ids; BW is the assembled response (body weight).
//
// The schema is fixed by construction: a Record is built exactly once by the
// assembler with every field populated, never mutated afterwards.
type Record struct {
	// Sire is the paternal family id in 1..Config.Sires.
	Sire int

	// Dam is the maternal family id in 1..Config.Dams(). Dams are nested
	// within sires: records sharing a Dam always share a Sire.
	Dam int

	// Pond is the fixed environment level id in 1..len(Config.PondEffects).
	Pond int

	// Sex is the fixed sex level id in 1..len(Config.SexEffects).
	Sex int

	// BW = intercept + sire effect + dam effect + residual + pond effect
	// + sex effect.
	BW float64
}

// Dataset is the flat observation table, one Record per individual.
type Dataset []Record

// Len returns the number of individuals in the table.
func (d Dataset) Len() int { return len(d) }

// Sires returns the Sire id column in row order.
func (d Dataset) Sires() []int {
	out := make([]int, len(d))
	for i := range d {
		out[i] = d[i].Sire
	}
	return out
}

// Dams returns the Dam id column in row order.
func (d Dataset) Dams() []int {
	out := make([]int, len(d))
	for i := range d {
		out[i] = d[i].Dam
	}
	return out
}

// Ponds returns the Pond id column in row order.
func (d Dataset) Ponds() []int {
	out := make([]int, len(d))
	for i := range d {
		out[i] = d[i].Pond
	}
	return out
}

// Sexes returns the Sex id column in row order.
func (d Dataset) Sexes() []int {
	out := make([]int, len(d))
	for i := range d {
		out[i] = d[i].Sex
	}
	return out
}

// BW returns the response column in row order.
func (d Dataset) BW() []float64 {
	out := make([]float64, len(d))
	for i := range d {
		out[i] = d[i].BW
	}
	return out
}
