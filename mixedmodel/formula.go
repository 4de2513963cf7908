// SPDX-License-Identifier: MIT
// Package: halfsib/mixedmodel
//
// formula.go — ParseFormula: the lme4-style micro-grammar.
//
// Grammar (whitespace-insensitive around tokens):
//
//	formula     := response "~" term ("+" term)*
//	term        := ident | "(" "1" "|" grouping ")"
//	grouping    := ident | ident ":" ident        // outer, outer:nested
//
// Exactly two random terms are required: the outer grouping first, then the
// nested one. The colon spelling (1|Outer:Nested) must repeat the outer
// grouping on its left side.
//
// Column-name existence is checked at Fit time against the dataset schema;
// the parser only enforces shape.

package mixedmodel

import (
	"fmt"
	"strings"
)

const methodParse = "ParseFormula"

// ParseFormula parses a formula string such as
// "BW ~ Pond + Sex + (1|Sire) + (1|Dam)".
func ParseFormula(s string) (Formula, error) {
	var f Formula

	sides := strings.SplitN(s, "~", 2)
	if len(sides) != 2 {
		return f, fmt.Errorf("%s: %q has no '~': %w", methodParse, s, ErrBadFormula)
	}

	f.Response = strings.TrimSpace(sides[0])
	if !isIdent(f.Response) {
		return f, fmt.Errorf("%s: bad response %q: %w", methodParse, f.Response, ErrBadFormula)
	}

	var groupings []string
	for _, raw := range strings.Split(sides[1], "+") {
		term := strings.TrimSpace(raw)
		switch {
		case term == "":
			return f, fmt.Errorf("%s: empty term: %w", methodParse, ErrBadFormula)
		case strings.HasPrefix(term, "("):
			g, err := parseRandomTerm(term)
			if err != nil {
				return f, err
			}
			groupings = append(groupings, g)
		case isIdent(term):
			f.Fixed = append(f.Fixed, term)
		default:
			return f, fmt.Errorf("%s: bad term %q: %w", methodParse, term, ErrBadFormula)
		}
	}

	if len(groupings) != 2 {
		return f, fmt.Errorf("%s: want exactly 2 random terms, got %d: %w",
			methodParse, len(groupings), ErrBadFormula)
	}
	f.Group = groupings[0]
	f.Nested = groupings[1]

	// Colon spelling: the outer factor must match the first random term.
	if outer, inner, ok := strings.Cut(f.Nested, ":"); ok {
		if outer != f.Group || !isIdent(inner) {
			return f, fmt.Errorf("%s: nested term %q does not nest in %q: %w",
				methodParse, f.Nested, f.Group, ErrBadFormula)
		}
		f.Nested = inner
	}
	if strings.Contains(f.Group, ":") {
		return f, fmt.Errorf("%s: outer term %q cannot be a nesting: %w",
			methodParse, f.Group, ErrBadFormula)
	}

	return f, nil
}

// parseRandomTerm extracts the grouping name from "(1|Name)" or
// "(1|Outer:Inner)", tolerating inner whitespace.
func parseRandomTerm(term string) (string, error) {
	if !strings.HasSuffix(term, ")") {
		return "", fmt.Errorf("%s: unclosed random term %q: %w", methodParse, term, ErrBadFormula)
	}
	inner := term[1 : len(term)-1]

	left, right, ok := strings.Cut(inner, "|")
	if !ok || strings.TrimSpace(left) != "1" {
		return "", fmt.Errorf("%s: random term %q must be (1|factor): %w", methodParse, term, ErrBadFormula)
	}

	name := strings.TrimSpace(right)
	outer, innerName, nested := strings.Cut(name, ":")
	if nested {
		if !isIdent(strings.TrimSpace(outer)) || !isIdent(strings.TrimSpace(innerName)) {
			return "", fmt.Errorf("%s: bad grouping %q: %w", methodParse, name, ErrBadFormula)
		}
		return strings.TrimSpace(outer) + ":" + strings.TrimSpace(innerName), nil
	}
	if !isIdent(name) {
		return "", fmt.Errorf("%s: bad grouping %q: %w", methodParse, name, ErrBadFormula)
	}
	return name, nil
}

// isIdent reports whether s is a plain identifier: a letter followed by
// letters, digits or underscores.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		letter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
		digit := r >= '0' && r <= '9'
		if i == 0 && !letter {
			return false
		}
		if !letter && !digit {
			return false
		}
	}
	return true
}
