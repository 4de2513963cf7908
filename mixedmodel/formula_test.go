package mixedmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RameezRoshan/halfsib/mixedmodel"
)

// TestParseFormula_Canonical verifies the canonical half-sib formula.
func TestParseFormula_Canonical(t *testing.T) {
	f, err := mixedmodel.ParseFormula("BW ~ Pond + Sex + (1|Sire) + (1|Dam)")
	require.NoError(t, err)

	assert.Equal(t, "BW", f.Response)
	assert.Equal(t, []string{"Pond", "Sex"}, f.Fixed)
	assert.Equal(t, "Sire", f.Group)
	assert.Equal(t, "Dam", f.Nested)
}

// TestParseFormula_ColonNesting verifies the (1|Outer:Nested) spelling.
func TestParseFormula_ColonNesting(t *testing.T) {
	f, err := mixedmodel.ParseFormula("BW ~ Pond + (1|Sire) + (1|Sire:Dam)")
	require.NoError(t, err)

	assert.Equal(t, "Sire", f.Group)
	assert.Equal(t, "Dam", f.Nested, "colon spelling resolves to the inner factor")
}

// TestParseFormula_NoFixed verifies an intercept-only fixed part.
func TestParseFormula_NoFixed(t *testing.T) {
	f, err := mixedmodel.ParseFormula("BW ~ (1|Sire) + (1|Dam)")
	require.NoError(t, err)

	assert.Empty(t, f.Fixed)
	assert.Equal(t, "Sire", f.Group)
	assert.Equal(t, "Dam", f.Nested)
}

// TestParseFormula_Whitespace verifies tolerance to spacing variants.
func TestParseFormula_Whitespace(t *testing.T) {
	f, err := mixedmodel.ParseFormula("BW~Pond+Sex+( 1 | Sire )+( 1 | Dam )")
	require.NoError(t, err)
	assert.Equal(t, "Sire", f.Group)
	assert.Equal(t, "Dam", f.Nested)
}

// TestParseFormula_Rejects is the reject table for the micro-grammar.
func TestParseFormula_Rejects(t *testing.T) {
	cases := []struct {
		name    string
		formula string
	}{
		{name: "no tilde", formula: "BW Pond + Sex"},
		{name: "empty response", formula: " ~ Pond + (1|Sire) + (1|Dam)"},
		{name: "empty term", formula: "BW ~ Pond + + (1|Sire) + (1|Dam)"},
		{name: "one random term", formula: "BW ~ Pond + (1|Sire)"},
		{name: "three random terms", formula: "BW ~ (1|Sire) + (1|Dam) + (1|Pond)"},
		{name: "random slope", formula: "BW ~ (Pond|Sire) + (1|Dam)"},
		{name: "unclosed paren", formula: "BW ~ (1|Sire + (1|Dam)"},
		{name: "colon mismatch", formula: "BW ~ (1|Sire) + (1|Pond:Dam)"},
		{name: "colon outer term", formula: "BW ~ (1|Sire:Dam) + (1|Dam)"},
		{name: "numeric term", formula: "BW ~ 2 + (1|Sire) + (1|Dam)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mixedmodel.ParseFormula(tc.formula)
			assert.ErrorIs(t, err, mixedmodel.ErrBadFormula, "formula %q", tc.formula)
		})
	}
}
