package mixedmodel_test

import (
	"testing"

	"github.com/RameezRoshan/halfsib/mixedmodel"
	"github.com/RameezRoshan/halfsib/simulate"
)

// BenchmarkFit measures a full parse + OLS + nested-ANOVA pass on the
// canonical 100-individual dataset.
func BenchmarkFit(b *testing.B) {
	data, err := simulate.Generate(simulate.DefaultConfig(), simulate.WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mixedmodel.Fit(data, "BW ~ Pond + Sex + (1|Sire) + (1|Dam)"); err != nil {
			b.Fatal(err)
		}
	}
}
