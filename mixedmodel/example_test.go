package mixedmodel_test

import (
	"fmt"
	"log"

	"github.com/RameezRoshan/halfsib/mixedmodel"
	"github.com/RameezRoshan/halfsib/simulate"
)

// ExampleFit generates the canonical scenario and reports the exact
// structural facts of the fitted ANOVA table.
func ExampleFit() {
	data, err := simulate.Generate(simulate.DefaultConfig(), simulate.WithSeed(42))
	if err != nil {
		log.Fatal(err)
	}

	res, err := mixedmodel.Fit(data, "BW ~ Pond + Sex + (1|Sire) + (1|Dam)")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.ANOVA.GroupDF, res.ANOVA.NestedDF, res.ANOVA.WithinDF)
	// Output: 4 5 90
}

// ExampleParseFormula shows the parsed parts of the canonical formula.
func ExampleParseFormula() {
	f, err := mixedmodel.ParseFormula("BW ~ Pond + Sex + (1|Sire) + (1|Dam)")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(f.Response, f.Fixed, f.Group, f.Nested)
	// Output: BW [Pond Sex] Sire Dam
}

// ExampleResult_Heritability derives h² from known variance components.
func ExampleResult_Heritability() {
	res := &mixedmodel.Result{
		Components: mixedmodel.VarianceComponents{Group: 9, Nested: 4, Residual: 36},
	}
	h2 := res.Heritability()
	fmt.Printf("sire %.3f dam %.3f combined %.3f\n", h2.Sire, h2.Dam, h2.Combined)
	// Output: sire 0.735 dam 0.163 combined 0.531
}
