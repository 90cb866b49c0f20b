package orgname_test

import (
	"fmt"

	"github.com/volontulo/seedkit/pkg/orgname"
)

func ExampleGenerator_Generate() {
	gen, err := orgname.New(orgname.WithVocabulary(orgname.Vocabulary{
		Nouns:       map[string]orgname.GenderClass{"Fundacja": orgname.Feminine},
		Predicate1:  map[orgname.GenderClass][]string{orgname.Feminine: {"Wojewódzka"}},
		Predicate2:  map[orgname.GenderClass][]string{orgname.Feminine: {"Wspierająca"}},
		ProperNames: []string{`"Zawsze Razem"`},
	}))
	if err != nil {
		fmt.Println(err)
		return
	}

	name, _ := gen.Generate()
	fmt.Println(name)
	// Output: Wojewódzka Fundacja Wspierająca "Zawsze Razem"
}
