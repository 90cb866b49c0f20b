// Package orgname generates fake Polish organization names such as
// `Wojewódzka Rada Organizacyjna "Naprzód"` for test fixtures and database
// seeding.
//
// A name is composed of four fragments taken from a Vocabulary:
//
//	predicate1 subject predicate2 propername
//
// The subject is a noun with a grammatical gender (Masculine, Feminine or
// Neuter). Both predicates are adjectives drawn from the table for that same
// gender, so the result always agrees grammatically ("Krajowy Szpital",
// "Krajowa Fundacja", "Krajowe Koło"). The proper name is gender-independent
// and keeps its surrounding double quotes.
//
// # Usage
//
// The package-level helper uses the built-in vocabulary and is safe for
// concurrent use:
//
//	name := orgname.Generate()
//
// For reproducible output inject a Picker, e.g. a seeded *rand.Rand:
//
//	gen, err := orgname.New(
//	    orgname.WithPicker(rand.New(rand.NewPCG(1, 2))),
//	)
//	if err != nil {
//	    return err
//	}
//	name, err := gen.Generate()
//
// # Vocabulary
//
// DefaultVocabulary returns a copy of the built-in tables. A custom
// vocabulary may be built in code or loaded from YAML with LoadVocabulary:
//
//	nouns:
//	  Szpital: masculine
//	predicate1:
//	  masculine: [Krajowy]
//	predicate2:
//	  masculine: [Organizacyjny]
//	proper_names: ['"Totuus"']
//
// # Error Handling
//
// A vocabulary where some noun's gender has no adjectives in either
// predicate table is a configuration defect. New and LoadVocabulary reject
// it with a *ConfigurationError that matches ErrConfiguration under
// errors.Is. The condition is deterministic, so callers should fail fast
// instead of retrying.
package orgname
