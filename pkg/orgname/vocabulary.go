package orgname

import (
	"slices"
	"strings"
)

// Vocabulary holds the word tables a Generator composes names from.
type Vocabulary struct {
	// Nouns maps every subject to its grammatical gender.
	Nouns map[string]GenderClass
	// Predicate1 holds the qualifiers placed before the subject, per gender.
	Predicate1 map[GenderClass][]string
	// Predicate2 holds the qualifiers placed after the subject, per gender.
	Predicate2 map[GenderClass][]string
	// ProperNames holds quoted proper names, shared by all genders.
	ProperNames []string
}

// DefaultVocabulary returns a copy of the built-in vocabulary.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Nouns:       defaultNouns,
		Predicate1:  defaultPredicate1,
		Predicate2:  defaultPredicate2,
		ProperNames: defaultProperNames,
	}.Clone()
}

// Clone returns a deep copy of v.
func (v Vocabulary) Clone() Vocabulary {
	out := Vocabulary{
		Nouns:       make(map[string]GenderClass, len(v.Nouns)),
		Predicate1:  cloneModifiers(v.Predicate1),
		Predicate2:  cloneModifiers(v.Predicate2),
		ProperNames: slices.Clone(v.ProperNames),
	}
	for noun, g := range v.Nouns {
		out.Nouns[noun] = g
	}
	return out
}

func cloneModifiers(m map[GenderClass][]string) map[GenderClass][]string {
	out := make(map[GenderClass][]string, len(m))
	for g, words := range m {
		out[g] = slices.Clone(words)
	}
	return out
}

// Validate checks that every noun has a valid gender with at least one
// adjective in both predicate tables, and that no table holds blank words.
// The first defect found is returned as a *ConfigurationError; nouns are
// checked in sorted order so the result is stable.
func (v Vocabulary) Validate() error {
	if len(v.Nouns) == 0 {
		return &ConfigurationError{Table: "nouns", Reason: "no nouns defined"}
	}
	if len(v.ProperNames) == 0 {
		return &ConfigurationError{Table: "proper_names", Reason: "no proper names defined"}
	}
	for _, name := range v.ProperNames {
		if strings.TrimSpace(name) == "" {
			return &ConfigurationError{Table: "proper_names", Reason: "blank proper name"}
		}
	}

	for _, noun := range v.subjects() {
		g := v.Nouns[noun]
		if strings.TrimSpace(noun) == "" {
			return &ConfigurationError{Table: "nouns", Gender: g, Reason: "blank noun"}
		}
		if err := v.checkNoun(noun, g); err != nil {
			return err
		}
	}
	return nil
}

// checkNoun asserts the agreement invariant for a single subject.
func (v Vocabulary) checkNoun(noun string, g GenderClass) error {
	if !g.Valid() {
		return &ConfigurationError{Table: "nouns", Noun: noun, Gender: g, Reason: "invalid gender class"}
	}
	for _, table := range []struct {
		name  string
		words map[GenderClass][]string
	}{
		{"predicate1", v.Predicate1},
		{"predicate2", v.Predicate2},
	} {
		words := table.words[g]
		if len(words) == 0 {
			return &ConfigurationError{Table: table.name, Noun: noun, Gender: g, Reason: "no modifiers for gender"}
		}
		for _, w := range words {
			if strings.TrimSpace(w) == "" {
				return &ConfigurationError{Table: table.name, Noun: noun, Gender: g, Reason: "blank modifier"}
			}
		}
	}
	return nil
}

// subjects returns the nouns in sorted order.
func (v Vocabulary) subjects() []string {
	nouns := make([]string, 0, len(v.Nouns))
	for noun := range v.Nouns {
		nouns = append(nouns, noun)
	}
	slices.Sort(nouns)
	return nouns
}

// GenderOf returns the gender class whose table in modifiers contains word.
func GenderOf(modifiers map[GenderClass][]string, word string) (GenderClass, bool) {
	for _, g := range Genders {
		if slices.Contains(modifiers[g], word) {
			return g, true
		}
	}
	return 0, false
}
