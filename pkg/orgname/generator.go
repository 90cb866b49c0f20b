package orgname

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
)

// Picker is a source of uniform random selection: IntN returns an integer in
// [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Picker interface {
	IntN(n int) int
}

// globalPicker delegates to the math/rand/v2 top-level functions, which are
// safe for concurrent use.
type globalPicker struct{}

func (globalPicker) IntN(n int) int { return rand.IntN(n) }

// Parts is a name split into its four components.
type Parts struct {
	Predicate1 string
	Subject    string
	Predicate2 string
	ProperName string
	// Gender is the gender class of Subject.
	Gender GenderClass
}

// String joins the components as "predicate1 subject predicate2 propername".
func (p Parts) String() string {
	return strings.Join([]string{p.Predicate1, p.Subject, p.Predicate2, p.ProperName}, " ")
}

// Generator composes organization names from a validated Vocabulary.
type Generator struct {
	vocab    Vocabulary
	subjects []string
	picker   Picker
}

// Option configures a Generator.
type Option func(*Generator)

// WithVocabulary replaces the built-in vocabulary. The vocabulary is copied,
// later changes to v do not affect the generator.
func WithVocabulary(v Vocabulary) Option {
	return func(g *Generator) {
		g.vocab = v.Clone()
	}
}

// WithPicker sets the random source. Nil is ignored.
func WithPicker(p Picker) Option {
	return func(g *Generator) {
		if p != nil {
			g.picker = p
		}
	}
}

// New creates a Generator. The vocabulary is validated eagerly: a gender
// class without modifiers yields a *ConfigurationError.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{
		vocab:  DefaultVocabulary(),
		picker: globalPicker{},
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := g.vocab.Validate(); err != nil {
		return nil, err
	}
	g.subjects = g.vocab.subjects()

	return g, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Generator {
	g, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// Vocabulary returns a copy of the generator's vocabulary.
func (g *Generator) Vocabulary() Vocabulary {
	return g.vocab.Clone()
}

// Parts selects a subject, two agreeing predicates and a proper name.
func (g *Generator) Parts() (Parts, error) {
	subject, err := g.pick("nouns", g.subjects)
	if err != nil {
		return Parts{}, err
	}
	gender := g.vocab.Nouns[subject]
	if err := g.vocab.checkNoun(subject, gender); err != nil {
		return Parts{}, err
	}

	p1, err := g.pick("predicate1", g.vocab.Predicate1[gender])
	if err != nil {
		return Parts{}, err
	}
	p2, err := g.pick("predicate2", g.vocab.Predicate2[gender])
	if err != nil {
		return Parts{}, err
	}
	proper, err := g.pick("proper_names", g.vocab.ProperNames)
	if err != nil {
		return Parts{}, err
	}

	return Parts{
		Predicate1: p1,
		Subject:    subject,
		Predicate2: p2,
		ProperName: proper,
		Gender:     gender,
	}, nil
}

// Generate returns a name such as `Krajowy Szpital Organizacyjny "Totuus"`.
func (g *Generator) Generate() (string, error) {
	p, err := g.Parts()
	if err != nil {
		return "", err
	}
	return p.String(), nil
}

func (g *Generator) pick(table string, words []string) (string, error) {
	if len(words) == 0 {
		return "", &ConfigurationError{Table: table, Reason: "empty table"}
	}
	i := g.picker.IntN(len(words))
	if i < 0 || i >= len(words) {
		return "", fmt.Errorf("%w: %d not in [0,%d)", ErrPickerOutOfRange, i, len(words))
	}
	return words[i], nil
}

// Split decomposes a generated name back into its components using the
// generator's vocabulary. Predicates are matched against every gender table,
// so a name that breaks agreement still splits; compare the Gender of the
// result with GenderOf to check agreement.
func (g *Generator) Split(name string) (Parts, error) {
	for _, proper := range g.vocab.ProperNames {
		rest, ok := strings.CutSuffix(name, " "+proper)
		if !ok {
			continue
		}
		for _, subject := range g.subjects {
			sep := " " + subject + " "
			i := strings.Index(rest, sep)
			if i < 0 {
				continue
			}
			p1, p2 := rest[:i], rest[i+len(sep):]
			if _, ok := GenderOf(g.vocab.Predicate1, p1); !ok {
				continue
			}
			if _, ok := GenderOf(g.vocab.Predicate2, p2); !ok {
				continue
			}
			return Parts{
				Predicate1: p1,
				Subject:    subject,
				Predicate2: p2,
				ProperName: proper,
				Gender:     g.vocab.Nouns[subject],
			}, nil
		}
	}
	return Parts{}, fmt.Errorf("%w: %q", ErrUnrecognizedName, name)
}

// Agrees reports whether both predicates of p belong to the subject's gender
// tables in the generator's vocabulary.
func (g *Generator) Agrees(p Parts) bool {
	gender, ok := g.vocab.Nouns[p.Subject]
	if !ok {
		return false
	}
	return slices.Contains(g.vocab.Predicate1[gender], p.Predicate1) &&
		slices.Contains(g.vocab.Predicate2[gender], p.Predicate2)
}

var (
	defaultGenerator     *Generator
	defaultGeneratorOnce sync.Once
)

// Default returns the shared generator over the built-in vocabulary. It is
// safe for concurrent use.
func Default() *Generator {
	defaultGeneratorOnce.Do(func() {
		defaultGenerator = MustNew()
	})
	return defaultGenerator
}

// Generate returns a random organization name from the built-in vocabulary.
func Generate() string {
	name, err := Default().Generate()
	if err != nil {
		// Unreachable: the built-in vocabulary is validated by Default.
		panic(err)
	}
	return name
}
