package orgname

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// vocabularyFile is the YAML representation of a Vocabulary. Gender tags are
// plain strings and go through ParseGenderClass.
type vocabularyFile struct {
	Nouns       map[string]string   `yaml:"nouns"`
	Predicate1  map[string][]string `yaml:"predicate1"`
	Predicate2  map[string][]string `yaml:"predicate2"`
	ProperNames []string            `yaml:"proper_names"`
}

// LoadVocabulary reads a YAML vocabulary from r and validates it.
// Unknown gender tags and missing modifier tables are reported as
// *ConfigurationError; malformed YAML is returned as a decoding error.
func LoadVocabulary(r io.Reader) (Vocabulary, error) {
	var file vocabularyFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return Vocabulary{}, &ConfigurationError{Table: "nouns", Reason: "empty vocabulary document"}
		}
		return Vocabulary{}, fmt.Errorf("orgname: decode vocabulary: %w", err)
	}

	v := Vocabulary{
		Nouns:       make(map[string]GenderClass, len(file.Nouns)),
		ProperNames: file.ProperNames,
	}
	for _, noun := range slices.Sorted(maps.Keys(file.Nouns)) {
		tag := file.Nouns[noun]
		g, err := ParseGenderClass(tag)
		if err != nil {
			return Vocabulary{}, &ConfigurationError{
				Table:  "nouns",
				Noun:   noun,
				Reason: fmt.Sprintf("unknown gender tag %q", tag),
			}
		}
		v.Nouns[noun] = g
	}

	var err error
	if v.Predicate1, err = parseModifiers("predicate1", file.Predicate1); err != nil {
		return Vocabulary{}, err
	}
	if v.Predicate2, err = parseModifiers("predicate2", file.Predicate2); err != nil {
		return Vocabulary{}, err
	}

	if err := v.Validate(); err != nil {
		return Vocabulary{}, err
	}
	return v, nil
}

// LoadVocabularyFile is LoadVocabulary over the file at path.
func LoadVocabularyFile(path string) (Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("orgname: open vocabulary: %w", err)
	}
	defer f.Close()

	return LoadVocabulary(f)
}

// parseModifiers merges tables whose tags name the same gender. Tags are
// visited in sorted order so word order and reported errors are stable.
func parseModifiers(table string, raw map[string][]string) (map[GenderClass][]string, error) {
	out := make(map[GenderClass][]string, len(raw))
	for _, tag := range slices.Sorted(maps.Keys(raw)) {
		words := raw[tag]
		g, err := ParseGenderClass(tag)
		if err != nil {
			return nil, &ConfigurationError{Table: table, Reason: fmt.Sprintf("unknown gender tag %q", tag)}
		}
		out[g] = append(out[g], words...)
	}
	return out, nil
}
