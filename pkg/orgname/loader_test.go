package orgname_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volontulo/seedkit/pkg/orgname"
)

const singleEntryYAML = `
nouns:
  Szpital: masculine
predicate1:
  masculine: [Krajowy]
predicate2:
  masculine: [Organizacyjny]
proper_names:
  - '"Totuus"'
`

func TestLoadVocabulary(t *testing.T) {
	t.Parallel()

	vocab, err := orgname.LoadVocabulary(strings.NewReader(singleEntryYAML))
	require.NoError(t, err)

	gen, err := orgname.New(orgname.WithVocabulary(vocab))
	require.NoError(t, err)

	name, err := gen.Generate()
	require.NoError(t, err)
	assert.Equal(t, `Krajowy Szpital Organizacyjny "Totuus"`, name)
}

func TestLoadVocabulary_PolishTags(t *testing.T) {
	t.Parallel()

	doc := `
nouns:
  Fundacja: zenski
  Urząd: meski
  Koło: nijaki
predicate1:
  meski: [Krajowy]
  zenski: [Krajowa]
  nijaki: [Krajowe]
predicate2:
  meski: [Zbiorczy]
  zenski: [Zbiorcza]
  nijaki: [Zbiorcze]
proper_names: ['"UKF"']
`
	vocab, err := orgname.LoadVocabulary(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, orgname.Feminine, vocab.Nouns["Fundacja"])
	assert.Equal(t, orgname.Masculine, vocab.Nouns["Urząd"])
	assert.Equal(t, orgname.Neuter, vocab.Nouns["Koło"])
	assert.Equal(t, []string{"Zbiorcze"}, vocab.Predicate2[orgname.Neuter])
}

func TestLoadVocabulary_Defects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		doc       string
		wantTable string
		wantNoun  string
	}{
		{
			name: "numeric gender tag",
			doc: `
nouns:
  Koło: "3"
predicate1: {neutrum: [Krajowe]}
predicate2: {neutrum: [Zbiorcze]}
proper_names: ['"UKF"']
`,
			wantTable: "nouns",
			wantNoun:  "Koło",
		},
		{
			name: "unknown modifier tag",
			doc: `
nouns: {Rada: feminine}
predicate1: {feminine: [Krajowa], plural: [Krajowi]}
predicate2: {feminine: [Zbiorcza]}
proper_names: ['"UKF"']
`,
			wantTable: "predicate1",
		},
		{
			name: "feminine noun without predicate1",
			doc: `
nouns: {Rada: feminine}
predicate1: {masculine: [Krajowy]}
predicate2: {feminine: [Zbiorcza]}
proper_names: ['"UKF"']
`,
			wantTable: "predicate1",
			wantNoun:  "Rada",
		},
		{
			name:      "empty document",
			doc:       "",
			wantTable: "nouns",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := orgname.LoadVocabulary(strings.NewReader(tt.doc))
			require.Error(t, err)

			var cfgErr *orgname.ConfigurationError
			require.True(t, errors.As(err, &cfgErr), "got %v", err)
			assert.Equal(t, tt.wantTable, cfgErr.Table)
			assert.Equal(t, tt.wantNoun, cfgErr.Noun)
		})
	}
}

func TestLoadVocabulary_UnknownField(t *testing.T) {
	t.Parallel()

	_, err := orgname.LoadVocabulary(strings.NewReader("adjectives: [Krajowy]\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, orgname.ErrConfiguration)
}

func TestLoadVocabularyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "vocabulary.yaml")
	require.NoError(t, os.WriteFile(path, []byte(singleEntryYAML), 0o600))

	vocab, err := orgname.LoadVocabularyFile(path)
	require.NoError(t, err)
	assert.Equal(t, orgname.Masculine, vocab.Nouns["Szpital"])

	_, err = orgname.LoadVocabularyFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadVocabulary_StableErrors(t *testing.T) {
	t.Parallel()

	const doc = `
nouns:
  Zarząd: '7'
  Koło: '3'
  Rada: '5'
predicate1: {masculine: [Krajowy]}
predicate2: {masculine: [Organizacyjny]}
proper_names: ['"Totuus"']
`
	for range 20 {
		_, err := orgname.LoadVocabulary(strings.NewReader(doc))
		var cfgErr *orgname.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "Koło", cfgErr.Noun)
	}

	const aliased = `
nouns: {Szpital: masculine}
predicate1:
  masculine: [Krajowy]
  meski: [Powiatowy]
  m: [Regionalny]
predicate2: {masculine: [Organizacyjny]}
proper_names: ['"Totuus"']
`
	for range 20 {
		vocab, err := orgname.LoadVocabulary(strings.NewReader(aliased))
		require.NoError(t, err)
		assert.Equal(t, []string{"Regionalny", "Krajowy", "Powiatowy"}, vocab.Predicate1[orgname.Masculine])
	}
}
