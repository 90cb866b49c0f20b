package fake

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/brianvoe/gofakeit/v7"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Faker generates Polish-locale fake values.
type Faker struct {
	gf  *gofakeit.Faker
	now func() time.Time
}

// Option configures a Faker.
type Option func(*Faker)

// WithClock sets the time source used as the upper bound of DateFrom.
func WithClock(now func() time.Time) Option {
	return func(f *Faker) {
		if now != nil {
			f.now = now
		}
	}
}

// New creates a Faker seeded with seed. Seed 0 selects a random seed.
func New(seed uint64, opts ...Option) *Faker {
	f := &Faker{
		gf:  gofakeit.New(seed),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// IntN returns a uniform integer in [0, n). It returns 0 when n <= 0.
func (f *Faker) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return f.gf.Number(0, n-1)
}

// IntRange returns a uniform integer in [min, max].
func (f *Faker) IntRange(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return f.gf.Number(min, max)
}

// Bool returns a random boolean.
func (f *Faker) Bool() bool {
	return f.gf.Bool()
}

// Choice returns one of items picked uniformly. It panics on an empty list.
func Choice[T any](f *Faker, items ...T) T {
	if len(items) == 0 {
		panic("fake: Choice called with no items")
	}
	return items[f.IntN(len(items))]
}

// FirstName returns a Polish first name of either gender.
func (f *Faker) FirstName() string {
	if f.Bool() {
		return Choice(f, maleFirstNames...)
	}
	return Choice(f, femaleFirstNames...)
}

// LastName returns a Polish surname of either gender.
func (f *Faker) LastName() string {
	forms := Choice(f, lastNames...)
	return forms[f.IntN(2)]
}

// Person returns a first name and a surname in the matching gender form,
// e.g. "Anna", "Kowalska".
func (f *Faker) Person() (first, last string) {
	forms := Choice(f, lastNames...)
	if f.Bool() {
		return Choice(f, maleFirstNames...), forms[0]
	}
	return Choice(f, femaleFirstNames...), forms[1]
}

// Email builds an address from a person's name, e.g.
// "lukasz.wozniak42@wp.pl". Names that fold to nothing fall back to
// "wolontariusz".
func (f *Faker) Email(first, last string) string {
	parts := make([]string, 0, 2)
	for _, s := range []string{first, last} {
		if folded := Fold(s); folded != "" {
			parts = append(parts, folded)
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "wolontariusz")
	}

	local := strings.Join(parts, Choice(f, ".", "_", ""))
	if f.IntN(3) > 0 {
		local += fmt.Sprintf("%d", f.IntRange(1, 99))
	}
	return local + "@" + Choice(f, emailDomains...)
}

// Address returns a Polish postal address such as
// "ul. Leśna 12/3, 04-512 Kraków".
func (f *Faker) Address() string {
	number := fmt.Sprintf("%d", f.IntRange(1, 200))
	if f.Bool() {
		number += fmt.Sprintf("/%d", f.IntRange(1, 80))
	}
	return fmt.Sprintf("ul. %s %s, %s %s",
		Choice(f, streets...),
		number,
		f.gf.Numerify("##-###"),
		Choice(f, cities...),
	)
}

// Sentence returns a capitalized sentence of words words ending with a
// period. words below 1 is treated as 1.
func (f *Faker) Sentence(words int) string {
	words = max(words, 1)
	ws := make([]string, words)
	for i := range ws {
		ws[i] = f.word()
	}
	ws[0] = capitalize(ws[0])
	return strings.Join(ws, " ") + "."
}

// Paragraph returns three to six sentences of four to twelve words.
func (f *Faker) Paragraph() string {
	n := f.IntRange(3, 6)
	sentences := make([]string, n)
	for i := range sentences {
		sentences[i] = f.Sentence(f.IntRange(4, 12))
	}
	return strings.Join(sentences, " ")
}

// Text returns non-empty filler text of at most maxChars runes. Sentences
// are added while they fit; an over-long first sentence is cut at a word
// boundary and closed with a period.
func (f *Faker) Text(maxChars int) string {
	maxChars = max(maxChars, 1)

	var b strings.Builder
	for {
		s := f.Sentence(f.IntRange(3, 10))
		sep := ""
		if b.Len() > 0 {
			sep = " "
		}
		if runeLen(b.String())+runeLen(sep)+runeLen(s) > maxChars {
			break
		}
		b.WriteString(sep)
		b.WriteString(s)
	}
	if b.Len() > 0 {
		return b.String()
	}

	return truncateWords(f.Sentence(f.IntRange(3, 10)), maxChars)
}

// DateFrom returns a time uniformly distributed between start and now,
// truncated to a day. If start lies in the future, start is returned.
func (f *Faker) DateFrom(start time.Time) time.Time {
	end := f.now()
	if !start.Before(end) {
		return start
	}
	d := f.gf.DateRange(start, end).In(start.Location())
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, start.Location())
}

// Fold lower-cases s and strips Polish and other Latin diacritics, keeping
// only ASCII letters and digits: "Łukasz Wąs" becomes "lukaszwas".
func Fold(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Map(func(r rune) rune {
			switch r {
			case 'ł':
				return 'l'
			case 'Ł':
				return 'L'
			}
			return r
		}),
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = cases.Lower(language.Polish).String(folded)

	var b strings.Builder
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// word returns a single lower-case token from gofakeit's dictionary.
func (f *Faker) word() string {
	if fields := strings.Fields(f.gf.Word()); len(fields) > 0 {
		return strings.ToLower(fields[0])
	}
	return "lorem"
}

func capitalize(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}

func runeLen(s string) int {
	return len([]rune(s))
}

func truncateWords(s string, maxChars int) string {
	words := strings.Fields(strings.TrimSuffix(s, "."))
	var b strings.Builder
	for _, w := range words {
		next := w
		if b.Len() > 0 {
			next = " " + w
		}
		if runeLen(b.String())+runeLen(next)+1 > maxChars {
			break
		}
		b.WriteString(next)
	}
	if b.Len() == 0 {
		r := []rune(words[0])
		return string(r[:min(len(r), maxChars)])
	}
	return b.String() + "."
}
