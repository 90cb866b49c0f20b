package orgname

import (
	"fmt"
	"strings"
)

// GenderClass is the grammatical gender of a noun and its agreeing adjectives.
type GenderClass int

// Gender classes. The zero value is not a valid class so that a missing map
// entry never silently reads as a real gender.
const (
	Masculine GenderClass = iota + 1
	Feminine
	Neuter
)

// Genders lists every valid GenderClass in declaration order.
var Genders = []GenderClass{Masculine, Feminine, Neuter}

// Valid reports whether g is one of the declared gender classes.
func (g GenderClass) Valid() bool {
	return g >= Masculine && g <= Neuter
}

func (g GenderClass) String() string {
	switch g {
	case Masculine:
		return "masculine"
	case Feminine:
		return "feminine"
	case Neuter:
		return "neuter"
	default:
		return fmt.Sprintf("GenderClass(%d)", int(g))
	}
}

// ParseGenderClass converts a textual gender tag into a GenderClass.
// English ("masculine", "feminine", "neuter"/"neutrum") and Polish ("meski",
// "zenski", "nijaki", with or without diacritics) spellings are accepted, as
// are the single letters "m", "f" and "n". Any other tag is a
// *ConfigurationError.
func ParseGenderClass(tag string) (GenderClass, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "masculine", "meski", "męski", "m":
		return Masculine, nil
	case "feminine", "zenski", "żeński", "f":
		return Feminine, nil
	case "neuter", "neutrum", "nijaki", "n":
		return Neuter, nil
	}
	return 0, &ConfigurationError{
		Table:  "nouns",
		Reason: fmt.Sprintf("unknown gender tag %q", tag),
	}
}

// MarshalText implements encoding.TextMarshaler.
func (g GenderClass) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, &ConfigurationError{Table: "nouns", Reason: fmt.Sprintf("invalid gender class %d", int(g))}
	}
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseGenderClass.
func (g *GenderClass) UnmarshalText(text []byte) error {
	v, err := ParseGenderClass(string(text))
	if err != nil {
		return err
	}
	*g = v
	return nil
}
