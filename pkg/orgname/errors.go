package orgname

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every *ConfigurationError.
var ErrConfiguration = errors.New("orgname: invalid vocabulary configuration")

// ConfigurationError describes a vocabulary that cannot produce a
// well-formed name.
type ConfigurationError struct {
	// Table is the vocabulary table at fault: "nouns", "predicate1",
	// "predicate2" or "proper_names".
	Table string
	// Noun is the subject that triggered the failure, if any.
	Noun string
	// Gender is the gender class involved, if any.
	Gender GenderClass
	// Reason is a short human readable description.
	Reason string
}

func (e *ConfigurationError) Error() string {
	switch {
	case e.Noun != "":
		return fmt.Sprintf("orgname: %s: noun %q (%s): %s", e.Table, e.Noun, e.Gender, e.Reason)
	case e.Gender.Valid():
		return fmt.Sprintf("orgname: %s: %s: %s", e.Table, e.Gender, e.Reason)
	default:
		return fmt.Sprintf("orgname: %s: %s", e.Table, e.Reason)
	}
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// ErrPickerOutOfRange is returned when an injected Picker returns an index
// outside [0, n).
var ErrPickerOutOfRange = errors.New("orgname: picker returned an index out of range")

// ErrUnrecognizedName is returned by Split when a name cannot be decomposed
// against the generator's vocabulary.
var ErrUnrecognizedName = errors.New("orgname: name does not match the vocabulary")
