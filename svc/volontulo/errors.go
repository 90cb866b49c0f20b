package volontulo

import "errors"

var (
	// ErrDuplicate is returned when a record collides with an existing one,
	// e.g. a second user with the same e-mail.
	ErrDuplicate = errors.New("record already exists")
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")
)
