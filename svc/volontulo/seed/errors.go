package seed

import "errors"

var (
	ErrPopulate      = errors.New("seed: failed to populate storage")
	ErrInvalidConfig = errors.New("seed: invalid config")
)
