package factory

import "errors"

var (
	// ErrNoStorage is returned by Create methods of a Factory without storage.
	ErrNoStorage = errors.New("factory: no storage configured")
	// ErrBuildFailed is returned when a record cannot be built.
	ErrBuildFailed = errors.New("factory: failed to build record")
	// ErrCreateFailed is returned when the storage rejects a record.
	ErrCreateFailed = errors.New("factory: failed to create record")
)
