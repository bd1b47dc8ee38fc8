package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a service method receives
	// structurally unusable input (e.g. an empty username).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is the single failure outcome of authentication.
	// It covers both "unknown username" and "wrong password" so that callers
	// cannot tell the two cases apart.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrVersionIsNotSpecified is returned at startup when no application
	// version was configured.
	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
