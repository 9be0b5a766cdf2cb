package core

import "errors"

// Common errors.
var (
	// ErrNotFound is returned by a Backend when the key holds no value.
	ErrNotFound = errors.New("state not found")

	// ErrInvalidState is returned when a payload is not a state object.
	ErrInvalidState = errors.New("invalid board state")

	// ErrUnknownAdapter is returned for an unsupported backend name.
	ErrUnknownAdapter = errors.New("unknown adapter")
)
