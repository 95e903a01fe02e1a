package config

import "errors"

var (
	// ErrNilPointer is returned when Load receives a nil destination.
	ErrNilPointer = errors.New("config: nil pointer provided")

	// ErrParsingConfig is returned when environment parsing fails.
	ErrParsingConfig = errors.New("config: failed to parse")
)
