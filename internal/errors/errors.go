package errors

import "errors"

// Level errors indicate a severity name could not be resolved.
var (
	// ErrUnknownLevel indicates the level name is not one of the known severities.
	ErrUnknownLevel = errors.New("unknown log level")
)

// Template errors indicate issues with the format template of a formatter.
var (
	// ErrInvalidTemplate indicates the format template could not be parsed.
	ErrInvalidTemplate = errors.New("invalid format template")

	// ErrUnknownPlaceholder indicates the template references a field that does not exist.
	ErrUnknownPlaceholder = errors.New("unknown format placeholder")
)

// Terminal errors indicate issues with color output settings.
var (
	// ErrUnknownColorMode indicates the color mode is not auto, always or never.
	ErrUnknownColorMode = errors.New("unknown color mode")
)
