// Package errors provides typed error values for termlog.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Level errors: a severity name could not be resolved (ErrUnknownLevel)
//   - Template errors: the format template is malformed or references an
//     unknown placeholder (ErrInvalidTemplate, ErrUnknownPlaceholder)
//   - Terminal errors: an unsupported color mode was requested
//     (ErrUnknownColorMode)
//
// Write errors coming from the output stream are never wrapped with these
// values; they reach the caller exactly as the stream returned them.
//
// # Usage
//
// Wrap errors with additional context at the source:
//
//	return fmt.Errorf("%w: %q", errors.ErrUnknownPlaceholder, tag)
//
// Handle errors in the CLI layer:
//
//	if errors.Is(err, terrors.ErrUnknownLevel) {
//	    // Show the list of accepted level names
//	}
package errors
