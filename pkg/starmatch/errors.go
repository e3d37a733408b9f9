package starmatch

import "errors"

// NotFound is returned as the match index when the pattern does not occur in the text.
// It is a regular result, never an error.
const NotFound = -1

// Wildcard is the only special symbol a pattern may contain.
const Wildcard = "*"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrMalformedPattern = errors.New("malformed pattern")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrNotImplemented   = errors.New("algorithm not implemented")
)

// Kind returns a short machine readable name for errors returned by this
// package, or an empty string for any other error.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrMalformedPattern):
		return "malformed_pattern"
	case errors.Is(err, ErrUnknownAlgorithm):
		return "unknown_algorithm"
	case errors.Is(err, ErrNotImplemented):
		return "not_implemented"
	default:
		return ""
	}
}
