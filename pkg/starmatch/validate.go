package starmatch

import (
	"fmt"
	"strings"
)

// Validate checks that text and pattern are strings and that the pattern
// carries at most one wildcard.
func Validate(text, pattern any) error {
	if _, ok := text.(string); !ok {
		return fmt.Errorf("%w: text must be a string, got %T", ErrInvalidInput, text)
	}

	p, ok := pattern.(string)
	if !ok {
		return fmt.Errorf("%w: pattern must be a string, got %T", ErrInvalidInput, pattern)
	}

	return ValidatePattern(p)
}

// ValidatePattern checks the single-wildcard constraint.
func ValidatePattern(pattern string) error {
	if n := strings.Count(pattern, Wildcard); n > 1 {
		return fmt.Errorf("%w: %q contains %d wildcards, only one is supported", ErrMalformedPattern, pattern, n)
	}

	return nil
}
