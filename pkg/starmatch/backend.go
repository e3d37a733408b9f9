package starmatch

import (
	"fmt"
	"strings"
)

// Backend is a literal substring search primitive.
// Find returns the absolute index of the first occurrence of segment in text
// at or after begin, or NotFound.
type Backend interface {
	Find(text, segment string, begin int) (int, error)
}

// builtinBackend delegates to strings.Index.
type builtinBackend struct{}

func (builtinBackend) Find(text, segment string, begin int) (int, error) {
	begin = max(begin, 0)
	if begin > len(text) {
		return NotFound, nil
	}

	idx := strings.Index(text[begin:], segment)
	if idx == -1 {
		return NotFound, nil
	}

	return begin + idx, nil
}

// naiveBackend compares segment against every candidate start position.
// An empty segment always matches at absolute index 0, not at begin.
type naiveBackend struct{}

func (naiveBackend) Find(text, segment string, begin int) (int, error) {
	if segment == "" {
		return 0, nil
	}

	begin = max(begin, 0)
	if begin >= len(text) || len(text)-begin < len(segment) {
		return NotFound, nil
	}

	for i := begin; i <= len(text)-len(segment); i++ {
		j := 0
		for j < len(segment) && text[i+j] == segment[j] {
			j++
		}

		if j == len(segment) {
			return i, nil
		}
	}

	return NotFound, nil
}

// kmpBackend is reserved for a Knuth-Morris-Pratt search driven by a
// prefix-function table.
type kmpBackend struct{}

func (kmpBackend) Find(_, _ string, _ int) (int, error) {
	return 0, fmt.Errorf("%w: %s", ErrNotImplemented, KMP)
}
