// Package starmatch finds the first position where a pattern with at most one
// '*' wildcard occurs in a text.
//
// A pattern without a wildcard is searched literally. "pre*suf" matches where
// "pre" occurs with "suf" somewhere after it and reports the position of "pre".
// "*suf" matches whenever "suf" occurs and always reports 0. Offsets are byte
// offsets. A missing match is reported as NotFound, never as an error.
package starmatch

// resolver computes the overall match index for one cell of the decision table.
type resolver func(b Backend, text string, p Pattern) (int, error)

// resolvers is indexed by shapeOf: bit 1 is set for a non-empty prefix,
// bit 0 for a non-empty suffix.
var resolvers = [4]resolver{ //nolint:gochecknoglobals
	0b00: resolveBare,
	0b01: resolveLeading,
	0b10: resolveTrailing,
	0b11: resolveInner,
}

func shapeOf(p Pattern) int {
	shape := 0
	if p.Prefix != "" {
		shape |= 0b10
	}

	if p.Suffix != "" {
		shape |= 0b01
	}

	return shape
}

// Match returns the index of the first match of pattern in text using the
// given algorithm, or NotFound.
func Match(text, pattern string, algorithm Algorithm) (int, error) {
	p, err := ParsePattern(pattern)
	if err != nil {
		return 0, err
	}

	backend, err := algorithm.Backend()
	if err != nil {
		return 0, err
	}

	return MatchPattern(backend, text, p)
}

// MatchValues is Match for dynamically typed input, e.g. decoded JSON or YAML.
func MatchValues(text, pattern any, algorithm Algorithm) (int, error) {
	if err := Validate(text, pattern); err != nil {
		return 0, err
	}

	return Match(text.(string), pattern.(string), algorithm) //nolint:forcetypeassert
}

// MatchNamed is MatchValues with the algorithm given by name. Input is
// validated before the algorithm is resolved.
func MatchNamed(text, pattern any, algorithm string) (int, error) {
	if err := Validate(text, pattern); err != nil {
		return 0, err
	}

	a, err := ParseAlgorithm(algorithm)
	if err != nil {
		return 0, err
	}

	return Match(text.(string), pattern.(string), a) //nolint:forcetypeassert
}

// MatchPattern runs an already parsed pattern against text with an explicit backend.
func MatchPattern(b Backend, text string, p Pattern) (int, error) {
	if !p.HasWildcard {
		return b.Find(text, p.Prefix, 0)
	}

	return resolvers[shapeOf(p)](b, text, p)
}

// resolveInner handles "pre*suf".
func resolveInner(b Backend, text string, p Pattern) (int, error) {
	return findAnchored(b, text, p)
}

// resolveTrailing handles "pre*".
func resolveTrailing(b Backend, text string, p Pattern) (int, error) {
	return findAnchored(b, text, p)
}

// resolveLeading handles "*suf". The wildcard absorbs everything before the
// suffix so a match is reported at 0.
func resolveLeading(b Backend, text string, p Pattern) (int, error) {
	return findFromStart(b, text, p.Suffix)
}

// resolveBare handles "*".
func resolveBare(b Backend, text string, _ Pattern) (int, error) {
	return findFromStart(b, text, "")
}

func findAnchored(b Backend, text string, p Pattern) (int, error) {
	idx, err := b.Find(text, p.Prefix, 0)
	if err != nil || idx == NotFound {
		return idx, err
	}

	next, err := b.Find(text, p.Suffix, idx+len(p.Prefix))
	if err != nil || next == NotFound {
		return next, err
	}

	return idx, nil
}

func findFromStart(b Backend, text, segment string) (int, error) {
	idx, err := b.Find(text, segment, 0)
	if err != nil || idx == NotFound {
		return idx, err
	}

	return 0, nil
}
