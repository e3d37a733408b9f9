package starmatch

import "fmt"

// Algorithm selects the substring search backend used by Match.
// The zero value is Builtin.
type Algorithm uint8

const (
	Builtin Algorithm = iota
	Naive
	KMP
)

var algorithmNames = [...]string{ //nolint:gochecknoglobals
	Builtin: "builtin",
	Naive:   "naive",
	KMP:     "kmp",
}

// Algorithms lists every known algorithm, implemented or not.
func Algorithms() []Algorithm {
	return []Algorithm{Builtin, Naive, KMP}
}

// ParseAlgorithm converts a textual selector into an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	for i, name := range algorithmNames {
		if name == s {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

func (a Algorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}

	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// Implemented reports whether the algorithm has a working backend.
func (a Algorithm) Implemented() bool {
	return a == Builtin || a == Naive
}

// Backend returns the search backend implementing the algorithm.
func (a Algorithm) Backend() (Backend, error) {
	switch a {
	case Builtin:
		return builtinBackend{}, nil
	case Naive:
		return naiveBackend{}, nil
	case KMP:
		return kmpBackend{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, a)
	}
}

func (a Algorithm) MarshalText() ([]byte, error) {
	if int(a) >= len(algorithmNames) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, a)
	}

	return []byte(algorithmNames[a]), nil
}

func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}

	*a = parsed

	return nil
}
