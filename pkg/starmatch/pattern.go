package starmatch

import "strings"

// Pattern is a validated pattern split around its optional wildcard.
// Without a wildcard the whole pattern is held in Prefix.
type Pattern struct {
	Prefix      string
	Suffix      string
	HasWildcard bool
}

// ParsePattern validates and decomposes a pattern.
func ParsePattern(pattern string) (Pattern, error) {
	if err := ValidatePattern(pattern); err != nil {
		return Pattern{}, err
	}

	prefix, suffix, found := strings.Cut(pattern, Wildcard)

	return Pattern{
		Prefix:      prefix,
		Suffix:      suffix,
		HasWildcard: found,
	}, nil
}

func (p Pattern) String() string {
	if !p.HasWildcard {
		return p.Prefix
	}

	return p.Prefix + Wildcard + p.Suffix
}
