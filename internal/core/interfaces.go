package core

import (
	"context"

	"github.com/zhulik/starmatch/pkg/starmatch"
)

// MatchRequest carries dynamically typed input so that non-string values can
// be reported as invalid input instead of failing to decode.
type MatchRequest struct {
	Text      any
	Pattern   any
	Algorithm starmatch.Algorithm
}

type MatchResult struct {
	Index  int
	Cached bool
}

type Matcher interface {
	Match(ctx context.Context, req MatchRequest) (MatchResult, error)
}

type ResultCache interface {
	Get(ctx context.Context, algorithm starmatch.Algorithm, text, pattern string) (int, bool, error)
	Set(ctx context.Context, algorithm starmatch.Algorithm, text, pattern string, index int) error
}
