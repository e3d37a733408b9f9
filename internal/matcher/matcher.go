package matcher

import (
	"context"
	"log/slog"

	"github.com/zhulik/starmatch/internal/core"
	"github.com/zhulik/starmatch/pkg/starmatch"
)

// Matcher runs starmatch behind the result cache. Cache failures never fail a
// match, they are logged and the result is computed directly.
type Matcher struct {
	Cache  core.ResultCache
	Logger *slog.Logger
}

func (m *Matcher) Match(ctx context.Context, req core.MatchRequest) (core.MatchResult, error) {
	if err := starmatch.Validate(req.Text, req.Pattern); err != nil {
		return core.MatchResult{}, err
	}

	if _, err := req.Algorithm.Backend(); err != nil {
		return core.MatchResult{}, err
	}

	text, pattern := req.Text.(string), req.Pattern.(string) //nolint:forcetypeassert

	idx, found, err := m.Cache.Get(ctx, req.Algorithm, text, pattern)
	if err != nil {
		m.Logger.Warn("Failed to read cached match", "error", err, "algorithm", req.Algorithm)
	}

	if found {
		return core.MatchResult{Index: idx, Cached: true}, nil
	}

	idx, err = starmatch.Match(text, pattern, req.Algorithm)
	if err != nil {
		return core.MatchResult{}, err
	}

	if err := m.Cache.Set(ctx, req.Algorithm, text, pattern, idx); err != nil {
		m.Logger.Warn("Failed to cache match", "error", err, "algorithm", req.Algorithm)
	}

	m.Logger.Debug("Matched", "algorithm", req.Algorithm, "pattern", pattern, "index", idx)

	return core.MatchResult{Index: idx}, nil
}
