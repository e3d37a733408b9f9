package match

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v5"
	"github.com/samber/lo"
	"github.com/zhulik/starmatch/internal/apictx"
	"github.com/zhulik/starmatch/internal/apis/match/middlewares"
	"github.com/zhulik/starmatch/internal/core"
	"github.com/zhulik/starmatch/pkg/starmatch"
)

type MatchRequestBody struct {
	Text      any     `json:"text"`
	Pattern   any     `json:"pattern"`
	Algorithm *string `json:"algorithm,omitempty"`
}

type MatchResponseBody struct {
	Index     int    `json:"index"`
	Found     bool   `json:"found"`
	Algorithm string `json:"algorithm"`
	Cached    bool   `json:"cached"`
}

type BatchRequestBody struct {
	Cases []MatchRequestBody `json:"cases"`
}

// BatchResultBody carries either a match or an error.
type BatchResultBody struct {
	*MatchResponseBody

	Error string `json:"error,omitempty"`
	Kind  string `json:"kind,omitempty"`
}

type BatchResponseBody struct {
	Results []BatchResultBody `json:"results"`
}

type AlgorithmBody struct {
	Name        string `json:"name"`
	Implemented bool   `json:"implemented"`
	Default     bool   `json:"default"`
}

type APIMatch struct {
	Matcher core.Matcher
	Config  *core.Config
	Echo    *Echo
}

func (a APIMatch) Init(_ context.Context) error {
	a.Echo.POST("/match", a.Match)
	a.Echo.POST("/match/batch", a.MatchBatch)
	a.Echo.GET("/algorithms", a.ListAlgorithms)

	return nil
}

// Match runs a single match.
func (a APIMatch) Match(c *echo.Context) error {
	r := MatchRequestBody{}
	if err := c.Bind(&r); err != nil {
		return err
	}

	ctx := c.Request().Context()
	apiCtx := apictx.MustFromContext(ctx)
	apiCtx.Cases = 1

	req, err := a.matchRequest(r)
	if err != nil {
		return err
	}

	apiCtx.Algorithm = req.Algorithm.String()

	result, err := a.Matcher.Match(ctx, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newMatchResponseBody(req.Algorithm, result))
}

// MatchBatch runs every case independently, a failing case does not fail the batch.
func (a APIMatch) MatchBatch(c *echo.Context) error {
	r := BatchRequestBody{}
	if err := c.Bind(&r); err != nil {
		return err
	}

	ctx := c.Request().Context()
	apictx.MustFromContext(ctx).Cases = len(r.Cases)

	if err := core.ValidateBatchSize(len(r.Cases), a.Config.MaxBatchSize); err != nil {
		return err
	}

	results := lo.Map(r.Cases, func(body MatchRequestBody, _ int) BatchResultBody {
		req, err := a.matchRequest(body)
		if err != nil {
			return newBatchErrorBody(err)
		}

		result, err := a.Matcher.Match(ctx, req)
		if err != nil {
			return newBatchErrorBody(err)
		}

		return BatchResultBody{MatchResponseBody: lo.ToPtr(newMatchResponseBody(req.Algorithm, result))}
	})

	return c.JSON(http.StatusOK, BatchResponseBody{Results: results})
}

// ListAlgorithms returns every known algorithm.
func (a APIMatch) ListAlgorithms(c *echo.Context) error {
	algorithms := lo.Map(starmatch.Algorithms(), func(algorithm starmatch.Algorithm, _ int) AlgorithmBody {
		return AlgorithmBody{
			Name:        algorithm.String(),
			Implemented: algorithm.Implemented(),
			Default:     algorithm == a.Config.Algorithm,
		}
	})

	return c.JSON(http.StatusOK, algorithms)
}

// matchRequest validates the input before resolving the algorithm so that
// invalid input is reported ahead of an unknown algorithm.
func (a APIMatch) matchRequest(body MatchRequestBody) (core.MatchRequest, error) {
	if err := starmatch.Validate(body.Text, body.Pattern); err != nil {
		return core.MatchRequest{}, err
	}

	algorithm := a.Config.Algorithm

	if body.Algorithm != nil {
		var err error

		algorithm, err = starmatch.ParseAlgorithm(*body.Algorithm)
		if err != nil {
			return core.MatchRequest{}, err
		}
	}

	return core.MatchRequest{
		Text:      body.Text,
		Pattern:   body.Pattern,
		Algorithm: algorithm,
	}, nil
}

func newMatchResponseBody(algorithm starmatch.Algorithm, result core.MatchResult) MatchResponseBody {
	return MatchResponseBody{
		Index:     result.Index,
		Found:     result.Index != starmatch.NotFound,
		Algorithm: algorithm.String(),
		Cached:    result.Cached,
	}
}

func newBatchErrorBody(err error) BatchResultBody {
	_, kind, ok := middlewares.Classify(err)
	if !ok {
		kind = "internal"
	}

	return BatchResultBody{
		Error: err.Error(),
		Kind:  kind,
	}
}
