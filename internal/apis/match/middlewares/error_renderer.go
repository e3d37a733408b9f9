package middlewares

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v5"
	"github.com/zhulik/starmatch/internal/core"
	"github.com/zhulik/starmatch/pkg/starmatch"
)

type ErrorResponseBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// Classify maps a known error to its HTTP status and kind.
// ok is false for errors it does not know about.
func Classify(err error) (int, string, bool) {
	if kind := starmatch.Kind(err); kind != "" {
		if errors.Is(err, starmatch.ErrNotImplemented) {
			return http.StatusNotImplemented, kind, true
		}

		return http.StatusBadRequest, kind, true
	}

	switch {
	case errors.Is(err, core.ErrEmptyBatch):
		return http.StatusBadRequest, "empty_batch", true
	case errors.Is(err, core.ErrBatchTooLarge):
		return http.StatusRequestEntityTooLarge, "batch_too_large", true
	case errors.Is(err, echo.ErrStatusRequestEntityTooLarge):
		return http.StatusRequestEntityTooLarge, "body_too_large", true
	default:
		return 0, "", false
	}
}

func ErrorRenderer() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			status, kind, ok := Classify(err)
			if !ok {
				return err
			}

			return c.JSON(status, ErrorResponseBody{Error: err.Error(), Kind: kind})
		}
	}
}
