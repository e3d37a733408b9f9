package apictx

import (
	"github.com/labstack/echo/v5"
)

const RequestIDHeader = "X-Request-ID"

// Middleware is an Echo middleware that injects APICtx into the request context
// and echoes the request ID back to the caller.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			ctx := Inject(c)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(RequestIDHeader, MustFromContext(ctx).RequestID)

			return next(c)
		}
	}
}
