package middlewares

import (
	"log/slog"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/zhulik/starmatch/internal/apictx"
)

func Logger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogLatency:  true,
		LogStatus:   true,
		HandleError: true,
		LogValuesFunc: func(c *echo.Context, v middleware.RequestLoggerValues) error {
			logger := c.Logger()
			apiCtx := apictx.MustFromContext(c.Request().Context())
			attrs := []slog.Attr{
				slog.String("method", apiCtx.Method),
				slog.String("host", apiCtx.Host),
				slog.String("uri", apiCtx.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.Int64("bytes_in", apiCtx.ContentLength),
				slog.String("user_agent", apiCtx.UserAgent),
				slog.String("remote_ip", apiCtx.RemoteAddr),
				slog.String("request_id", apiCtx.RequestID),
				slog.String("algorithm", apiCtx.Algorithm),
				slog.Int("cases", apiCtx.Cases),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "REQUEST", attrs...)

			return nil
		},
	})
}
