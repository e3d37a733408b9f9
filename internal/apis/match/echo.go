package match

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/zhulik/starmatch/internal/apictx"
	"github.com/zhulik/starmatch/internal/apis/match/middlewares"
	"github.com/zhulik/starmatch/internal/core"
)

type Echo struct {
	*echo.Echo
}

func (e *Echo) Init(_ context.Context) error {
	e.Echo = echo.New()
	e.Logger = slog.Default()

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(
		apictx.Middleware(),
		middlewares.Logger(),
		middleware.Recover(),
		middlewares.ErrorRenderer(),
		middleware.BodyLimit(core.SizeLimit1Mb),
	)

	return nil
}
