package application

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"
	"github.com/zhulik/starmatch/internal/apis/match"
	"github.com/zhulik/starmatch/internal/cache"
	"github.com/zhulik/starmatch/internal/core"
	"github.com/zhulik/starmatch/internal/matcher"
)

func NewServer(config *core.Config) *pal.Pal {
	setupLogger(config)

	return pal.New(
		match.Provide(),
		matcher.Provide(),
		cache.Provide(config),
		pal.Provide(config),
	).
		InitTimeout(1*time.Minute).
		HealthCheckTimeout(5*time.Second).
		ShutdownTimeout(1*time.Minute).
		InjectSlog().
		RunHealthCheckServer(fmt.Sprintf("0.0.0.0:%d", config.HealthCheckPort), "/healthz")
}

// Serve is the action of the serve command.
func Serve(ctx context.Context, _ *cli.Command) error {
	config := &core.Config{}
	if err := config.Init(ctx); err != nil {
		return err
	}

	return NewServer(config).Run(ctx)
}
