package application

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/zhulik/pal"
	"github.com/zhulik/starmatch/internal/client"
	"github.com/zhulik/starmatch/internal/core"
)

func NewClient(config *core.ClientConfig, args []string) *pal.Pal {
	slog.SetDefault(slog.New(devHandler(slog.LevelError)))
	slog.SetLogLoggerLevel(slog.LevelError)

	return pal.New(
		pal.Provide(config),
		client.Provide(Serve, args),
	).
		InitTimeout(1 * time.Minute).
		HealthCheckTimeout(5 * time.Second).
		ShutdownTimeout(1 * time.Minute).
		InjectSlog()
}

func RunClient() {
	config := &core.ClientConfig{}
	if err := config.Init(context.Background()); err != nil {
		slog.Error("failed to initialize config", "error", err)
		os.Exit(1)
	}

	p := NewClient(config, os.Args)

	err := p.Run(context.Background())
	if err != nil {
		slog.Error("failed to run application", "error", err)
		os.Exit(1)
	}
}
