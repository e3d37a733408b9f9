package application

import (
	"log/slog"
	"os"

	"github.com/golang-cz/devslog"
	"github.com/zhulik/starmatch/internal/core"
)

func devHandler(level slog.Level) slog.Handler {
	return devslog.NewHandler(os.Stdout, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{
			Level: level,
		},

		MaxSlicePrintSize: 4,
		SortKeys:          true,
		TimeFormat:        "[04:05]",
		NewLineAfterLog:   true,
		DebugColor:        devslog.Magenta,
		StringerFormatter: true,
	})
}

func setupLogger(config *core.Config) {
	var handler slog.Handler

	switch config.Environment {
	case core.EnvironmentDevelopment:
		handler = devHandler(config.LogLevel)
	case core.EnvironmentTest:
		handler = slog.DiscardHandler
	default:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.LogLevel})
	}

	slog.SetDefault(slog.New(handler))
}
