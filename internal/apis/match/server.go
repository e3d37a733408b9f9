package match

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"github.com/labstack/echo/v5"
	"github.com/zhulik/starmatch/internal/core"
)

// Server serves the match API on Config.Port until ctx is done.
type Server struct {
	Echo   *Echo
	Config *core.Config
	Logger *slog.Logger
}

func (s *Server) Init(_ context.Context) error {
	return nil
}

func (s *Server) Run(ctx context.Context) error {
	sc := echo.StartConfig{
		Address:    fmt.Sprintf(":%d", s.Config.Port),
		HideBanner: true,
		HidePort:   true,
		ListenerAddrFunc: func(addr net.Addr) {
			s.Logger.Info("match API listening", "address", addr.String(), "algorithm", s.Config.Algorithm.String())
		},
	}

	return sc.Start(ctx, s.Echo.Echo)
}
