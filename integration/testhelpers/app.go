package testhelpers

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/samber/lo"
	"github.com/zhulik/pal"
	"github.com/zhulik/starmatch/internal/application"
	"github.com/zhulik/starmatch/internal/client/apiclient"
	"github.com/zhulik/starmatch/internal/core"
	"github.com/zhulik/starmatch/pkg/starmatch"
)

type App struct {
	cancelApp context.CancelFunc
	pal       *pal.Pal
	port      int
}

func NewApp(algorithm starmatch.Algorithm) *App {
	ctx, cancelApp := context.WithCancel(context.Background())

	appConfig := &core.Config{
		Environment:     core.EnvironmentTest,
		Algorithm:       algorithm,
		Port:            randomPort(),
		HealthCheckPort: randomPort(),
		MaxBatchSize:    10,
	}

	p := application.NewServer(appConfig)
	lo.Must0(p.Init(ctx))

	go func() {
		lo.Must0(p.Run(ctx))
	}()

	time.Sleep(100 * time.Millisecond)

	return &App{
		cancelApp: cancelApp,
		pal:       p,
		port:      appConfig.Port,
	}
}

func (a *App) Stop(_ context.Context) {
	a.cancelApp()
}

func (a *App) URL() string {
	return fmt.Sprintf("http://localhost:%d", a.port)
}

func (a *App) Client(ctx context.Context) *apiclient.Client {
	client := &apiclient.Client{
		Config: &core.ClientConfig{ServerURL: a.URL()},
	}
	lo.Must0(client.Init(ctx))

	return client
}

// ClientContext returns ctx carrying the CLI's container pointed at the app.
func (a *App) ClientContext(ctx context.Context) context.Context {
	p := application.NewClient(&core.ClientConfig{ServerURL: a.URL()}, nil)
	lo.Must0(p.Init(ctx))

	return pal.WithPal(ctx, p)
}

func (a *App) Matcher(ctx context.Context) core.Matcher {
	return pal.MustInvoke[core.Matcher](ctx, a.pal)
}

func randomPort() int {
	return 10000 + rand.Intn(10000) //nolint:gosec
}
