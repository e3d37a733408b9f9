package client

import (
	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"
	"github.com/zhulik/starmatch/internal/client/apiclient"
)

func Provide(serve cli.ActionFunc, args []string) pal.ServiceDef {
	return pal.ProvideList(
		pal.Provide(&Runner{serve: serve, args: args}),
		pal.Provide(&apiclient.Client{}),
	)
}
